// Package version reports the build version. It is set at link time:
//
//	go build -ldflags "-X github.com/cbodonnell/quoridor/pkg/version.version=v1.2.3"
package version

var version = "dev"

func Get() string {
	return version
}
