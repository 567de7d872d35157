package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/quoridor/pkg/api"
	authproviders "github.com/cbodonnell/quoridor/pkg/auth/providers"
	"github.com/cbodonnell/quoridor/pkg/log"
	"github.com/cbodonnell/quoridor/pkg/repositories"
	"github.com/cbodonnell/quoridor/pkg/version"
)

func main() {
	port := flag.Int("port", 9090, "port to listen on")
	allowOrigin := flag.String("allow-origin", "*", "value of the Access-Control-Allow-Origin header")
	migrations := flag.String("migrations", "./migrations", "directory containing the database migrations")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting api server version %s", version.Get())
	ctx := context.Background()

	var authProvider authproviders.AuthProvider
	firebaseProjectID := os.Getenv("QUORIDOR_FIREBASE_PROJECT_ID")
	if firebaseProjectID != "" {
		authProvider, err = authproviders.NewFirebaseAuthProvider(ctx, firebaseProjectID, os.Getenv("QUORIDOR_FIREBASE_API_KEY"))
		if err != nil {
			panic(fmt.Sprintf("Failed to create Firebase auth provider: %v", err))
		}
	} else {
		log.Warn("QUORIDOR_FIREBASE_PROJECT_ID is not set, bearer tokens are trusted as player names")
		authProvider = authproviders.NewStaticAuthProvider()
	}

	connStr := os.Getenv("QUORIDOR_DATABASE_URL")
	if connStr == "" {
		connStr = "sqlite://quoridor.db"
	}
	repository, err := repositories.Open(ctx, connStr, *migrations)
	if err != nil {
		panic(fmt.Sprintf("Failed to open repository: %v", err))
	}
	defer repository.Close(ctx)

	apiServerOpts := api.NewAPIServerOptions{
		Port:         *port,
		AllowOrigin:  *allowOrigin,
		AuthProvider: authProvider,
		Repository:   repository,
	}
	tlsCertFile := os.Getenv("QUORIDOR_API_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("QUORIDOR_API_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
