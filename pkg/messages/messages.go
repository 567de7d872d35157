package messages

const (
	// MaxDecodedSize bounds the memory the zstd decoder may allocate for one snapshot
	MaxDecodedSize = 64 << 10
	// MaxWallsPerOrientation is the number of anchors a valid snapshot can carry per orientation
	MaxWallsPerOrientation = 2 * 10
)
