package messages

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	snapshotfb "github.com/cbodonnell/quoridor/flatbuffers/snapshot"
	"github.com/cbodonnell/quoridor/pkg/game/types"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

// SerializeGameState encodes the snapshot as a zstd compressed flatbuffer.
func SerializeGameState(gameState *types.GameState) ([]byte, error) {
	b, err := SerializeGameStateFlatbuffer(gameState)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize game state: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress game state: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

// DeserializeGameState decodes a snapshot produced by SerializeGameState.
func DeserializeGameState(data []byte) (*types.GameState, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderMaxMemory(MaxDecodedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed game state: %v", err)
	}

	gameState, err := DeserializeGameStateFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize game state: %v", err)
	}

	return gameState, nil
}

func SerializeGameStateFlatbuffer(gameState *types.GameState) ([]byte, error) {
	if gameState == nil {
		return nil, fmt.Errorf("game state is nil")
	}
	if gameState.Moves < 0 || uint64(gameState.Moves) > math.MaxUint32 {
		return nil, fmt.Errorf("move count %d out of range", gameState.Moves)
	}
	p1, p2 := gameState.Positions.Player1, gameState.Positions.Player2
	for _, v := range []int{p1.Row, p1.Col, p2.Row, p2.Col, gameState.WallsLeft.Player1, gameState.WallsLeft.Player2} {
		if v < 0 || v > math.MaxUint8 {
			return nil, fmt.Errorf("value %d does not fit in a byte", v)
		}
	}

	builder := flatbuffers.NewBuilder(256)

	id := builder.CreateString(gameState.ID)
	player1 := builder.CreateString(gameState.Players.Player1)
	player2 := builder.CreateString(gameState.Players.Player2)

	wallsH, err := serializeSegments(builder, gameState.WallsH, snapshotfb.SnapshotStartWallsHVector)
	if err != nil {
		return nil, err
	}
	wallsV, err := serializeSegments(builder, gameState.WallsV, snapshotfb.SnapshotStartWallsVVector)
	if err != nil {
		return nil, err
	}

	var timestamp int64
	if !gameState.Timestamp.IsZero() {
		timestamp = gameState.Timestamp.UnixNano()
	}

	snapshotfb.SnapshotStart(builder)
	snapshotfb.SnapshotAddId(builder, id)
	snapshotfb.SnapshotAddPlayer1(builder, player1)
	snapshotfb.SnapshotAddPlayer2(builder, player2)
	snapshotfb.SnapshotAddP1Row(builder, byte(p1.Row))
	snapshotfb.SnapshotAddP1Col(builder, byte(p1.Col))
	snapshotfb.SnapshotAddP2Row(builder, byte(p2.Row))
	snapshotfb.SnapshotAddP2Col(builder, byte(p2.Col))
	snapshotfb.SnapshotAddP1Walls(builder, byte(gameState.WallsLeft.Player1))
	snapshotfb.SnapshotAddP2Walls(builder, byte(gameState.WallsLeft.Player2))
	snapshotfb.SnapshotAddWallsH(builder, wallsH)
	snapshotfb.SnapshotAddWallsV(builder, wallsV)
	snapshotfb.SnapshotAddCurrentPlayer(builder, byte(gameState.CurrentPlayer))
	snapshotfb.SnapshotAddWinner(builder, byte(gameState.Winner))
	snapshotfb.SnapshotAddMoves(builder, uint32(gameState.Moves))
	snapshotfb.SnapshotAddTimestamp(builder, timestamp)
	snapshotfb.SnapshotAddDuration(builder, int64(gameState.Duration))
	snapshot := snapshotfb.SnapshotEnd(builder)
	builder.Finish(snapshot)

	return builder.FinishedBytes(), nil
}

func serializeSegments(builder *flatbuffers.Builder, anchors []types.Cell, startVector func(*flatbuffers.Builder, int) flatbuffers.UOffsetT) (flatbuffers.UOffsetT, error) {
	if len(anchors) > MaxWallsPerOrientation {
		return 0, fmt.Errorf("too many walls: %d", len(anchors))
	}
	for _, anchor := range anchors {
		if anchor.Row < 0 || anchor.Row > math.MaxUint8 || anchor.Col < 0 || anchor.Col > math.MaxUint8 {
			return 0, fmt.Errorf("wall anchor %s does not fit in a byte", anchor)
		}
	}

	startVector(builder, len(anchors))
	for i := len(anchors) - 1; i >= 0; i-- {
		snapshotfb.CreateSegment(builder, byte(anchors[i].Row), byte(anchors[i].Col))
	}
	return builder.EndVector(len(anchors)), nil
}

// DeserializeGameStateFlatbuffer reads a snapshot table. Truncated or
// malformed buffers are reported as errors.
func DeserializeGameStateFlatbuffer(b []byte) (gameState *types.GameState, err error) {
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("buffer too short: %d bytes", len(b))
	}
	defer func() {
		if r := recover(); r != nil {
			gameState = nil
			err = fmt.Errorf("malformed snapshot: %v", r)
		}
	}()

	fb := snapshotfb.GetRootAsSnapshot(b, 0)
	if fb.WallsHLength() > MaxWallsPerOrientation || fb.WallsVLength() > MaxWallsPerOrientation {
		return nil, fmt.Errorf("too many walls: %d horizontal, %d vertical", fb.WallsHLength(), fb.WallsVLength())
	}

	gameState = &types.GameState{
		ID: string(fb.Id()),
		Players: types.PlayerNames{
			Player1: string(fb.Player1()),
			Player2: string(fb.Player2()),
		},
		Positions: types.Positions{
			Player1: types.Cell{Row: int(fb.P1Row()), Col: int(fb.P1Col())},
			Player2: types.Cell{Row: int(fb.P2Row()), Col: int(fb.P2Col())},
		},
		WallsLeft: types.WallBudgets{
			Player1: int(fb.P1Walls()),
			Player2: int(fb.P2Walls()),
		},
		WallsH:        make([]types.Cell, 0, fb.WallsHLength()),
		WallsV:        make([]types.Cell, 0, fb.WallsVLength()),
		CurrentPlayer: types.Player(fb.CurrentPlayer()),
		Winner:        types.Player(fb.Winner()),
		Moves:         int(fb.Moves()),
		Duration:      time.Duration(fb.Duration()),
	}
	if ts := fb.Timestamp(); ts != 0 {
		gameState.Timestamp = time.Unix(0, ts).UTC()
	}

	segment := &snapshotfb.Segment{}
	for i := 0; i < fb.WallsHLength(); i++ {
		if fb.WallsH(segment, i) {
			gameState.WallsH = append(gameState.WallsH, types.Cell{Row: int(segment.Row()), Col: int(segment.Col())})
		}
	}
	for i := 0; i < fb.WallsVLength(); i++ {
		if fb.WallsV(segment, i) {
			gameState.WallsV = append(gameState.WallsV, types.Cell{Row: int(segment.Row()), Col: int(segment.Col())})
		}
	}

	return gameState, nil
}
