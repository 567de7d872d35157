package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/cbodonnell/quoridor/pkg/repositories/models"
)

type Repository interface {
	Close(ctx context.Context) error
	// SaveGame stores the snapshot, replacing any earlier save with the same id
	SaveGame(ctx context.Context, gameState *types.GameState) error
	LoadGame(ctx context.Context, id string) (*types.GameState, error)
	ListGames(ctx context.Context) ([]*models.SavedGame, error)
	DeleteGame(ctx context.Context, id string) error
	// RecordResult adds a win for the winner and a loss for the loser
	RecordResult(ctx context.Context, winner string, loser string) error
	Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error)
}

// Open selects a backend from the scheme of connStr:
//
//	sqlite://<path>            SQLite database file
//	postgres[ql]://...          Postgres connection string
//	file://<dir>               JSON files in a directory
//
// SQL backends run the migrations found in migrationsDir/<backend>.
func Open(ctx context.Context, connStr string, migrationsDir string) (Repository, error) {
	switch {
	case strings.HasPrefix(connStr, "sqlite://"):
		path := strings.TrimPrefix(connStr, "sqlite://")
		return NewSQLiteRepository(ctx, path, filepath.Join(migrationsDir, "sqlite"))
	case strings.HasPrefix(connStr, "postgres://"), strings.HasPrefix(connStr, "postgresql://"):
		return NewPostgresRepository(ctx, connStr, filepath.Join(migrationsDir, "postgres"))
	case strings.HasPrefix(connStr, "file://"):
		return NewFileRepository(strings.TrimPrefix(connStr, "file://"))
	default:
		return nil, fmt.Errorf("unsupported database url: %q", connStr)
	}
}
