package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/cbodonnell/quoridor/pkg/log"
	"github.com/cbodonnell/quoridor/pkg/messages"
	"github.com/cbodonnell/quoridor/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// writers would otherwise fail with SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, migrations, func(ctx context.Context, migration string) error {
		_, err := db.ExecContext(ctx, migration)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	log.Info("Opened sqlite database %s", path)

	return &SQLiteRepository{
		db: db,
	}, nil
}

// runMigrations executes every file in the directory in name order.
func runMigrations(ctx context.Context, migrations string, exec func(ctx context.Context, migration string) error) error {
	dir, err := os.ReadDir(migrations)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %v", err)
	}

	for _, entry := range dir {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}

		migrationPath := filepath.Join(migrations, entry.Name())
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if err := exec(ctx, string(migration)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
		log.Debug("Applied migration %s", migrationPath)
	}

	return nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveGame(ctx context.Context, gameState *types.GameState) error {
	if err := validateGameState(gameState); err != nil {
		return err
	}
	snapshot, err := messages.SerializeGameState(gameState)
	if err != nil {
		return fmt.Errorf("failed to serialize game state: %v", err)
	}

	q := `
	INSERT OR REPLACE INTO saved_games (id, player1, player2, current_player, winner, moves, saved_at, duration, snapshot)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = r.db.ExecContext(ctx, q,
		gameState.ID,
		gameState.Players.Player1,
		gameState.Players.Player2,
		gameState.CurrentPlayer.String(),
		gameState.Winner.String(),
		gameState.Moves,
		unixNano(gameState.Timestamp),
		int64(gameState.Duration),
		snapshot,
	)
	if err != nil {
		return fmt.Errorf("failed to insert saved game: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadGame(ctx context.Context, id string) (*types.GameState, error) {
	q := `
	SELECT snapshot FROM saved_games WHERE id = ?;
	`
	var snapshot []byte
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&snapshot); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to scan saved game: %v", err)
	}

	gameState, err := messages.DeserializeGameState(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize saved game %s: %v", id, err)
	}

	return gameState, nil
}

func (r *SQLiteRepository) ListGames(ctx context.Context) ([]*models.SavedGame, error) {
	q := `
	SELECT id, player1, player2, current_player, winner, moves, saved_at, duration
	FROM saved_games ORDER BY saved_at, id;
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved games: %v", err)
	}
	defer rows.Close()

	games := make([]*models.SavedGame, 0)
	for rows.Next() {
		game := &models.SavedGame{}
		var savedAt int64
		var duration int64
		if err := rows.Scan(&game.ID, &game.Player1, &game.Player2, &game.CurrentPlayer, &game.Winner, &game.Moves, &savedAt, &duration); err != nil {
			return nil, fmt.Errorf("failed to scan saved game: %v", err)
		}
		game.Timestamp = fromUnixNano(savedAt)
		game.Duration = time.Duration(duration)
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved games: %v", err)
	}

	return games, nil
}

func (r *SQLiteRepository) DeleteGame(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_games WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete saved game: %v", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if n == 0 {
		return &ErrNotFound{ID: id}
	}

	return nil
}

func (r *SQLiteRepository) RecordResult(ctx context.Context, winner string, loser string) error {
	if err := validateResult(winner, loser); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	q := `
	INSERT INTO leaderboard (player, wins, losses) VALUES (?, ?, ?)
	ON CONFLICT (player) DO UPDATE SET wins = wins + excluded.wins, losses = losses + excluded.losses;
	`
	if _, err := tx.ExecContext(ctx, q, winner, 1, 0); err != nil {
		return fmt.Errorf("failed to record win: %v", err)
	}
	if _, err := tx.ExecContext(ctx, q, loser, 0, 1); err != nil {
		return fmt.Errorf("failed to record loss: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	q := `
	SELECT player, wins, losses FROM leaderboard ORDER BY wins DESC, losses ASC, player ASC;
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %v", err)
	}
	defer rows.Close()

	entries := make([]*models.LeaderboardEntry, 0)
	for rows.Next() {
		entry := &models.LeaderboardEntry{}
		if err := rows.Scan(&entry.Player, &entry.Wins, &entry.Losses); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %v", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard: %v", err)
	}

	return entries, nil
}
