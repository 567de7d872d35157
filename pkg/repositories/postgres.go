package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/cbodonnell/quoridor/pkg/log"
	"github.com/cbodonnell/quoridor/pkg/messages"
	"github.com/cbodonnell/quoridor/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository connects to the database and applies the migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations string) (Repository, error) {
	pool, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, migrations, func(ctx context.Context, migration string) error {
		_, err := pool.Exec(ctx, migration)
		return err
	}); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresRepository{
		pool: pool,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return pool, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) SaveGame(ctx context.Context, gameState *types.GameState) error {
	if err := validateGameState(gameState); err != nil {
		return err
	}
	snapshot, err := messages.SerializeGameState(gameState)
	if err != nil {
		return fmt.Errorf("failed to serialize game state: %v", err)
	}

	q := `
	INSERT INTO saved_games (id, player1, player2, current_player, winner, moves, saved_at, duration, snapshot)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE SET current_player = $4, winner = $5, moves = $6, saved_at = $7, duration = $8, snapshot = $9;
	`
	_, err = r.pool.Exec(ctx, q,
		gameState.ID,
		gameState.Players.Player1,
		gameState.Players.Player2,
		gameState.CurrentPlayer.String(),
		gameState.Winner.String(),
		gameState.Moves,
		gameState.Timestamp,
		int64(gameState.Duration),
		snapshot,
	)
	if err != nil {
		return fmt.Errorf("failed to insert saved game: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadGame(ctx context.Context, id string) (*types.GameState, error) {
	q := `
	SELECT snapshot FROM saved_games WHERE id = $1;
	`
	var snapshot []byte
	if err := r.pool.QueryRow(ctx, q, id).Scan(&snapshot); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

func (r *PostgresRepository) ListGames(ctx context.Context) ([]*models.SavedGame, error) {
	q := `
	SELECT id, player1, player2, current_player, winner, moves, saved_at, duration
	FROM saved_games ORDER BY saved_at, id;
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved games: %v", err)
	}
	defer rows.Close()

	games := make([]*models.SavedGame, 0)
	for rows.Next() {
		game := &models.SavedGame{}
		var duration int64
		if err := rows.Scan(&game.ID, &game.Player1, &game.Player2, &game.CurrentPlayer, &game.Winner, &game.Moves, &game.Timestamp, &duration); err != nil {
			return nil, fmt.Errorf("failed to scan saved game: %v", err)
		}
		game.Timestamp = game.Timestamp.UTC()
		game.Duration = time.Duration(duration)
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved games: %v", err)
	}

	return games, nil
}

func (r *PostgresRepository) DeleteGame(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM saved_games WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete saved game: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrNotFound{ID: id}
	}

	return nil
}

func (r *PostgresRepository) RecordResult(ctx context.Context, winner string, loser string) error {
	if err := validateResult(winner, loser); err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	q := `
	INSERT INTO leaderboard (player, wins, losses) VALUES ($1, $2, $3)
	ON CONFLICT (player) DO UPDATE SET wins = leaderboard.wins + EXCLUDED.wins, losses = leaderboard.losses + EXCLUDED.losses;
	`
	if _, err := tx.Exec(ctx, q, winner, 1, 0); err != nil {
		return fmt.Errorf("failed to record win: %v", err)
	}
	if _, err := tx.Exec(ctx, q, loser, 0, 1); err != nil {
		return fmt.Errorf("failed to record loss: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *PostgresRepository) Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	q := `
	SELECT player, wins, losses FROM leaderboard ORDER BY wins DESC, losses ASC, player ASC;
	`
	rows, err := r.pool.Query(ctx, q)
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
