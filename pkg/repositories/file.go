package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/cbodonnell/quoridor/pkg/log"
	"github.com/cbodonnell/quoridor/pkg/repositories/models"
)

const (
	SavedGamesFile  = "saved_games.json"
	LeaderboardFile = "leaderboard.json"
)

// FileRepository keeps saved games and the leaderboard as indented JSON
// documents in a directory. Every operation reads and rewrites the whole file.
type FileRepository struct {
	dir  string
	lock sync.Mutex
}

type leaderboardRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

func NewFileRepository(dir string) (Repository, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}

	log.Info("Using JSON files in %s", dir)

	return &FileRepository{
		dir: dir,
	}, nil
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

func (r *FileRepository) SaveGame(ctx context.Context, gameState *types.GameState) error {
	if err := validateGameState(gameState); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	games := make([]*types.GameState, 0)
	if err := r.readJSON(SavedGamesFile, &games); err != nil {
		return err
	}

	replaced := false
	for i, g := range games {
		if g.ID == gameState.ID {
			games[i] = gameState
			replaced = true
			break
		}
	}
	if !replaced {
		games = append(games, gameState)
	}

	return r.writeJSON(SavedGamesFile, games)
}

func (r *FileRepository) LoadGame(ctx context.Context, id string) (*types.GameState, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	games := make([]*types.GameState, 0)
	if err := r.readJSON(SavedGamesFile, &games); err != nil {
		return nil, err
	}

	for _, g := range games {
		if g.ID == id {
			return g, nil
		}
	}

	return nil, &ErrNotFound{ID: id}
}

func (r *FileRepository) ListGames(ctx context.Context) ([]*models.SavedGame, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	games := make([]*types.GameState, 0)
	if err := r.readJSON(SavedGamesFile, &games); err != nil {
		return nil, err
	}

	saved := make([]*models.SavedGame, 0, len(games))
	for _, g := range games {
		saved = append(saved, savedGameFromState(g))
	}

	return saved, nil
}

func (r *FileRepository) DeleteGame(ctx context.Context, id string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	games := make([]*types.GameState, 0)
	if err := r.readJSON(SavedGamesFile, &games); err != nil {
		return err
	}

	kept := games[:0]
	for _, g := range games {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(games) {
		return &ErrNotFound{ID: id}
	}

	return r.writeJSON(SavedGamesFile, kept)
}

func (r *FileRepository) RecordResult(ctx context.Context, winner string, loser string) error {
	if err := validateResult(winner, loser); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	leaderboard := make(map[string]*leaderboardRecord)
	if err := r.readJSON(LeaderboardFile, &leaderboard); err != nil {
		return err
	}

	for _, name := range []string{winner, loser} {
		if leaderboard[name] == nil {
			leaderboard[name] = &leaderboardRecord{}
		}
	}
	leaderboard[winner].Wins++
	leaderboard[loser].Losses++

	return r.writeJSON(LeaderboardFile, leaderboard)
}

func (r *FileRepository) Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	leaderboard := make(map[string]*leaderboardRecord)
	if err := r.readJSON(LeaderboardFile, &leaderboard); err != nil {
		return nil, err
	}

	entries := make([]*models.LeaderboardEntry, 0, len(leaderboard))
	for name, record := range leaderboard {
		if record == nil {
			continue
		}
		entries = append(entries, &models.LeaderboardEntry{
			Player: name,
			Wins:   record.Wins,
			Losses: record.Losses,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Losses != b.Losses {
			return a.Losses < b.Losses
		}
		return a.Player < b.Player
	})

	return entries, nil
}

// readJSON decodes the file into v. A missing file leaves v untouched.
func (r *FileRepository) readJSON(name string, v interface{}) error {
	path := filepath.Join(r.dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %v", path, err)
	}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("failed to decode %s: %v", path, err)
	}
	return nil
}

// writeJSON replaces the file through a temporary file in the same directory.
func (r *FileRepository) writeJSON(name string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %v", name, err)
	}

	tmp, err := os.CreateTemp(r.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %v", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %v", tmp.Name(), err)
	}

	path := filepath.Join(r.dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %v", path, err)
	}
	return nil
}
