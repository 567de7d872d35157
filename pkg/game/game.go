package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/quoridor/pkg/game/constants"
	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/cbodonnell/quoridor/pkg/log"
	"github.com/google/uuid"
)

// Persistence stores and restores session snapshots.
type Persistence interface {
	SaveGame(ctx context.Context, gameState *types.GameState) error
	LoadGame(ctx context.Context, id string) (*types.GameState, error)
}

type SessionState uint8

const (
	SessionStateInProgress SessionState = iota
	SessionStateWon
)

func (s SessionState) String() string {
	switch s {
	case SessionStateInProgress:
		return "in progress"
	case SessionStateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Session is the turn state machine of a single match. It is not safe for
// concurrent use; the caller driving the match owns it.
type Session struct {
	id          string
	players     types.PlayerNames
	board       *types.Board
	walls       *types.WallSet
	turn        types.Player
	winner      types.Player
	moves       int
	elapsed     time.Duration
	startedAt   time.Time
	finishedAt  time.Time
	clock       func() time.Time
	persistence Persistence
	resultChan  chan<- types.GameResult
	logger      *log.Logger
}

// NewSessionOptions contains options for creating a new Session.
type NewSessionOptions struct {
	// ID is generated when empty
	ID          string
	Player1     string
	Player2     string
	Persistence Persistence
	// ResultChan receives one GameResult when the session is won
	ResultChan chan<- types.GameResult
	// Clock defaults to time.Now
	Clock func() time.Time
}

// NewSession creates a session with both tokens on their start cells and full wall budgets.
func NewSession(opts NewSessionOptions) (*Session, error) {
	if opts.Player1 == "" || opts.Player2 == "" {
		return nil, fmt.Errorf("player identifiers must not be empty")
	}
	if opts.Player1 == opts.Player2 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, opts.Player1)
	}

	id := opts.ID
	if id == "" {
		id = uuid.New().String()
	}

	s := newSession(opts)
	s.id = id
	s.logger = log.WithField("game", id)
	s.players = types.PlayerNames{Player1: opts.Player1, Player2: opts.Player2}
	s.board = types.NewBoard()
	s.walls = types.NewWallSet(constants.WallsPerPlayer)
	s.turn = types.Player1

	s.logger.Debug("Session created for %s and %s", s.players.Player1, s.players.Player2)
	return s, nil
}

// RestoreSession rebuilds a live session from a snapshot. The id and the
// player identifiers come from the snapshot; the remaining options apply as
// for NewSession. Corrupt snapshots are rejected with ErrInvalidGameState.
func RestoreSession(gameState *types.GameState, opts NewSessionOptions) (*Session, error) {
	if gameState == nil {
		return nil, fmt.Errorf("%w: nil game state", ErrInvalidGameState)
	}
	if err := validateGameState(gameState); err != nil {
		return nil, err
	}

	s := newSession(opts)
	s.id = gameState.ID
	s.logger = log.WithField("game", gameState.ID)
	s.players = gameState.Players
	s.board = gameState.Board()
	s.walls = types.NewWallSet(0)
	s.walls.SetRemaining(types.Player1, gameState.WallsLeft.Player1)
	s.walls.SetRemaining(types.Player2, gameState.WallsLeft.Player2)
	if err := placeSegments(s.walls, gameState.WallsH, types.Horizontal); err != nil {
		return nil, err
	}
	if err := placeSegments(s.walls, gameState.WallsV, types.Vertical); err != nil {
		return nil, err
	}
	for _, p := range types.Players {
		if !CanReach(s.walls, s.board.PositionOf(p), p.GoalRow()) {
			return nil, fmt.Errorf("%w: %s has no path to its goal row", ErrInvalidGameState, p)
		}
	}
	s.turn = gameState.CurrentPlayer
	s.winner = gameState.Winner
	s.moves = gameState.Moves
	s.elapsed = gameState.Duration
	if s.winner != types.PlayerNone {
		s.finishedAt = s.startedAt
	}

	s.logger.Debug("Session restored at move %d", s.moves)
	return s, nil
}

// ResumeSession loads a snapshot through opts.Persistence and restores it.
func ResumeSession(ctx context.Context, id string, opts NewSessionOptions) (*Session, error) {
	if opts.Persistence == nil {
		return nil, fmt.Errorf("no persistence configured")
	}
	gameState, err := opts.Persistence.LoadGame(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load game %s: %w", id, err)
	}
	return RestoreSession(gameState, opts)
}

func newSession(opts NewSessionOptions) *Session {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Session{
		clock:       clock,
		startedAt:   clock(),
		persistence: opts.Persistence,
		resultChan:  opts.ResultChan,
	}
}

func validateGameState(g *types.GameState) error {
	if g.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidGameState)
	}
	if g.Players.Player1 == "" || g.Players.Player2 == "" || g.Players.Player1 == g.Players.Player2 {
		return fmt.Errorf("%w: players must be two distinct identifiers", ErrInvalidGameState)
	}
	p1, p2 := g.Positions.Player1, g.Positions.Player2
	if !p1.InBounds() || !p2.InBounds() || p1 == p2 {
		return fmt.Errorf("%w: token positions %s and %s", ErrInvalidGameState, p1, p2)
	}
	for _, p := range types.Players {
		if n := g.WallsLeft.Of(p); n < 0 || n > constants.WallsPerPlayer {
			return fmt.Errorf("%w: %s has %d walls left", ErrInvalidGameState, p, n)
		}
	}
	if !g.CurrentPlayer.Valid() {
		return fmt.Errorf("%w: current player %d", ErrInvalidGameState, g.CurrentPlayer)
	}
	if g.Winner != types.PlayerNone && !g.Winner.Valid() {
		return fmt.Errorf("%w: winner %d", ErrInvalidGameState, g.Winner)
	}
	return nil
}

// placeSegments adds the anchors to the wall set. Repeated anchors collapse
// into one segment; any other collision means the snapshot is corrupt.
func placeSegments(walls *types.WallSet, anchors []types.Cell, orientation types.Orientation) error {
	for _, anchor := range anchors {
		segment := types.WallSegment{Anchor: anchor, Orientation: orientation}
		if !segment.InBounds() {
			return fmt.Errorf("%w: wall %s out of bounds", ErrInvalidGameState, segment)
		}
		if walls.HasSegment(segment) {
			continue
		}
		if walls.Overlaps(segment) {
			return fmt.Errorf("%w: wall %s overlaps another wall", ErrInvalidGameState, segment)
		}
		walls.Place(segment)
	}
	return nil
}

func (s *Session) ID() string {
	return s.id
}

// PlayerName returns the identifier of the person playing the seat.
func (s *Session) PlayerName(player types.Player) string {
	return s.players.Of(player)
}

// Turn returns the seat whose turn it is.
func (s *Session) Turn() types.Player {
	return s.turn
}

func (s *Session) State() SessionState {
	if s.winner != types.PlayerNone {
		return SessionStateWon
	}
	return SessionStateInProgress
}

// Winner returns the winning seat, if the session is over.
func (s *Session) Winner() (types.Player, bool) {
	return s.winner, s.winner != types.PlayerNone
}

func (s *Session) Moves() int {
	return s.moves
}

func (s *Session) PositionOf(player types.Player) types.Cell {
	return s.board.PositionOf(player)
}

func (s *Session) WallsLeft(player types.Player) int {
	return s.walls.Remaining(player)
}

// Move resolves and commits a token move for the acting player.
// A rejected move leaves the session unchanged.
func (s *Session) Move(player types.Player, move types.Move) error {
	if err := s.checkTurn(player); err != nil {
		return err
	}

	destination, err := ResolveMove(s.board, s.walls, player, move)
	if err != nil {
		return err
	}

	from := s.board.PositionOf(player)
	s.board.MoveToken(player, destination)
	s.moves++
	s.logger.Debug("%s moved %s from %s to %s", player, move.Direction, from, destination)

	if destination.Row == player.GoalRow() {
		s.win(player)
		return nil
	}

	s.turn = player.Opponent()
	return nil
}

// PlaceWall validates and commits a wall placement for the acting player.
// A rejected placement leaves the session unchanged.
func (s *Session) PlaceWall(player types.Player, segment types.WallSegment) error {
	if err := s.checkTurn(player); err != nil {
		return err
	}

	if err := ValidateWall(s.board, s.walls, player, segment); err != nil {
		return err
	}

	s.walls.Place(segment)
	s.walls.Decrement(player)
	s.moves++
	s.turn = player.Opponent()
	s.logger.Debug("%s placed wall %s, %d left", player, segment, s.walls.Remaining(player))

	return nil
}

func (s *Session) checkTurn(player types.Player) error {
	if s.winner != types.PlayerNone {
		return fmt.Errorf("%w: %s already won", ErrGameOver, s.winner)
	}
	if player != s.turn {
		return fmt.Errorf("%w: it is %s's turn", ErrNotYourTurn, s.turn)
	}
	return nil
}

func (s *Session) win(player types.Player) {
	s.winner = player
	s.finishedAt = s.clock()
	s.logger.Info("Won by %s (%s) after %d moves", player, s.players.Of(player), s.moves)

	if s.resultChan == nil {
		return
	}
	s.resultChan <- types.GameResult{
		GameID:    s.id,
		Winner:    s.players.Of(player),
		Loser:     s.players.Of(player.Opponent()),
		Moves:     s.moves,
		Timestamp: s.finishedAt,
	}
}

// GameState returns a snapshot of the session.
func (s *Session) GameState() *types.GameState {
	now := s.clock()
	end := now
	if !s.finishedAt.IsZero() {
		end = s.finishedAt
	}

	return &types.GameState{
		ID:      s.id,
		Players: s.players,
		Positions: types.Positions{
			Player1: s.board.PositionOf(types.Player1),
			Player2: s.board.PositionOf(types.Player2),
		},
		WallsLeft: types.WallBudgets{
			Player1: s.walls.Remaining(types.Player1),
			Player2: s.walls.Remaining(types.Player2),
		},
		WallsH:        s.walls.Segments(types.Horizontal),
		WallsV:        s.walls.Segments(types.Vertical),
		CurrentPlayer: s.turn,
		Winner:        s.winner,
		Moves:         s.moves,
		Timestamp:     now.UTC(),
		Duration:      s.elapsed + end.Sub(s.startedAt),
	}
}

// Save persists a snapshot of the session and returns its id.
func (s *Session) Save(ctx context.Context) (string, error) {
	if s.persistence == nil {
		return "", fmt.Errorf("no persistence configured")
	}
	if err := s.persistence.SaveGame(ctx, s.GameState()); err != nil {
		return "", fmt.Errorf("failed to save game %s: %v", s.id, err)
	}
	s.logger.Info("Session saved")
	return s.id, nil
}
