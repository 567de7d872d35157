// Package console runs hot-seat matches at a terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	authproviders "github.com/cbodonnell/quoridor/pkg/auth/providers"
	"github.com/cbodonnell/quoridor/pkg/game"
	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/cbodonnell/quoridor/pkg/input"
	"github.com/cbodonnell/quoridor/pkg/log"
	"github.com/cbodonnell/quoridor/pkg/render"
	"github.com/cbodonnell/quoridor/pkg/repositories"
	"github.com/cbodonnell/quoridor/pkg/repositories/models"
	"github.com/cbodonnell/quoridor/pkg/state"
)

const menu = `Main Menu:
1. New game
2. Resume game
3. Saved games
4. Leaderboard
5. Quit`

type Console struct {
	scanner      *bufio.Scanner
	out          io.Writer
	login        Login
	repository   repositories.Repository
	stateManager state.StateManager
	resultChan   chan<- types.GameResult
	clock        func() time.Time
}

type NewConsoleOptions struct {
	In         io.Reader
	Out        io.Writer
	Login      Login
	Repository repositories.Repository
	// StateManager receives the snapshot after every accepted action. Optional.
	StateManager state.StateManager
	// ResultChan receives the result of every won game. Optional.
	ResultChan chan<- types.GameResult
	Clock      func() time.Time
}

func NewConsole(opts NewConsoleOptions) *Console {
	return &Console{
		scanner:      bufio.NewScanner(opts.In),
		out:          opts.Out,
		login:        opts.Login,
		repository:   opts.Repository,
		stateManager: opts.StateManager,
		resultChan:   opts.ResultChan,
		clock:        opts.Clock,
	}
}

// Run shows the main menu until the user quits or the input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.println(menu)
		choice, err := c.ask("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			err = c.newGame(ctx)
		case "2":
			err = c.resumeGame(ctx)
		case "3":
			err = c.showSavedGames(ctx)
		case "4":
			err = c.showLeaderboard(ctx)
		case "5":
			c.println("Goodbye!")
			return nil
		default:
			c.println("Invalid option!")
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %v", err)
		}
		fmt.Fprintln(c.out)
		return "", io.EOF
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

func (c *Console) println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// authenticate logs a player in. A nil identity with a nil error means the
// login was rejected and reported.
func (c *Console) authenticate(ctx context.Context, title string) (*authproviders.Identity, error) {
	c.println(title)
	identity, err := c.login.Login(ctx, c.ask)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, err
		}
		c.printf("Login failed: %v\n", err)
		return nil, nil
	}
	return identity, nil
}

func (c *Console) sessionOptions() game.NewSessionOptions {
	return game.NewSessionOptions{
		Persistence: c.repository,
		ResultChan:  c.resultChan,
		Clock:       c.clock,
	}
}

func (c *Console) newGame(ctx context.Context) error {
	player1, err := c.authenticate(ctx, "Login for Player 1:")
	if err != nil || player1 == nil {
		return err
	}
	player2, err := c.authenticate(ctx, "Login for Player 2:")
	if err != nil || player2 == nil {
		return err
	}
	if player1.Name == player2.Name {
		c.println("Player 1 has already picked this account! Player 2 must use another one.")
		return nil
	}

	opts := c.sessionOptions()
	opts.Player1 = player1.Name
	opts.Player2 = player2.Name
	session, err := game.NewSession(opts)
	if err != nil {
		c.printf("Failed to start game: %v\n", err)
		return nil
	}

	return c.play(ctx, session)
}

func (c *Console) resumeGame(ctx context.Context) error {
	games, err := c.repository.ListGames(ctx)
	if err != nil {
		log.Error("Failed to list saved games: %v", err)
		c.println("Failed to list saved games.")
		return nil
	}
	if len(games) == 0 {
		c.println("No saved games found.")
		return nil
	}
	c.println(render.SavedGames(games))

	id, err := c.ask("Enter the ID of the game you want to resume: ")
	if err != nil {
		return err
	}
	var saved *models.SavedGame
	for _, g := range games {
		if g.ID == id {
			saved = g
			break
		}
	}
	if saved == nil {
		c.println("Invalid game ID!")
		return nil
	}
	if saved.Finished() {
		c.printf("Game %s is already over.\n", id)
		return nil
	}

	c.println("Authentication required to resume the game:")
	for i, name := range []string{saved.Player1, saved.Player2} {
		identity, err := c.authenticate(ctx, fmt.Sprintf("Login for Player %d (%s):", i+1, name))
		if err != nil {
			return err
		}
		if identity == nil || identity.Name != name {
			c.printf("Authentication failed for Player %d!\n", i+1)
			return nil
		}
	}

	session, err := game.ResumeSession(ctx, id, c.sessionOptions())
	if err != nil {
		log.Error("Failed to resume game %s: %v", id, err)
		c.printf("Failed to resume game: %v\n", err)
		return nil
	}
	if err := c.repository.DeleteGame(ctx, id); err != nil {
		log.Warn("Failed to delete resumed game %s: %v", id, err)
	}

	return c.play(ctx, session)
}

func (c *Console) showSavedGames(ctx context.Context) error {
	games, err := c.repository.ListGames(ctx)
	if err != nil {
		log.Error("Failed to list saved games: %v", err)
		c.println("Failed to list saved games.")
		return nil
	}
	if len(games) == 0 {
		c.println("No saved games found.")
		return nil
	}
	c.println(render.SavedGames(games))
	return nil
}

func (c *Console) showLeaderboard(ctx context.Context) error {
	entries, err := c.repository.Leaderboard(ctx)
	if err != nil {
		log.Error("Failed to get leaderboard: %v", err)
		c.println("Failed to get leaderboard.")
		return nil
	}
	c.println(render.Leaderboard(entries))
	return nil
}

// play drives the session until it is won, saved or abandoned.
func (c *Console) play(ctx context.Context, session *game.Session) error {
	c.publish(ctx, session)
	c.showBoard(session)

	for {
		turn := session.Turn()
		line, err := c.ask(fmt.Sprintf("%s %s (%s), choose action (move/wall/save/quit): ",
			render.Marker(turn), session.PlayerName(turn), turn))
		if err != nil {
			return err
		}

		cmd, err := input.Parse(line)
		if err != nil {
			if !errors.Is(err, input.ErrEmpty) {
				c.printf("Invalid input: %v. Type help for the list of commands.\n", err)
			}
			continue
		}

		switch cmd.Type {
		case input.CommandMove:
			err = session.Move(turn, cmd.Move)
		case input.CommandWall:
			err = session.PlaceWall(turn, cmd.Wall)
		case input.CommandSave:
			id, err := session.Save(ctx)
			if err != nil {
				log.Error("Failed to save game: %v", err)
				c.println("Failed to save game.")
				continue
			}
			c.printf("Game saved with ID: %s\n", id)
			return nil
		case input.CommandBoard:
			c.showBoard(session)
			continue
		case input.CommandHelp:
			c.println(input.Help)
			continue
		case input.CommandQuit:
			c.println("Game quit!")
			return nil
		}

		if err != nil {
			if !game.IsRuleError(err) {
				log.Error("Unexpected error in game %s: %v", session.ID(), err)
			}
			var sideStep *game.SideStepError
			if errors.As(err, &sideStep) {
				c.printf("You can't jump over the opponent! %v, e.g. \"move %s %s\".\n",
					err, cmd.Move.Direction, sideStep.Options[0])
				continue
			}
			c.printf("Invalid action: %v. Try again.\n", err)
			continue
		}

		c.publish(ctx, session)
		c.showBoard(session)

		if winner, ok := session.Winner(); ok {
			c.printf("%s wins!\n", session.PlayerName(winner))
			if _, err := session.Save(ctx); err != nil {
				log.Error("Failed to save finished game %s: %v", session.ID(), err)
			}
			return nil
		}
	}
}

func (c *Console) showBoard(session *game.Session) {
	gameState := session.GameState()
	c.println(render.Board(gameState))
	c.println(render.Summary(gameState))
}

func (c *Console) publish(ctx context.Context, session *game.Session) {
	if c.stateManager == nil {
		return
	}
	if err := c.stateManager.Set(ctx, session.GameState()); err != nil {
		log.Error("Failed to publish game state: %v", err)
	}
}
