package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/quoridor/pkg/auth"
	authproviders "github.com/cbodonnell/quoridor/pkg/auth/providers"
	"github.com/cbodonnell/quoridor/pkg/console"
	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/cbodonnell/quoridor/pkg/log"
	"github.com/cbodonnell/quoridor/pkg/repositories"
	"github.com/cbodonnell/quoridor/pkg/state"
	"github.com/cbodonnell/quoridor/pkg/version"
	"github.com/cbodonnell/quoridor/pkg/workers"
)

func main() {
	logLevel := flag.String("log-level", "warn", "Log level")
	logFile := flag.String("log-file", "", "file to write logs to (default stderr)")
	migrations := flag.String("migrations", "./migrations", "directory containing the database migrations")
	autosaveInterval := flag.Duration("autosave-interval", 0, "how often to autosave the running game (0 disables autosave)")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	var logOut io.Writer = os.Stderr
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Sprintf("Failed to open log file: %v", err))
		}
		defer f.Close()
		logOut = f
	}
	log.SetDefaultLogger(log.New(logOut, parsedLogLevel))
	log.Info("Starting quoridor version %s", version.Get())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connStr := os.Getenv("QUORIDOR_DATABASE_URL")
	if connStr == "" {
		connStr = "sqlite://quoridor.db"
	}
	repository, err := repositories.Open(ctx, connStr, *migrations)
	if err != nil {
		panic(fmt.Sprintf("Failed to open repository: %v", err))
	}
	defer repository.Close(context.Background())

	login, err := newLogin(ctx)
	if err != nil {
		panic(fmt.Sprintf("Failed to create auth provider: %v", err))
	}

	stateManager := state.NewInMemoryStateManager()
	resultChan := make(chan types.GameResult, 10)
	saveGameWorker := workers.NewSaveGameWorker(workers.NewSaveGameWorkerOptions{
		Repository:   repository,
		ResultChan:   resultChan,
		StateManager: stateManager,
		Interval:     *autosaveInterval,
	})
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	go saveGameWorker.Start(workerCtx)

	c := console.NewConsole(console.NewConsoleOptions{
		In:           os.Stdin,
		Out:          os.Stdout,
		Login:        login,
		Repository:   repository,
		StateManager: stateManager,
		ResultChan:   resultChan,
	})

	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx)
	}()
	select {
	case err = <-done:
	case <-ctx.Done():
		fmt.Println()
	}
	if err != nil {
		log.Error("Console error: %v", err)
	}

	cancelWorker()
	select {
	case <-saveGameWorker.Done():
	case <-time.After(10 * time.Second):
		log.Warn("Timed out waiting for pending saves")
	}
}

// newLogin uses Firebase email/password accounts when a project is configured
// and plain display names otherwise.
func newLogin(ctx context.Context) (console.Login, error) {
	projectID := os.Getenv("QUORIDOR_FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Info("Using display names for players")
		return &console.NameLogin{Provider: authproviders.NewStaticAuthProvider()}, nil
	}

	apiKey := os.Getenv("QUORIDOR_FIREBASE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("QUORIDOR_FIREBASE_API_KEY environment variable must be set with QUORIDOR_FIREBASE_PROJECT_ID")
	}
	provider, err := authproviders.NewFirebaseAuthProvider(ctx, projectID, apiKey)
	if err != nil {
		return nil, err
	}
	log.Info("Using Firebase project %s for players", projectID)
	return &console.PasswordLogin{
		Signer:   auth.NewFirebaseClient(auth.NewFirebaseClientOptions{APIKey: apiKey}),
		Provider: provider,
	}, nil
}
