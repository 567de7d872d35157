package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/quoridor/pkg/api/handlers"
	"github.com/cbodonnell/quoridor/pkg/api/middleware"
	authproviders "github.com/cbodonnell/quoridor/pkg/auth/providers"
	"github.com/cbodonnell/quoridor/pkg/log"
	"github.com/cbodonnell/quoridor/pkg/repositories"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port         int
	AllowOrigin  string
	TLS          *TLSConfig
	AuthProvider authproviders.AuthProvider
	Repository   repositories.Repository
}

// NewRouter builds the routes of the saved game and leaderboard API.
func NewRouter(opts NewAPIServerOptions) http.Handler {
	allowOrigin := opts.AllowOrigin
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	authMiddleware := middleware.NewAuthMiddleware(opts.AuthProvider)

	r := mux.NewRouter()
	r.Use(middleware.Logging, middleware.NewCORSMiddleware(allowOrigin))
	r.HandleFunc("/leaderboard", handlers.HandleLeaderboard(opts.Repository)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/games", handlers.HandleListGames(opts.Repository)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/games/{id}", handlers.HandleGetGame(opts.Repository)).Methods(http.MethodGet)
	r.Handle("/games/{id}", authMiddleware(handlers.HandleDeleteGame(opts.Repository))).Methods(http.MethodDelete)
	r.HandleFunc("/games/{id}", func(w http.ResponseWriter, r *http.Request) {}).Methods(http.MethodOptions)
	r.HandleFunc("/games/{id}/board", handlers.HandleGetBoard(opts.Repository)).Methods(http.MethodGet, http.MethodOptions)
	return r
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
