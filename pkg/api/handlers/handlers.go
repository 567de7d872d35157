package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cbodonnell/quoridor/pkg/api/middleware"
	"github.com/cbodonnell/quoridor/pkg/log"
	"github.com/cbodonnell/quoridor/pkg/render"
	"github.com/cbodonnell/quoridor/pkg/repositories"
	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}

func HandleLeaderboard(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := repository.Leaderboard(r.Context())
		if err != nil {
			log.Error("failed to get leaderboard: %v", err)
			http.Error(w, "Failed to get leaderboard", http.StatusInternalServerError)
			return
		}
		writeJSON(w, entries)
	}
}

func HandleListGames(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := repository.ListGames(r.Context())
		if err != nil {
			log.Error("failed to list games: %v", err)
			http.Error(w, "Failed to list games", http.StatusInternalServerError)
			return
		}
		writeJSON(w, games)
	}
}

func HandleGetGame(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		gameState, err := repository.LoadGame(r.Context(), id)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Game not found", http.StatusNotFound)
				return
			}
			log.Error("failed to load game %s: %v", id, err)
			http.Error(w, "Failed to load game", http.StatusInternalServerError)
			return
		}
		writeJSON(w, gameState)
	}
}

// HandleGetBoard renders a saved game the way the terminal client shows it.
func HandleGetBoard(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		gameState, err := repository.LoadGame(r.Context(), id)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Game not found", http.StatusNotFound)
				return
			}
			log.Error("failed to load game %s: %v", id, err)
			http.Error(w, "Failed to load game", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(render.Board(gameState) + "\n" + render.Summary(gameState) + "\n"))
	}
}

// HandleDeleteGame deletes a saved game. Only the players of the game may delete it.
func HandleDeleteGame(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			log.Error("failed to get identity from context")
			http.Error(w, "Failed to get identity from context", http.StatusInternalServerError)
			return
		}

		id := mux.Vars(r)["id"]
		gameState, err := repository.LoadGame(r.Context(), id)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Game not found", http.StatusNotFound)
				return
			}
			log.Error("failed to load game %s: %v", id, err)
			http.Error(w, "Failed to load game", http.StatusInternalServerError)
			return
		}
		if identity.Name != gameState.Players.Player1 && identity.Name != gameState.Players.Player2 {
			http.Error(w, "Only the players of a game may delete it", http.StatusForbidden)
			return
		}

		if err := repository.DeleteGame(r.Context(), id); err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Game not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete game %s: %v", id, err)
			http.Error(w, "Failed to delete game", http.StatusInternalServerError)
			return
		}

		log.Info("Game %s deleted by %s", id, identity.Name)
		w.WriteHeader(http.StatusNoContent)
	}
}
