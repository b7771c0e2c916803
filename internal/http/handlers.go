package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/amanijl/courtside/internal/league"
	"github.com/amanijl/courtside/internal/pubsub"
	"github.com/amanijl/courtside/internal/roster"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear entire store")
		if err := s.Store.Clear(); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

// StandingsHandler serves the ranked league table.
func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := s.League.Standings()
		if err != nil {
			log.Error("Failed to compute standings", "error", err)
			writeError(w, err)
			return
		}
		writeJSON(w, standings)
	}
}

// PlayersHandler lists the roster on GET and adds a player on POST.
func (s *Server) PlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			players, err := s.League.Roster()
			if err != nil {
				log.Error("Failed to get players from store", "error", err)
				writeError(w, err)
				return
			}
			writeJSON(w, players)
		case http.MethodPost:
			var p roster.Player
			if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
				log.Error("Failed to decode player payload", "error", err)
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			created, err := s.League.AddPlayer(identityFromContext(r), p)
			if err != nil {
				log.Error("Failed to add player", "name", p.Name, "error", err)
				writeError(w, err)
				return
			}
			w.WriteHeader(http.StatusCreated)
			writeJSONBody(w, created)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// GetPlayerHandler serves a single player by id.
func (s *Server) GetPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Player id is required", http.StatusBadRequest)
			return
		}
		player, err := s.League.Player(id)
		if err != nil {
			log.Error("Failed to get player", "id", id, "error", err)
			writeError(w, err)
			return
		}
		writeJSON(w, player)
	}
}

// UpdatePlayerHandler applies a partial profile update to a player.
func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID string `json:"id"`
			roster.PlayerUpdate
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode update payload", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			http.Error(w, "Player id is required", http.StatusBadRequest)
			return
		}
		if err := s.League.EditProfile(identityFromContext(r), req.ID, req.PlayerUpdate); err != nil {
			log.Error("Failed to update player", "id", req.ID, "error", err)
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

// UpdateStatsHandler records a win/loss result for a player.
func (s *Server) UpdateStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     string `json:"id"`
			Wins   int    `json:"wins"`
			Losses int    `json:"losses"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode stats payload", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			http.Error(w, "Player id is required", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)
		player, err := s.League.RecordResult(identityFromContext(r), req.ID, req.Wins, req.Losses, isDryRun)
		if err != nil {
			log.Error("Failed to record result", "id", req.ID, "error", err)
			writeError(w, err)
			return
		}
		if player == nil {
			// The write landed but the read-back failed.
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "OK")
			return
		}
		writeJSON(w, player)
	}
}

// DeletePlayerHandler removes a player from the roster.
func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "Player id is required", http.StatusBadRequest)
			return
		}
		if err := s.League.RemovePlayer(identityFromContext(r), id); err != nil {
			log.Error("Failed to delete player", "id", id, "error", err)
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

// SeedHandler inserts any missing default roster players.
func (s *Server) SeedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		added, err := s.League.SeedRoster()
		if err != nil {
			log.Error("Failed to seed roster", "error", err)
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Seeded %d players", added)
		log.Info("Roster seed completed", "added", added)
	}
}

// RosterChangedHandler receives Pub/Sub push deliveries of roster-changed
// events published by other instances.
func (s *Server) RosterChangedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received roster changed message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		// Parse the outer JSON to get `data`
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		evt := pubsub.RosterChangedEvent{}
		if err := s.PubSub.ProcessMessage(rawData, &evt); err != nil {
			log.Error("Failed to decode roster changed event", "error", err)
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		s.League.HandleRosterChanged(evt)
		w.Write([]byte("OK"))
	}
}

// writeJSON writes v as the JSON response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	writeJSONBody(w, v)
}

func writeJSONBody(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// writeError maps service errors to HTTP status codes. Authorization
// failures and store error kinds each get a stable status so callers can
// branch without parsing message text.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, league.ErrUnauthorized) {
		status = http.StatusForbidden
	} else {
		switch roster.KindOf(err) {
		case roster.KindNotFound:
			status = http.StatusNotFound
		case roster.KindWriteRejected:
			status = http.StatusBadRequest
		case roster.KindPermissionDenied:
			status = http.StatusForbidden
		case roster.KindStoreUnavailable, roster.KindNotInitialized:
			status = http.StatusServiceUnavailable
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	writeJSONBody(w, map[string]string{"error": err.Error()})
}
