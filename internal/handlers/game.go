package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jwebster45206/modern-world/internal/game"
	"github.com/jwebster45206/modern-world/pkg/state"
)

type StartRequest struct {
	Country string `json:"country"`
	Role    string `json:"role"`
}

type CommandRequest struct {
	Command string `json:"command"`
}

type DecisionRequest struct {
	DecisionID  string `json:"decision_id"`
	OptionIndex int    `json:"option_index"`
	Reject      bool   `json:"reject"`
}

type TechRequest struct {
	TechID string `json:"tech_id"`
}

type GameResponse struct {
	Game    *state.GameState `json:"game"`
	Loading bool             `json:"loading"`
}

type GameHandler struct {
	session *game.Session
	logger  *slog.Logger
}

func NewGameHandler(session *game.Session, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		session: session,
		logger:  logger,
	}
}

// ServeHTTP routes the game endpoints:
// GET    /v1/game           - current game
// POST   /v1/game           - start a new game
// DELETE /v1/game           - discard the game and its save
// POST   /v1/game/resume    - load the saved game
// POST   /v1/game/command   - submit an order
// POST   /v1/game/turn      - commit the turn
// POST   /v1/game/decisions - stage or veto a cabinet decision
// POST   /v1/game/tech      - unlock a technology
func (h *GameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	action := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/game"), "/")

	if action == "" {
		switch r.Method {
		case http.MethodGet:
			h.handleGet(w, r)
		case http.MethodPost:
			h.handleStart(w, r)
		case http.MethodDelete:
			h.handleDiscard(w, r)
		default:
			writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET, POST, DELETE")
		}
		return
	}

	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	switch action {
	case "resume":
		h.handleResume(w, r)
	case "command":
		h.handleCommand(w, r)
	case "turn":
		h.handleTurn(w, r)
	case "decisions":
		h.handleDecision(w, r)
	case "tech":
		h.handleTech(w, r)
	default:
		writeError(w, h.logger, http.StatusNotFound, "Unknown game endpoint")
	}
}

func (h *GameHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	gs := h.session.Snapshot()
	if gs == nil {
		writeError(w, h.logger, http.StatusNotFound, "No game in progress")
		return
	}
	h.writeGame(w, http.StatusOK)
}

func (h *GameHandler) handleStart(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.session.Start(r.Context(), req.Country, req.Role); err != nil {
		writeSessionError(w, h.logger, err)
		return
	}
	h.writeGame(w, http.StatusCreated)
}

func (h *GameHandler) handleDiscard(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Discard(r.Context()); err != nil {
		writeSessionError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GameHandler) handleResume(w http.ResponseWriter, r *http.Request) {
	ok, err := h.session.Resume(r.Context())
	if err != nil {
		writeSessionError(w, h.logger, err)
		return
	}
	if !ok {
		writeError(w, h.logger, http.StatusNotFound, "No saved game")
		return
	}
	h.writeGame(w, http.StatusOK)
}

func (h *GameHandler) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.session.Submit(r.Context(), req.Command); err != nil {
		writeSessionError(w, h.logger, err)
		return
	}
	h.writeGame(w, http.StatusOK)
}

func (h *GameHandler) handleTurn(w http.ResponseWriter, r *http.Request) {
	if err := h.session.NextTurn(r.Context()); err != nil {
		writeSessionError(w, h.logger, err)
		return
	}
	h.writeGame(w, http.StatusOK)
}

func (h *GameHandler) handleDecision(w http.ResponseWriter, r *http.Request) {
	var req DecisionRequest
	if !h.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.DecisionID) == "" {
		writeError(w, h.logger, http.StatusBadRequest, "decision_id is required")
		return
	}

	var err error
	if req.Reject {
		err = h.session.Reject(r.Context(), req.DecisionID)
	} else {
		err = h.session.Decide(r.Context(), req.DecisionID, req.OptionIndex)
	}
	if err != nil {
		writeSessionError(w, h.logger, err)
		return
	}
	h.writeGame(w, http.StatusOK)
}

func (h *GameHandler) handleTech(w http.ResponseWriter, r *http.Request) {
	var req TechRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.session.UnlockTech(r.Context(), req.TechID); err != nil {
		writeSessionError(w, h.logger, err)
		return
	}
	h.writeGame(w, http.StatusOK)
}

func (h *GameHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return false
	}
	return true
}

func (h *GameHandler) writeGame(w http.ResponseWriter, status int) {
	writeJSON(w, h.logger, status, GameResponse{
		Game:    h.session.Snapshot(),
		Loading: h.session.Loading(),
	})
}
