package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

type sessionHandlers struct {
	logger   *slog.Logger
	gamePlay gamePlayService
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type hintResponse struct {
	Cell int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *sessionHandlers) createSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.gamePlay.StartSession(r.Context())
	if err != nil {
		that.writeError(w, "createSession", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, session)
}

func (that *sessionHandlers) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.gamePlay.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "getSession", err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *sessionHandlers) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := that.gamePlay.EndSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, "deleteSession", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *sessionHandlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	if req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cell is required"})
		return
	}

	session, err := that.gamePlay.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, "makeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *sessionHandlers) resetGame(w http.ResponseWriter, r *http.Request) {
	session, err := that.gamePlay.ResetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "resetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *sessionHandlers) hint(w http.ResponseWriter, r *http.Request) {
	cell, err := that.gamePlay.Hint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "hint", err)
		return
	}

	that.writeJSON(w, http.StatusOK, hintResponse{Cell: cell})
}

func (that *sessionHandlers) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *sessionHandlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidMove), errors.Is(err, apperror.ErrNotYourTurn):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrNoLegalMoves):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
