package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	actionSessionConnect = "session:connect"
	actionGameTurn       = "game:turn"
	actionGameReset      = "game:reset"
	actionGameHint       = "game:hint"
	actionError          = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	SessionID string          `json:"session_id,omitempty"`
	Session   *entity.Session `json:"session,omitempty"`
	Cell      *int            `json:"cell,omitempty"`
	Error     string          `json:"error,omitempty"`
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, action string, payload Payload, errorMsg string) error {
	payload.Error = errorMsg
	if err := that.sendMessage(conn, action, payload); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
