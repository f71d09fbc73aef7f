package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// handleConnect resumes the session named in the payload or starts a new one.
func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, ok, err := that.readPayload(msg, conn)
	if !ok {
		return err
	}

	var session *entity.Session

	if payloadReq.SessionID != "" {
		session, err = that.gamePlay.GetSession(ctx, payloadReq.SessionID)
		if err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
			log.Error("failed to get session", "sessionID", payloadReq.SessionID, "error", err)
			return that.sendErrorResponse(conn, msg.Action, Payload{}, "failed to get the session")
		}
	}

	if session == nil {
		session, err = that.gamePlay.StartSession(ctx)
		if err != nil {
			log.Error("failed to start session", "error", err)
			return that.sendErrorResponse(conn, msg.Action, Payload{}, "failed to start a new session")
		}
	}

	log.Info("session connected", "sessionID", session.ID)

	return that.sendMessage(conn, msg.Action, Payload{SessionID: session.ID, Session: session})
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok, err := that.readPayload(msg, conn)
	if !ok {
		return err
	}

	if payloadReq.SessionID == "" {
		return that.sendErrorResponse(conn, msg.Action, Payload{}, "session_id is required")
	}

	if payloadReq.Cell == nil {
		return that.sendErrorResponse(conn, msg.Action, Payload{SessionID: payloadReq.SessionID}, "cell is required")
	}

	session, err := that.gamePlay.MakeTurn(ctx, payloadReq.SessionID, *payloadReq.Cell)
	if err != nil {
		return that.sendServiceError(conn, msg.Action, payloadReq.SessionID, session, err)
	}

	return that.sendMessage(conn, msg.Action, Payload{SessionID: session.ID, Session: session})
}

func (that *Server) handleGameReset(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok, err := that.readPayload(msg, conn)
	if !ok {
		return err
	}

	if payloadReq.SessionID == "" {
		return that.sendErrorResponse(conn, msg.Action, Payload{}, "session_id is required")
	}

	session, err := that.gamePlay.ResetGame(ctx, payloadReq.SessionID)
	if err != nil {
		return that.sendServiceError(conn, msg.Action, payloadReq.SessionID, nil, err)
	}

	return that.sendMessage(conn, msg.Action, Payload{SessionID: session.ID, Session: session})
}

func (that *Server) handleGameHint(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok, err := that.readPayload(msg, conn)
	if !ok {
		return err
	}

	if payloadReq.SessionID == "" {
		return that.sendErrorResponse(conn, msg.Action, Payload{}, "session_id is required")
	}

	cell, err := that.gamePlay.Hint(ctx, payloadReq.SessionID)
	if err != nil {
		return that.sendServiceError(conn, msg.Action, payloadReq.SessionID, nil, err)
	}

	return that.sendMessage(conn, msg.Action, Payload{SessionID: payloadReq.SessionID, Cell: &cell})
}

// readPayload decodes the message payload. When ok is false the caller returns err as is:
// a bad payload has already been answered with an error message.
func (that *Server) readPayload(msg *Message, conn *websocket.Conn) (Payload, bool, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return payload, true, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		that.logger.Warn("failed to unmarshal payload", "action", msg.Action, "error", err)
		return payload, false, that.sendErrorResponse(conn, msg.Action, Payload{}, "invalid payload")
	}

	return payload, true, nil
}

// sendServiceError reports gameplay errors to the client. Rule violations keep the connection alive.
func (that *Server) sendServiceError(conn *websocket.Conn, action, sessionID string, session *entity.Session, err error) error {
	resp := Payload{SessionID: sessionID, Session: session}

	switch {
	case errors.Is(err, apperror.ErrSessionNotFound),
		errors.Is(err, apperror.ErrInvalidMove),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		return that.sendErrorResponse(conn, action, resp, err.Error())
	default:
		that.logger.Error("gameplay failed", "action", action, "sessionID", sessionID, "error", err)
		return that.sendErrorResponse(conn, action, resp, fmt.Sprintf("failed to process %s", action))
	}
}
