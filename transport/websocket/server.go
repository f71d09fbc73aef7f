package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gamePlayService interface {
	StartSession(ctx context.Context) (*entity.Session, error)
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)

	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Session, error)
	ResetGame(ctx context.Context, sessionID string) (*entity.Session, error)
	Hint(ctx context.Context, sessionID string) (int, error)
}

type Server struct {
	logger   *slog.Logger
	gamePlay gamePlayService

	upgrader websocket.Upgrader
	handlers map[string]func(ctx context.Context, message *Message, conn *websocket.Conn) error
}

func New(logger *slog.Logger, gamePlay gamePlayService) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		gamePlay: gamePlay,

		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		handlers: make(map[string]func(context.Context, *Message, *websocket.Conn) error),
	}

	server.handlers[actionSessionConnect] = server.handleConnect
	server.handlers[actionGameTurn] = server.handleGameTurn
	server.handlers[actionGameReset] = server.handleGameReset
	server.handlers[actionGameHint] = server.handleGameHint

	return server
}

// Handler - routes /ws to the upgrade handler.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS - upgrades the connection to WebSocket and serves it until the client leaves.
func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	if err = that.handleMessages(r.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, body, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info("client disconnected")
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(body, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)

			if err = that.sendErrorResponse(conn, actionError, Payload{}, "invalid message"); err != nil {
				return err
			}

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)

			if err = that.sendErrorResponse(conn, message.Action, Payload{}, "unknown action"); err != nil {
				return err
			}

			continue
		}

		if err = handler(ctx, &message, conn); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}
