package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/pkg/handlers"
)

const shutdownTimeout = 5 * time.Second

type gamePlayService interface {
	StartSession(ctx context.Context) (*entity.Session, error)
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)
	EndSession(ctx context.Context, sessionID string) error

	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Session, error)
	ResetGame(ctx context.Context, sessionID string) (*entity.Session, error)
	Hint(ctx context.Context, sessionID string) (int, error)
}

// NewRouter wires the REST routes over the gameplay service.
func NewRouter(logger *slog.Logger, gamePlay gamePlayService) http.Handler {
	h := &sessionHandlers{
		logger:   logger.With("component", "rest"),
		gamePlay: gamePlay,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ping", handlers.PingHandler)

	r.Post("/sessions", h.createSession)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.getSession)
		r.Delete("/", h.deleteSession)
		r.Post("/turn", h.makeTurn)
		r.Post("/reset", h.resetGame)
		r.Get("/hint", h.hint)
	})

	return r
}

// Start - serves handler on port until ctx is done.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
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
