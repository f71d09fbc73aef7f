package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

type GamePlayService interface {
	StartSession(ctx context.Context) (*entity.Session, error)
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)
	EndSession(ctx context.Context, sessionID string) error

	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Session, error)
	ResetGame(ctx context.Context, sessionID string) (*entity.Session, error)
	Hint(ctx context.Context, sessionID string) (int, error)
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type gamePlayService struct {
	logger *slog.Logger

	sessionRepo sessionRepo
	botService  BotService

	now func() time.Time

	// sessionLocks holds a *sync.Mutex per session ID, read-modify-write of a session is serialized.
	sessionLocks sync.Map
}

func NewGamePlayService(logger *slog.Logger, sessionRepo sessionRepo, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:      logger.With("component", "gameplay"),
		sessionRepo: sessionRepo,
		botService:  botService,
		now:         time.Now,
	}
}

func (that *gamePlayService) StartSession(ctx context.Context) (*entity.Session, error) {
	session := entity.NewSession(uuid.NewString(), that.now())

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session started", "sessionID", session.ID)

	return session, nil
}

func (that *gamePlayService) GetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	return session, nil
}

func (that *gamePlayService) EndSession(ctx context.Context, sessionID string) error {
	unlock := that.lockSession(sessionID)
	defer unlock()
	defer that.sessionLocks.Delete(sessionID)

	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session ended", "sessionID", sessionID)

	return nil
}

// MakeTurn plays the human's cell and, while the game goes on, the bot's answer.
// A finished game is counted in the score exactly once, on the move that finished it.
func (that *gamePlayService) MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Session, error) {
	log := that.logger.With("method", "MakeTurn", "sessionID", sessionID)

	unlock := that.lockSession(sessionID)
	defer unlock()

	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err = session.Game.MakeTurn(entity.Human, cell); err != nil {
		return session, fmt.Errorf("failed to make turn: %w", err)
	}

	if session.Game.IsBotTurn() {
		botCell, botErr := that.botService.MakeTurn(ctx, session.Game)
		if botErr != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", botErr)
		}

		log.Debug("bot made a turn", "cell", botCell)
	}

	if session.Game.IsFinished() {
		session.Score.Record(session.Game.Status)
		log.Info("game finished", "state", session.Game.Status.State, "winner", session.Game.Status.Winner)
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

func (that *gamePlayService) ResetGame(ctx context.Context, sessionID string) (*entity.Session, error) {
	unlock := that.lockSession(sessionID)
	defer unlock()

	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Reset()

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

// Hint returns the cell the engine would play for the human.
func (that *gamePlayService) Hint(ctx context.Context, sessionID string) (int, error) {
	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return -1, err
	}

	if session.Game.IsFinished() {
		return -1, apperror.ErrGameFinished
	}

	cell, err := tictactoe.SelectMove(session.Game.Board, entity.Human)
	if errors.Is(err, apperror.ErrNoLegalMoves) {
		return -1, apperror.ErrGameFinished
	}

	if err != nil {
		return -1, fmt.Errorf("failed to select hint: %w", err)
	}

	return cell, nil
}

func (that *gamePlayService) lockSession(sessionID string) func() {
	lock, _ := that.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	mu, _ := lock.(*sync.Mutex)

	mu.Lock()

	return mu.Unlock
}
