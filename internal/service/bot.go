package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (int, error)
}

type botService struct {
	thinkDelay time.Duration
}

// NewBotService - thinkDelay is the pause before the bot answers.
func NewBotService(thinkDelay time.Duration) BotService {
	return &botService{
		thinkDelay: thinkDelay,
	}
}

// MakeTurn picks the bot's cell with a full search and plays it. It returns the chosen cell.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (int, error) {
	if err := that.think(ctx); err != nil {
		return -1, err
	}

	cell, err := tictactoe.SelectOpponentMove(game.Board)
	if err != nil {
		return -1, fmt.Errorf("failed to select bot move: %w", err)
	}

	if err = game.MakeTurn(entity.Bot, cell); err != nil {
		return -1, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}

func (that *botService) think(ctx context.Context) error {
	if that.thinkDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.thinkDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("bot stopped thinking: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
