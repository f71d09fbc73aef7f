package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

// Game is the turn state of a single match.
type Game struct {
	Board  Board  `json:"board"`
	Turn   Mark   `json:"player_turn"`
	Status Status `json:"status"`
	Active bool   `json:"active"`
}

func NewGame() *Game {
	return &Game{
		Board:  Board{},
		Turn:   Human,
		Status: InProgress(),
		Active: true,
	}
}

// MakeTurn places mark at cell. On error the game is left untouched.
func (that *Game) MakeTurn(mark Mark, cell int) error {
	if !that.Active {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	board, err := that.Board.ApplyMove(cell, mark)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.Board = board
	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	that.Status = that.Board.EvaluateStatus()

	if that.Status.IsTerminal() {
		that.Active = false
		that.Turn = EmptyCell
		return
	}

	that.Turn = that.Turn.Opponent()
}

func (that *Game) IsFinished() bool {
	return !that.Active
}

func (that *Game) IsBotTurn() bool {
	return that.Active && that.Turn == Bot
}
