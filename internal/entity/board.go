package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

// Mark is the content of a single cell.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// Human always plays X and moves first, the bot plays O.
const (
	Human = PlayerX
	Bot   = PlayerO
)

const BoardSize = 9

// WinCombos - rows, columns and diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Board is stored row-major, index 0 is the top left cell.
type Board [BoardSize]Mark

// ApplyMove returns a copy of the board with mark placed at index. The receiver is never changed.
func (that Board) ApplyMove(index int, mark Mark) (Board, error) {
	if index < 0 || index >= BoardSize {
		return that, fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, index)
	}

	if !mark.IsPlayer() {
		return that, fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidMove, mark)
	}

	if that[index] != EmptyCell {
		return that, fmt.Errorf("%w: cell %d is occupied", apperror.ErrInvalidMove, index)
	}

	that[index] = mark

	return that, nil
}

func (that Board) EvaluateStatus() Status {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return WonBy(a)
		}
	}

	if that.IsFull() {
		return Draw()
	}

	return InProgress()
}

// LegalMoves - indexes of empty cells in ascending order.
func (that Board) LegalMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}
