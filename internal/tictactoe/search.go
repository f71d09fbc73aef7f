package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// winScore - score of an immediate win, every extra ply costs one point.
const winScore = 10

// MoveScore is the minimax value of playing Cell, seen from the mover.
type MoveScore struct {
	Cell  int `json:"cell"`
	Score int `json:"score"`
}

// SelectOpponentMove picks the bot's cell for the given board.
func SelectOpponentMove(board entity.Board) (int, error) {
	return SelectMove(board, entity.Bot)
}

// SelectMove returns the cell with the strictly greatest minimax score for mark.
// Equal scores resolve to the lowest index.
func SelectMove(board entity.Board, mark entity.Mark) (int, error) {
	scores, err := ScoreMoves(board, mark)
	if err != nil {
		return -1, err
	}

	best := scores[0]
	for _, candidate := range scores[1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	return best.Cell, nil
}

// ScoreMoves evaluates every legal move of mark with a full-depth search.
func ScoreMoves(board entity.Board, mark entity.Mark) ([]MoveScore, error) {
	if !mark.IsPlayer() {
		return nil, fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidMove, mark)
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return nil, apperror.ErrNoLegalMoves
	}

	if status := board.EvaluateStatus(); status.IsWonBy(entity.PlayerX) || status.IsWonBy(entity.PlayerO) {
		return nil, fmt.Errorf("%w: won by %s", apperror.ErrGameFinished, status.Winner)
	}

	scores := make([]MoveScore, 0, len(moves))
	for _, cell := range moves {
		next, err := board.ApplyMove(cell, mark)
		if err != nil {
			return nil, fmt.Errorf("failed to try cell %d: %w", cell, err)
		}

		scores = append(scores, MoveScore{
			Cell:  cell,
			Score: minimax(next, 1, false, mark),
		})
	}

	return scores, nil
}

// minimax scores board for maximizer. depth is the number of moves since the search root.
func minimax(board entity.Board, depth int, maximizing bool, maximizer entity.Mark) int {
	switch status := board.EvaluateStatus(); {
	case status.IsWonBy(maximizer):
		return winScore - depth
	case status.IsWonBy(maximizer.Opponent()):
		return depth - winScore
	case status.IsDraw():
		return 0
	}

	mover := maximizer
	best := math.MinInt
	if !maximizing {
		mover = maximizer.Opponent()
		best = math.MaxInt
	}

	for i, cell := range board {
		if cell != entity.EmptyCell {
			continue
		}

		next := board
		next[i] = mover

		score := minimax(next, depth+1, !maximizing, maximizer)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
