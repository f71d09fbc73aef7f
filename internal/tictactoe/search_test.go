package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestSelectOpponentMove(t *testing.T) {
	t.Run("Takes the winning cell", func(t *testing.T) {
		// Given: O can complete the diagonal and X has no threat
		board := entity.Board{
			o, x, x,
			x, o, e,
			e, e, e,
		}

		// When: selecting the bot move
		cell, err := SelectOpponentMove(board)

		// Then: the diagonal is completed
		require.NoError(t, err)
		assert.Equal(t, 8, cell)
	})

	t.Run("Blocks an immediate threat", func(t *testing.T) {
		// Given: X threatens the top row, O has no win
		board := entity.Board{
			x, x, e,
			e, o, e,
			e, e, e,
		}

		// When: selecting the bot move
		cell, err := SelectOpponentMove(board)

		// Then: the row is blocked
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Blocks even when the block loses later", func(t *testing.T) {
		// Given: X threatens the top row and can fork after the block
		board := entity.Board{
			x, x, e,
			o, e, e,
			e, e, e,
		}

		// When: selecting the bot move
		cell, err := SelectOpponentMove(board)

		// Then: the slower defeat is preferred
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Own win outranks a block", func(t *testing.T) {
		// Given: X threatens cell 2 and O can finish the middle row on cell 5
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		// When: scoring and selecting the bot move
		scores, err := ScoreMoves(board, entity.Bot)
		require.NoError(t, err)
		cell, err := SelectOpponentMove(board)
		require.NoError(t, err)

		// Then: the immediate win is taken since the game ends before X can move
		assert.Equal(t, 5, cell)
		assert.Equal(t, MoveScore{Cell: 5, Score: 9}, scoreOf(t, scores, 5))
		assert.Greater(t, scoreOf(t, scores, 5).Score, scoreOf(t, scores, 2).Score)
	})

	t.Run("Board is not altered", func(t *testing.T) {
		// Given: a board in progress
		board := entity.Board{
			x, e, e,
			e, e, e,
			e, e, e,
		}
		snapshot := board

		// When: selecting the bot move
		cell, err := SelectOpponentMove(board)

		// Then: the board is the same and the center is taken
		require.NoError(t, err)
		assert.Equal(t, snapshot, board)
		assert.Equal(t, 4, cell)
	})

	t.Run("Error on full board", func(t *testing.T) {
		// Given: a drawn board
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		// When: selecting the bot move
		cell, err := SelectOpponentMove(board)

		// Then: ErrNoLegalMoves is returned
		require.ErrorIs(t, err, apperror.ErrNoLegalMoves)
		assert.Equal(t, -1, cell)
	})

	t.Run("Error on full board with a winner", func(t *testing.T) {
		// Given: X won with the last empty cell
		board := entity.Board{
			x, o, x,
			o, x, o,
			o, x, x,
		}

		// When: selecting the bot move
		cell, err := SelectOpponentMove(board)

		// Then: ErrNoLegalMoves is returned, not ErrGameFinished
		require.ErrorIs(t, err, apperror.ErrNoLegalMoves)
		assert.NotErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, -1, cell)
	})

	t.Run("Error on won board", func(t *testing.T) {
		// Given: X already completed a row
		board := entity.Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		// When: selecting the bot move
		_, err := SelectOpponentMove(board)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestScoreMoves(t *testing.T) {
	t.Run("Every opening move is a draw", func(t *testing.T) {
		// When: scoring the empty board for X
		scores, err := ScoreMoves(entity.Board{}, entity.PlayerX)
		require.NoError(t, err)

		// Then: all nine moves score zero in ascending order
		require.Len(t, scores, 9)
		for i, score := range scores {
			assert.Equal(t, MoveScore{Cell: i, Score: 0}, score)
		}
	})

	t.Run("Ties resolve to the lowest cell", func(t *testing.T) {
		// When: selecting the opening move for X
		cell, err := SelectMove(entity.Board{}, entity.PlayerX)

		// Then: cell 0 is chosen
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		_, err := ScoreMoves(entity.Board{}, entity.EmptyCell)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}

func TestSelfPlay_OptimalPlayersDraw(t *testing.T) {
	// Given: both sides play the engine's move from the empty board
	game := entity.NewGame()

	// When: playing until the game ends
	for game.Active {
		cell, err := SelectMove(game.Board, game.Turn)
		require.NoError(t, err)
		require.NoError(t, game.MakeTurn(game.Turn, cell))
	}

	// Then: the game is a draw
	assert.Equal(t, entity.Draw(), game.Status)
}

func TestSelfPlay_BotNeverLoses(t *testing.T) {
	// Given: every possible sequence of human moves answered by the bot
	var finished, botWins int

	var play func(board entity.Board)
	play = func(board entity.Board) {
		for _, cell := range board.LegalMoves() {
			afterHuman, err := board.ApplyMove(cell, entity.Human)
			require.NoError(t, err)

			// Then: the human never completes a line
			status := afterHuman.EvaluateStatus()
			require.False(t, status.IsWonBy(entity.Human), "human won on %v", afterHuman)

			if status.IsTerminal() {
				finished++
				continue
			}

			reply, err := SelectOpponentMove(afterHuman)
			require.NoError(t, err)

			afterBot, err := afterHuman.ApplyMove(reply, entity.Bot)
			require.NoError(t, err)

			if status = afterBot.EvaluateStatus(); status.IsTerminal() {
				finished++
				if status.IsWonBy(entity.Bot) {
					botWins++
				}
				continue
			}

			play(afterBot)
		}
	}

	play(entity.Board{})

	assert.Positive(t, finished)
	assert.Positive(t, botWins)
}

func scoreOf(t *testing.T, scores []MoveScore, cell int) MoveScore {
	t.Helper()

	for _, score := range scores {
		if score.Cell == cell {
			return score
		}
	}

	t.Fatalf("no score for cell %d", cell)
	return MoveScore{}
}
