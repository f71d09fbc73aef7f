package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	commandReset = "r"
	commandHint  = "h"
	commandQuit  = "q"
)

type gamePlayService interface {
	StartSession(ctx context.Context) (*entity.Session, error)
	EndSession(ctx context.Context, sessionID string) error

	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Session, error)
	ResetGame(ctx context.Context, sessionID string) (*entity.Session, error)
	Hint(ctx context.Context, sessionID string) (int, error)
}

// Console plays one session in a terminal: X is the human, O is the engine.
type Console struct {
	logger   *slog.Logger
	gamePlay gamePlayService

	in  *bufio.Scanner
	out io.Writer
}

func New(logger *slog.Logger, gamePlay gamePlayService, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		gamePlay: gamePlay,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run reads commands until quit, end of input or ctx is done.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	session, err := that.gamePlay.StartSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	defer func() {
		if endErr := that.gamePlay.EndSession(context.WithoutCancel(ctx), session.ID); endErr != nil {
			log.Error("failed to end session", "error", endErr)
		}
	}()

	that.printf("Tic-tac-toe: you are X, the AI is O.\n")
	that.printf("Enter 0-8 to move, %s for a hint, %s for a new game, %s to quit.\n", commandHint, commandReset, commandQuit)
	that.render(session)

	for that.in.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		input := strings.ToLower(strings.TrimSpace(that.in.Text()))

		switch input {
		case "":
			continue
		case commandQuit:
			that.printf("Bye!\n")
			return nil
		case commandReset:
			session, err = that.gamePlay.ResetGame(ctx, session.ID)
			if err != nil {
				return fmt.Errorf("failed to reset game: %w", err)
			}

			that.printf("New game.\n")
			that.render(session)
		case commandHint:
			that.hint(ctx, session.ID)
		default:
			session, err = that.move(ctx, session, input)
			if err != nil {
				return err
			}
		}
	}

	if err = that.in.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

// move returns an error only when the session can no longer be played.
func (that *Console) move(ctx context.Context, session *entity.Session, input string) (*entity.Session, error) {
	cell, err := strconv.Atoi(input)
	if err != nil || cell < 0 || cell >= entity.BoardSize {
		that.printf("Invalid input %q: enter 0-8, %s, %s or %s.\n", input, commandHint, commandReset, commandQuit)
		return session, nil
	}

	if session.Game.IsFinished() {
		that.printf("The game is over. Press %s for a new game or %s to quit.\n", commandReset, commandQuit)
		return session, nil
	}

	if that.botWillAnswer(session.Game, cell) {
		that.printf("AI is thinking...\n")
	}

	updated, err := that.gamePlay.MakeTurn(ctx, session.ID, cell)

	switch {
	case errors.Is(err, apperror.ErrInvalidMove):
		that.printf("Cell %d is taken, pick another one.\n", cell)
		return session, nil
	case errors.Is(err, apperror.ErrGameFinished):
		that.printf("The game is over. Press %s for a new game or %s to quit.\n", commandReset, commandQuit)
		return session, nil
	case err != nil:
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	that.render(updated)

	return updated, nil
}

func (that *Console) botWillAnswer(game *entity.Game, cell int) bool {
	next, err := game.Board.ApplyMove(cell, entity.Human)
	if err != nil {
		return false
	}

	return !next.EvaluateStatus().IsTerminal()
}

func (that *Console) hint(ctx context.Context, sessionID string) {
	cell, err := that.gamePlay.Hint(ctx, sessionID)
	if errors.Is(err, apperror.ErrGameFinished) {
		that.printf("The game is over, no hint.\n")
		return
	}

	if err != nil {
		that.logger.Error("failed to get hint", "error", err)
		that.printf("No hint available.\n")
		return
	}

	that.printf("Hint: try cell %d.\n", cell)
}

func (that *Console) render(session *entity.Session) {
	board := session.Game.Board

	var sb strings.Builder
	sb.WriteString("\n")

	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			index := row*3 + col
			if board[index] == entity.EmptyCell {
				cells[col] = strconv.Itoa(index)
			} else {
				cells[col] = string(board[index])
			}
		}

		sb.WriteString(" " + strings.Join(cells, " | ") + "\n")
		if row < 2 {
			sb.WriteString("---+---+---\n")
		}
	}

	sb.WriteString("\n")
	that.printf("%s", sb.String())

	status := session.Game.Status

	switch {
	case status.IsWonBy(entity.Human):
		that.printf("You win!\n")
	case status.IsWonBy(entity.Bot):
		that.printf("AI wins!\n")
	case status.IsDraw():
		that.printf("It's a draw!\n")
	default:
		that.printf("Your turn (%s)\n", entity.Human)
		return
	}

	that.printf("Score: You %d | AI %d | Draws %d (%d played)\n",
		session.Score.HumanWins, session.Score.BotWins, session.Score.Draws, session.Score.Total())
	that.printf("Press %s for a new game or %s to quit.\n", commandReset, commandQuit)
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
