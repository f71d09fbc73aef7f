package apperror

import "errors"

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrNoLegalMoves    = errors.New("no legal moves")
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrSessionNotFound = errors.New("session not found")
)
