package entity

import "time"

// Session owns everything one human plays through: the current game and the score.
type Session struct {
	ID        string    `json:"id"`
	Game      *Game     `json:"game"`
	Score     Score     `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Game:      NewGame(),
		CreatedAt: now,
	}
}

// Reset starts a new game, the score is kept.
func (that *Session) Reset() {
	that.Game = NewGame()
}
