package entity

// Score is the tally of completed games within one session.
type Score struct {
	HumanWins int `json:"human_wins"`
	BotWins   int `json:"bot_wins"`
	Draws     int `json:"draws"`
}

// Record counts a finished game. In-progress statuses are ignored.
func (that *Score) Record(status Status) {
	switch {
	case status.IsWonBy(Human):
		that.HumanWins++
	case status.IsWonBy(Bot):
		that.BotWins++
	case status.IsDraw():
		that.Draws++
	}
}

func (that Score) Total() int {
	return that.HumanWins + that.BotWins + that.Draws
}
