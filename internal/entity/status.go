package entity

type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateDraw       State = "draw"
)

// Status of a board. Winner is set only when State is StateWon.
type Status struct {
	State  State `json:"state"`
	Winner Mark  `json:"winner,omitempty"`
}

func InProgress() Status {
	return Status{State: StateInProgress}
}

func WonBy(mark Mark) Status {
	return Status{State: StateWon, Winner: mark}
}

func Draw() Status {
	return Status{State: StateDraw}
}

func (that Status) IsTerminal() bool {
	return that.State == StateWon || that.State == StateDraw
}

func (that Status) IsWonBy(mark Mark) bool {
	return that.State == StateWon && that.Winner == mark
}

func (that Status) IsDraw() bool {
	return that.State == StateDraw
}
