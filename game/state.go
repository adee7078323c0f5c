package game

// State is the phase of a round.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
	StateScoreEntry   // typing a name for a qualifying score
	StateScoreDisplay // showing the table, any key starts a new round
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	case StateScoreEntry:
		return "score entry"
	case StateScoreDisplay:
		return "score display"
	default:
		return "unknown"
	}
}

// Command is an abstract input decoded by the host.
type Command int

const (
	MoveUp Command = iota
	MoveDown
	MoveLeft
	MoveRight
	TogglePause
	ConfirmName
	NameCharNext
	NameCharPrev
	NameSlotNext
	NameSlotPrev
)

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case TogglePause:
		return "pause"
	case ConfirmName:
		return "confirm"
	case NameCharNext:
		return "char+"
	case NameCharPrev:
		return "char-"
	case NameSlotNext:
		return "slot+"
	case NameSlotPrev:
		return "slot-"
	default:
		return "unknown"
	}
}
