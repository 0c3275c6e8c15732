package entity

// Status is the state part of a GameResult.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWin
	StatusTie
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWin:
		return "win"
	case StatusTie:
		return "tie"
	default:
		return "unknown"
	}
}

// GameResult is derived from a board on demand and never stored apart from it.
// Winner is set only when Status is StatusWin.
type GameResult struct {
	Status Status
	Winner Mark
}

var (
	InProgress = GameResult{Status: StatusInProgress}
	Tie        = GameResult{Status: StatusTie}
)

func Win(mark Mark) GameResult {
	return GameResult{Status: StatusWin, Winner: mark}
}

func (that GameResult) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusTie
}

func (that GameResult) IsWinFor(mark Mark) bool {
	return that.Status == StatusWin && that.Winner == mark
}

func (that GameResult) String() string {
	switch that.Status {
	case StatusWin:
		return that.Winner.String() + " wins"
	case StatusTie:
		return "tie"
	default:
		return "in progress"
	}
}

// Evaluate - scans the win patterns in order and returns the first win,
// otherwise Tie on a full board, otherwise InProgress.
func Evaluate(board Board) GameResult {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return Win(a)
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return InProgress
	}

	return Tie
}
