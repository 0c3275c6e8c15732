package apperror

import "errors"

var (
	ErrOutOfRange      = errors.New("cell index out of range")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidMark     = errors.New("invalid mark")
	ErrNoAvailableMove = errors.New("no available moves")

	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrNotBotSeat      = errors.New("seat on move is not controlled by a bot")
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrNameTaken       = errors.New("player name is already taken")
)

// IsPlacementError - reports whether err is a rejected placement that a human can retry.
func IsPlacementError(err error) bool {
	return errors.Is(err, ErrOutOfRange) || errors.Is(err, ErrCellOccupied)
}
