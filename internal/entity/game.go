package entity

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	MultiplayerType = "multiplayer"
	WithBotType     = "bot"
)

// Game is the state of one match: the board, the mark on move and both seats.
// The result is always recomputed from Board.
type Game struct {
	ID       string   `json:"id"`
	Board    Board    `json:"board"`
	Turn     Mark     `json:"player_turn"`
	Type     string   `json:"type"`
	Strategy Strategy `json:"strategy,omitempty"`
	PlayerX  *Player  `json:"player_x"`
	PlayerO  *Player  `json:"player_o"`
}

func NewGame(playerX, playerO *Player, strategy Strategy) *Game {
	gameType := MultiplayerType
	if playerX.IsBot() || playerO.IsBot() {
		gameType = WithBotType
	}

	playerX.Mark = PlayerX
	playerO.Mark = PlayerO

	return &Game{
		ID:       uuid.NewString(),
		Board:    NewBoard(),
		Turn:     PlayerX,
		Type:     gameType,
		Strategy: strategy,
		PlayerX:  playerX,
		PlayerO:  playerO,
	}
}

func (that *Game) Result() GameResult {
	return Evaluate(that.Board)
}

func (that *Game) IsFinished() bool {
	return that.Result().IsTerminal()
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// PlayerByMark - returns the seat holding mark, nil for Empty.
func (that *Game) PlayerByMark(mark Mark) *Player {
	switch mark {
	case PlayerX:
		return that.PlayerX
	case PlayerO:
		return that.PlayerO
	default:
		return nil
	}
}

// OnMove - returns the seat whose turn it is.
func (that *Game) OnMove() *Player {
	return that.PlayerByMark(that.Turn)
}

// playerLabel - bot seats carry the tier they play, e.g. "Computer (Hard)".
func (that *Game) playerLabel(player *Player) string {
	if player.IsBot() {
		return fmt.Sprintf("%s (%s)", player.Name, that.Strategy)
	}

	return player.Name
}

// Summary - the one line history text for a finished game.
func (that *Game) Summary() string {
	result := that.Result()

	switch result.Status {
	case StatusWin:
		winner := that.PlayerByMark(result.Winner)
		loser := that.PlayerByMark(result.Winner.Opponent())

		return fmt.Sprintf("%s defeated %s", that.playerLabel(winner), that.playerLabel(loser))
	case StatusTie:
		return fmt.Sprintf("Tie: %s vs %s", that.playerLabel(that.PlayerX), that.playerLabel(that.PlayerO))
	default:
		return fmt.Sprintf("%s vs %s in progress", that.playerLabel(that.PlayerX), that.playerLabel(that.PlayerO))
	}
}
