package entity

import (
	"strings"

	"github.com/google/uuid"
)

const botIDPrefix = "bot:"

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mark Mark   `json:"mark,omitempty"`
}

func NewPlayer(name string, mark Mark) *Player {
	return &Player{
		ID:   uuid.NewString(),
		Name: name,
		Mark: mark,
	}
}

func NewBotPlayer(name string, mark Mark) *Player {
	return &Player{
		ID:   botIDPrefix + uuid.NewString(),
		Name: name,
		Mark: mark,
	}
}

func (that *Player) IsBot() bool {
	return strings.HasPrefix(that.ID, botIDPrefix)
}
