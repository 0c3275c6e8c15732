package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Strategy is the move-selection policy of a bot seat, resolved once per session.
type Strategy uint8

const (
	StrategyRandom Strategy = iota + 1
	StrategyOffense
	StrategyStrategic
	StrategyMinimax
)

// Strategies lists every tier from the weakest to the strongest.
var Strategies = []Strategy{StrategyRandom, StrategyOffense, StrategyStrategic, StrategyMinimax}

const (
	EasyDifficulty       = "easy"
	MediumDifficulty     = "medium"
	HardDifficulty       = "hard"
	ImpossibleDifficulty = "impossible"
)

func (s Strategy) IsValid() bool {
	return s >= StrategyRandom && s <= StrategyMinimax
}

// Level - returns the 1-based difficulty number shown in menus.
func (s Strategy) Level() int {
	return int(s)
}

// Difficulty - returns the difficulty name used in config and history, e.g. "hard".
func (s Strategy) Difficulty() string {
	switch s {
	case StrategyRandom:
		return EasyDifficulty
	case StrategyOffense:
		return MediumDifficulty
	case StrategyStrategic:
		return HardDifficulty
	case StrategyMinimax:
		return ImpossibleDifficulty
	default:
		return ""
	}
}

func (s Strategy) String() string {
	name := s.Difficulty()
	if name == "" {
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}

	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseStrategy - accepts a difficulty name ("hard"), a strategy name ("minimax")
// or a menu number ("1".."4").
func ParseStrategy(s string) (Strategy, error) {
	value := strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(value); err == nil {
		strategy := Strategy(n) //nolint: gosec // range is checked right below
		if n < 0 || !strategy.IsValid() {
			return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, s)
		}

		return strategy, nil
	}

	switch value {
	case EasyDifficulty, "random":
		return StrategyRandom, nil
	case MediumDifficulty, "offense":
		return StrategyOffense, nil
	case HardDifficulty, "strategic":
		return StrategyStrategic, nil
	case ImpossibleDifficulty, "minimax":
		return StrategyMinimax, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownStrategy, s)
	}
}
