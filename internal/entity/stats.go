package entity

import "time"

// Outcome is a finished session seen from one player's side.
type Outcome int

const (
	OutcomeLoss Outcome = -1
	OutcomeTie  Outcome = 0
	OutcomeWin  Outcome = 1
)

// OutcomeFor - translates a terminal result into the outcome for mark.
func OutcomeFor(result GameResult, mark Mark) Outcome {
	switch {
	case result.IsWinFor(mark):
		return OutcomeWin
	case result.Status == StatusWin:
		return OutcomeLoss
	default:
		return OutcomeTie
	}
}

type PlayerStats struct {
	Name       string `json:"name"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Ties       int    `json:"ties"`
	TotalGames int    `json:"total_games"`
}

func (that *PlayerStats) Update(outcome Outcome) {
	that.TotalGames++

	switch outcome {
	case OutcomeWin:
		that.Wins++
	case OutcomeTie:
		that.Ties++
	case OutcomeLoss:
		that.Losses++
	}
}

// WinRate - wins as a percentage of total games, 0 when nothing was played.
func (that PlayerStats) WinRate() float64 {
	if that.TotalGames == 0 {
		return 0
	}

	return float64(that.Wins) / float64(that.TotalGames) * 100
}

// HistoryEntry is one line of the recent results list.
type HistoryEntry struct {
	SessionID string    `json:"session_id"`
	PlayedAt  time.Time `json:"played_at"`
	Summary   string    `json:"summary"`
}

func (that HistoryEntry) String() string {
	return that.PlayedAt.Format(time.ANSIC) + " - " + that.Summary
}
