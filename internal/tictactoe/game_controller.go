package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// State is the position of a session in its turn cycle.
type State uint8

const (
	StateWaitingForMoveX State = iota
	StateWaitingForMoveO
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateWaitingForMoveX:
		return "waiting_for_x"
	case StateWaitingForMoveO:
		return "waiting_for_o"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// MoveEvent is what the session reports after every placement.
type MoveEvent struct {
	SessionID string
	Player    *entity.Player
	Mark      entity.Mark
	Cell      int
	Board     entity.Board
	Result    entity.GameResult
}

// Collaborator is the outer layer that supplies human moves and consumes every placement.
type Collaborator interface {
	HumanMove(ctx context.Context, board entity.Board, player *entity.Player) (int, error)
	Rejected(player *entity.Player, cell int, err error)
	MoveMade(event MoveEvent)
}

type botService interface {
	NextMove(game *entity.Game) (int, error)
}

// Session orchestrates one match on a single board. It performs no I/O.
type Session struct {
	logger *slog.Logger
	game   *entity.Game
	bot    botService
}

func NewSession(logger *slog.Logger, game *entity.Game, bot botService) *Session {
	return &Session{
		logger: logger.With("component", "session", "session_id", game.ID),
		game:   game,
		bot:    bot,
	}
}

func (that *Session) ID() string {
	return that.game.ID
}

// Game - returns the match state; callers must not modify it.
func (that *Session) Game() *entity.Game {
	return that.game
}

func (that *Session) Board() entity.Board {
	return that.game.Board
}

// Turn - the mark on move, Empty once finished.
func (that *Session) Turn() entity.Mark {
	return that.game.Turn
}

func (that *Session) Result() entity.GameResult {
	return that.game.Result()
}

func (that *Session) IsFinished() bool {
	return that.game.IsFinished()
}

func (that *Session) State() State {
	switch {
	case that.IsFinished():
		return StateFinished
	case that.game.Turn == entity.PlayerO:
		return StateWaitingForMoveO
	default:
		return StateWaitingForMoveX
	}
}

// MakeTurn - applies a move for the mark on move and advances the turn cycle.
func (that *Session) MakeTurn(mark entity.Mark, cell int) (MoveEvent, error) {
	if that.IsFinished() {
		return MoveEvent{}, apperror.ErrGameFinished
	}

	if that.game.Turn != mark {
		return MoveEvent{}, apperror.ErrNotYourTurn
	}

	if err := that.game.Board.Place(cell, mark); err != nil {
		return MoveEvent{}, fmt.Errorf("invalid turn: %w", err)
	}

	result := that.updateGameStatus(mark)

	that.logger.Debug("mark placed", "mark", mark.String(), "cell", cell, "result", result.String())

	return MoveEvent{
		SessionID: that.game.ID,
		Player:    that.game.PlayerByMark(mark),
		Mark:      mark,
		Cell:      cell,
		Board:     that.game.Board,
		Result:    result,
	}, nil
}

// BotTurn - lets the bot seat on move play. An illegal bot move is a bug, not a retry.
func (that *Session) BotTurn() (MoveEvent, error) {
	if that.IsFinished() {
		return MoveEvent{}, apperror.ErrGameFinished
	}

	cell, err := that.bot.NextMove(that.game)
	if err != nil {
		return MoveEvent{}, fmt.Errorf("failed to get bot move: %w", err)
	}

	event, err := that.MakeTurn(that.game.Turn, cell)
	if err != nil {
		return MoveEvent{}, fmt.Errorf("bot chose illegal cell %d: %w", cell, err)
	}

	return event, nil
}

// Play - drives the match to the end. Rejected human entries are reported and asked again.
func (that *Session) Play(ctx context.Context, collaborator Collaborator) (entity.GameResult, error) {
	log := that.logger.With("method", "Play")
	log.Info("session started", "player_x", that.game.PlayerX.Name, "player_o", that.game.PlayerO.Name)

	for !that.IsFinished() {
		if err := ctx.Err(); err != nil {
			return that.Result(), fmt.Errorf("session interrupted: %w", err)
		}

		player := that.game.OnMove()

		if player.IsBot() {
			event, err := that.BotTurn()
			if err != nil {
				return that.Result(), err
			}

			collaborator.MoveMade(event)

			continue
		}

		cell, err := collaborator.HumanMove(ctx, that.game.Board, player)
		if err != nil {
			return that.Result(), fmt.Errorf("failed to read move of %s: %w", player.Name, err)
		}

		event, err := that.MakeTurn(player.Mark, cell)
		if apperror.IsPlacementError(err) {
			log.Debug("move rejected", "player", player.ID, "cell", cell, "error", err)
			collaborator.Rejected(player, cell, err)

			continue
		}

		if err != nil {
			return that.Result(), fmt.Errorf("failed to make turn: %w", err)
		}

		collaborator.MoveMade(event)
	}

	result := that.Result()
	log.Info("session finished", "result", result.String(), "moves", that.game.Board.MoveCount())

	return result, nil
}

// updateGameStatus - ends the game on a win or a tie, otherwise passes the turn.
func (that *Session) updateGameStatus(mark entity.Mark) entity.GameResult {
	result := that.game.Result()
	if result.IsTerminal() {
		that.game.Turn = entity.Empty
	} else {
		that.game.Turn = mark.Opponent()
	}

	return result
}
