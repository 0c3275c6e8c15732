package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

const DefaultComputerName = "Computer"

type statsRepo interface {
	CreateOrUpdate(ctx context.Context, stats *entity.PlayerStats) error
	GetByName(ctx context.Context, name string) (*entity.PlayerStats, error)
	List(ctx context.Context) ([]entity.PlayerStats, error)
}

type historyRepo interface {
	Add(ctx context.Context, entry entity.HistoryEntry) error
	List(ctx context.Context) ([]entity.HistoryEntry, error)
}

type botService interface {
	NextMove(game *entity.Game) (int, error)
}

// MatchManager runs sessions one after another and keeps the score across them.
type MatchManager struct {
	logger       *slog.Logger
	statsRepo    statsRepo
	historyRepo  historyRepo
	bot          botService
	computerName string
	now          func() time.Time
	totalGames   int
}

func NewMatchManager(logger *slog.Logger, statsRepo statsRepo, historyRepo historyRepo, bot botService, computerName string) *MatchManager {
	if computerName == "" {
		computerName = DefaultComputerName
	}

	return &MatchManager{
		logger: logger.With("component", "match"),

		statsRepo:    statsRepo,
		historyRepo:  historyRepo,
		bot:          bot,
		computerName: computerName,
		now:          time.Now,
	}
}

// PlayVsComputer - the human takes X and moves first, the computer plays O with strategy.
func (that *MatchManager) PlayVsComputer(ctx context.Context, name string, strategy entity.Strategy, collaborator tictactoe.Collaborator) (*entity.Game, error) {
	if !strategy.IsValid() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownStrategy, strategy)
	}

	if strings.EqualFold(name, that.computerName) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrNameTaken, name)
	}

	human := entity.NewPlayer(name, entity.PlayerX)
	computer := entity.NewBotPlayer(that.computerName, entity.PlayerO)

	return that.play(ctx, entity.NewGame(human, computer, strategy), collaborator)
}

// PlayMultiplayer - two humans sharing the terminal, nameX moves first.
// Stats are keyed by name, so the seats must differ from each other and from the computer.
func (that *MatchManager) PlayMultiplayer(ctx context.Context, nameX, nameO string, collaborator tictactoe.Collaborator) (*entity.Game, error) {
	for _, name := range []string{nameX, nameO} {
		if strings.EqualFold(name, that.computerName) {
			return nil, fmt.Errorf("%w: %q", apperror.ErrNameTaken, name)
		}
	}

	if strings.EqualFold(nameX, nameO) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrNameTaken, nameO)
	}

	playerX := entity.NewPlayer(nameX, entity.PlayerX)
	playerO := entity.NewPlayer(nameO, entity.PlayerO)

	return that.play(ctx, entity.NewGame(playerX, playerO, 0), collaborator)
}

func (that *MatchManager) play(ctx context.Context, game *entity.Game, collaborator tictactoe.Collaborator) (*entity.Game, error) {
	log := that.logger.With("method", "play", "session_id", game.ID)

	session := tictactoe.NewSession(that.logger, game, that.bot)

	result, err := session.Play(ctx, collaborator)
	if err != nil {
		return game, fmt.Errorf("failed to play session: %w", err)
	}

	if err = that.record(ctx, game, result); err != nil {
		return game, fmt.Errorf("failed to record result: %w", err)
	}

	log.Info("result recorded", "result", result.String(), "total_games", that.totalGames)

	return game, nil
}

// record - updates both seats' stats and appends the history line.
func (that *MatchManager) record(ctx context.Context, game *entity.Game, result entity.GameResult) error {
	that.totalGames++

	for _, player := range []*entity.Player{game.PlayerX, game.PlayerO} {
		if err := that.updateStats(ctx, player.Name, entity.OutcomeFor(result, player.Mark)); err != nil {
			return err
		}
	}

	entry := entity.HistoryEntry{
		SessionID: game.ID,
		PlayedAt:  that.now(),
		Summary:   game.Summary(),
	}

	if err := that.historyRepo.Add(ctx, entry); err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}

	return nil
}

func (that *MatchManager) updateStats(ctx context.Context, name string, outcome entity.Outcome) error {
	stats, err := that.statsRepo.GetByName(ctx, name)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		stats = &entity.PlayerStats{Name: name}
	} else if err != nil {
		return fmt.Errorf("failed to get stats of %s: %w", name, err)
	}

	stats.Update(outcome)

	if err = that.statsRepo.CreateOrUpdate(ctx, stats); err != nil {
		return fmt.Errorf("failed to update stats of %s: %w", name, err)
	}

	return nil
}

func (that *MatchManager) Stats(ctx context.Context) ([]entity.PlayerStats, error) {
	stats, err := that.statsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}

	return stats, nil
}

// History - the recent results, newest first.
func (that *MatchManager) History(ctx context.Context) ([]entity.HistoryEntry, error) {
	entries, err := that.historyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return entries, nil
}

func (that *MatchManager) TotalGames() int {
	return that.totalGames
}

func (that *MatchManager) ComputerName() string {
	return that.computerName
}
