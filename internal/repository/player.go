package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrPlayerNotFound = errors.New("player not found")

// StatsRepository keeps per-player statistics keyed by player name.
type StatsRepository interface {
	CreateOrUpdate(ctx context.Context, stats *entity.PlayerStats) error
	GetByName(ctx context.Context, name string) (*entity.PlayerStats, error)
	List(ctx context.Context) ([]entity.PlayerStats, error)
}

type memStats struct {
	mu    sync.Mutex
	stats map[string]entity.PlayerStats
}

func NewStatsRepository() StatsRepository {
	return &memStats{
		stats: make(map[string]entity.PlayerStats),
	}
}

func (that *memStats) CreateOrUpdate(_ context.Context, stats *entity.PlayerStats) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stats["player:"+stats.Name] = *stats

	return nil
}

func (that *memStats) GetByName(_ context.Context, name string) (*entity.PlayerStats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	stats, ok := that.stats["player:"+name]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	return &stats, nil
}

// List - all stats ordered by name.
func (that *memStats) List(_ context.Context) ([]entity.PlayerStats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	list := make([]entity.PlayerStats, 0, len(that.stats))
	for _, stats := range that.stats {
		list = append(list, stats)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})

	return list, nil
}
