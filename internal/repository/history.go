package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const DefaultHistorySize = 10

var ErrInvalidHistorySize = errors.New("history size must be positive")

type HistoryRepository interface {
	Add(ctx context.Context, entry entity.HistoryEntry) error
	List(ctx context.Context) ([]entity.HistoryEntry, error)
}

// memHistory keeps the most recent results only, oldest dropped first.
type memHistory struct {
	mu      sync.Mutex
	size    int
	entries []entity.HistoryEntry
}

func NewHistoryRepository(size int) (HistoryRepository, error) {
	if size <= 0 {
		return nil, ErrInvalidHistorySize
	}

	return &memHistory{
		size:    size,
		entries: make([]entity.HistoryEntry, 0, size),
	}, nil
}

func (that *memHistory) Add(_ context.Context, entry entity.HistoryEntry) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.entries = append(that.entries, entry)
	if len(that.entries) > that.size {
		that.entries = append(that.entries[:0], that.entries[len(that.entries)-that.size:]...)
	}

	return nil
}

// List - returns the kept entries, newest first.
func (that *memHistory) List(_ context.Context) ([]entity.HistoryEntry, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	entries := make([]entity.HistoryEntry, 0, len(that.entries))
	for i := len(that.entries) - 1; i >= 0; i-- {
		entries = append(entries, that.entries[i])
	}

	return entries, nil
}
