package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
)

func TestNewHistoryRepository(t *testing.T) {
	_, err := NewHistoryRepository(0)

	require.ErrorIs(t, err, ErrInvalidHistorySize)
}

func TestHistoryRepository_List(t *testing.T) {
	t.Run("Empty history", func(t *testing.T) {
		ctx, _ := suite.New(t)

		historyRepo, err := NewHistoryRepository(DefaultHistorySize)
		require.NoError(t, err)

		entries, err := historyRepo.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Keeps only the most recent entries, newest first", func(t *testing.T) {
		ctx, _ := suite.New(t)

		historyRepo, err := NewHistoryRepository(3)
		require.NoError(t, err)

		// Given: five results added one after another
		start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		for i := range 5 {
			err = historyRepo.Add(ctx, entity.HistoryEntry{
				SessionID: fmt.Sprintf("s%d", i),
				PlayedAt:  start.Add(time.Duration(i) * time.Minute),
				Summary:   fmt.Sprintf("game %d", i),
			})
			require.NoError(t, err)
		}

		// When: listing the history
		entries, err := historyRepo.List(ctx)

		// Then: only the last three remain, newest first
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "game 4", entries[0].Summary)
		assert.Equal(t, "game 3", entries[1].Summary)
		assert.Equal(t, "game 2", entries[2].Summary)
		assert.Equal(t, "Mon Jan  1 12:04:00 2024 - game 4", entries[0].String())
	})
}
