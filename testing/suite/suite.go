package suite

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"testing"
	"time"
)

const (
	maxWaitDuration = 30 * time.Second
	defaultSeed     = 42
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Rand is seeded with a fixed value so bot games replay identically.
	Rand *rand.Rand
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Rand:   rand.New(rand.NewSource(defaultSeed)), //nolint: gosec // deterministic tests
	}
}
