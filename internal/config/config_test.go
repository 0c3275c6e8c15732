package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the yaml file", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
difficulty: hard
seed: 7
history-size: 5
mute: true
no-color: true
computer-name: HAL
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, int64(7), conf.Seed)
		assert.Equal(t, 5, conf.HistorySize)
		assert.True(t, conf.Mute)
		assert.True(t, conf.NoColor)
		assert.Equal(t, "HAL", conf.ComputerName)
		assert.Equal(t, entity.StrategyStrategic, conf.DefaultStrategy())
	})

	t.Run("Falls back to defaults and env when the file is missing", func(t *testing.T) {
		t.Setenv("TTT_DIFFICULTY", "easy")
		t.Setenv("TTT_HISTORY_SIZE", "3")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 3, conf.HistorySize)
		assert.False(t, conf.Mute)
		assert.False(t, conf.NoColor)
		assert.Equal(t, "Computer", conf.ComputerName)
		assert.Equal(t, entity.StrategyRandom, conf.DefaultStrategy())
	})

	t.Run("Rejects a non positive history size", func(t *testing.T) {
		path := writeConfig(t, "history-size: -3\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidHistorySize)
	})

	t.Run("Rejects an unknown difficulty", func(t *testing.T) {
		path := writeConfig(t, "difficulty: nightmare\n")

		_, err := Load(path)

		require.ErrorIs(t, err, apperror.ErrUnknownStrategy)
	})
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "history-size: -1\n")

	assert.Panics(t, func() { MustLoad(path) })
}
