package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrInvalidHistorySize = errors.New("history-size must be positive")

type Config struct {
	LogLevel     string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	LogFile      string `yaml:"log-file" env:"TTT_LOG_FILE"`
	Difficulty   string `yaml:"difficulty" env:"TTT_DIFFICULTY" env-default:"impossible"`
	Seed         int64  `yaml:"seed" env:"TTT_SEED" env-default:"0"`
	HistorySize  int    `yaml:"history-size" env:"TTT_HISTORY_SIZE" env-default:"10"`
	Mute         bool   `yaml:"mute" env:"TTT_MUTE"`
	NoColor      bool   `yaml:"no-color" env:"TTT_NO_COLOR"`
	ComputerName string `yaml:"computer-name" env:"TTT_COMPUTER_NAME" env-default:"Computer"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.HistorySize <= 0 {
		return ErrInvalidHistorySize
	}

	if _, err := entity.ParseStrategy(that.Difficulty); err != nil {
		return fmt.Errorf("difficulty %q: %w", that.Difficulty, err)
	}

	return nil
}

// DefaultStrategy - the tier offered when the difficulty prompt is left blank.
func (that *Config) DefaultStrategy() entity.Strategy {
	strategy, err := entity.ParseStrategy(that.Difficulty)
	if err != nil {
		return entity.StrategyMinimax
	}

	return strategy
}
