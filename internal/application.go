package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs the application on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the stores, the bot and the match manager and serves the menu on in/out.
func Run(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	historyRepo, err := repository.NewHistoryRepository(conf.HistorySize)
	if err != nil {
		return fmt.Errorf("could not create history storage: %w", err)
	}

	statsRepo := repository.NewStatsRepository()

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Info("Starting game", "difficulty", conf.DefaultStrategy().String(), "seed", seed)

	botService := service.NewBotService(rand.New(rand.NewSource(seed))) //nolint: gosec // game moves, not secrets
	matchManager := usecase.NewMatchManager(logger, statsRepo, historyRepo, botService, conf.ComputerName)

	terminal := console.New(logger, matchManager, in, out, console.Options{
		Color:           !conf.NoColor,
		Sound:           !conf.Mute,
		DefaultStrategy: conf.DefaultStrategy(),
		HistorySize:     conf.HistorySize,
	})

	if err = terminal.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Application stopped", "total_games", matchManager.TotalGames())

	return nil
}
