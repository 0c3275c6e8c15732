package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// errExit stops the menu loop.
var errExit = errors.New("exit requested")

type uMatch interface {
	PlayVsComputer(ctx context.Context, name string, strategy entity.Strategy, collaborator tictactoe.Collaborator) (*entity.Game, error)
	PlayMultiplayer(ctx context.Context, nameX, nameO string, collaborator tictactoe.Collaborator) (*entity.Game, error)

	Stats(ctx context.Context) ([]entity.PlayerStats, error)
	History(ctx context.Context) ([]entity.HistoryEntry, error)
	TotalGames() int
	ComputerName() string
}

type Options struct {
	Color           bool
	Sound           bool
	DefaultStrategy entity.Strategy
	HistorySize     int
}

// Terminal is the terminal front end: it runs the menu and plays the human seats.
type Terminal struct {
	logger *slog.Logger
	uMatch uMatch

	in  *bufio.Scanner
	out *termenv.Output

	sound           bool
	defaultStrategy entity.Strategy
	historySize     int

	// per session display state
	mode     string
	lastMove string

	// notice is shown under the next header, so a redraw does not wipe it
	notice string

	handlers map[string]func(ctx context.Context) error
}

func New(logger *slog.Logger, uMatch uMatch, in io.Reader, out io.Writer, opts Options) *Terminal {
	var outputOpts []termenv.OutputOption
	if !opts.Color {
		outputOpts = append(outputOpts, termenv.WithProfile(termenv.Ascii))
	}

	if !opts.DefaultStrategy.IsValid() {
		opts.DefaultStrategy = entity.StrategyMinimax
	}

	server := &Terminal{
		logger: logger.With("component", "console"),
		uMatch: uMatch,

		in:  bufio.NewScanner(in),
		out: termenv.NewOutput(out, outputOpts...),

		sound:           opts.Sound,
		defaultStrategy: opts.DefaultStrategy,
		historySize:     opts.HistorySize,

		handlers: make(map[string]func(context.Context) error),
	}

	server.handlers["1"] = server.handleVsComputer
	server.handlers["2"] = server.handleMultiplayer
	server.handlers["3"] = server.handleStatistics
	server.handlers["4"] = server.handleToggleSound
	server.handlers["5"] = server.handleHistory
	server.handlers["6"] = server.handleExit

	return server
}

// Run - shows the main menu until the user exits, the input ends or ctx is cancelled.
func (that *Terminal) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("console stopped: %w", err)
		}

		that.showMenu()

		choice, err := that.readLine()
		if err != nil {
			return that.stopped(err)
		}

		handler, ok := that.handlers[choice]
		if !ok {
			that.notify("Invalid choice! Please select 1-6.")
			continue
		}

		that.bell()

		if err = handler(ctx); err != nil {
			if errors.Is(err, errExit) {
				log.Info("exit requested")
				return nil
			}

			return that.stopped(err)
		}
	}
}

// stopped - closed input ends the program normally, anything else is returned.
func (that *Terminal) stopped(err error) error {
	if errors.Is(err, io.EOF) {
		that.logger.Info("input closed")
		return nil
	}

	return err
}

func (that *Terminal) handleVsComputer(ctx context.Context) error {
	name, err := that.askName("Enter your name: ", "Player", that.uMatch.ComputerName())
	if err != nil {
		return err
	}

	strategy, err := that.askStrategy()
	if err != nil {
		return err
	}

	that.printf("\nStarting game against %s AI...\n", that.accent(strategy.String()))

	for {
		that.mode = fmt.Sprintf("VS Computer (%s)", strategy)

		game, err := that.uMatch.PlayVsComputer(ctx, name, strategy, that)
		if err != nil {
			return fmt.Errorf("failed to play against computer: %w", err)
		}

		that.showResult(game)

		again, err := that.askPlayAgain()
		if err != nil || !again {
			return err
		}
	}
}

func (that *Terminal) handleMultiplayer(ctx context.Context) error {
	nameX, err := that.askName("Enter Player 1 name (X): ", "Player 1", that.uMatch.ComputerName())
	if err != nil {
		return err
	}

	nameO, err := that.askName("Enter Player 2 name (O): ", "Player 2", that.uMatch.ComputerName(), nameX)
	if err != nil {
		return err
	}

	for {
		that.mode = "Multiplayer"

		game, err := that.uMatch.PlayMultiplayer(ctx, nameX, nameO, that)
		if err != nil {
			return fmt.Errorf("failed to play multiplayer: %w", err)
		}

		that.showResult(game)

		again, err := that.askPlayAgain()
		if err != nil || !again {
			return err
		}
	}
}

func (that *Terminal) handleStatistics(ctx context.Context) error {
	stats, err := that.uMatch.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get statistics: %w", err)
	}

	that.showStatistics(stats, that.uMatch.TotalGames())

	return that.waitForEnter()
}

func (that *Terminal) handleToggleSound(_ context.Context) error {
	that.sound = !that.sound

	if that.sound {
		that.println("Sound " + that.success("enabled") + "!")
	} else {
		that.println("Sound " + that.danger("disabled") + "!")
	}

	return nil
}

func (that *Terminal) handleHistory(ctx context.Context) error {
	entries, err := that.uMatch.History(ctx)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}

	that.showHistory(entries)

	return that.waitForEnter()
}

func (that *Terminal) handleExit(_ context.Context) error {
	that.clearScreen()
	that.println(that.title("Thanks for playing Tic Tac Toe!"))
	that.println("Come back soon for more epic battles!")

	return errExit
}

// askName - re-prompts while the name belongs to the computer or the other seat,
// otherwise their stats would be merged.
func (that *Terminal) askName(prompt, fallback string, taken ...string) (string, error) {
	for {
		that.printf("%s", that.bold(prompt))

		name, err := that.readLine()
		if err != nil {
			return "", err
		}

		if name == "" {
			name = fallback
		}

		if !isTaken(name, taken) {
			return name, nil
		}

		that.println(that.danger(fmt.Sprintf("Name %q is already taken, choose another.", name)))
	}
}

func isTaken(name string, taken []string) bool {
	for _, other := range taken {
		if strings.EqualFold(name, other) {
			return true
		}
	}

	return false
}

// askStrategy - an empty line picks the configured default.
func (that *Terminal) askStrategy() (entity.Strategy, error) {
	that.showDifficultyMenu()

	for {
		that.printf("%s", that.bold(fmt.Sprintf("Choose difficulty (1-4, Enter for %s): ", that.defaultStrategy)))

		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		if line == "" {
			return that.defaultStrategy, nil
		}

		strategy, err := entity.ParseStrategy(line)
		if err == nil {
			that.bell()
			return strategy, nil
		}

		that.println(that.danger("Invalid choice! Please select 1-4."))
	}
}

func (that *Terminal) askPlayAgain() (bool, error) {
	that.printf("%s", that.bold("\nPlay another round? (y/n): "))

	answer, err := that.readLine()
	if err != nil {
		return false, err
	}

	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"), nil
}

func (that *Terminal) waitForEnter() error {
	that.printf("\nPress Enter to continue...")

	_, err := that.readLine()

	return err
}

func (that *Terminal) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	return strings.TrimSpace(that.in.Text()), nil
}
