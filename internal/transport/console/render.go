package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	colorRed     = "1"
	colorGreen   = "2"
	colorYellow  = "3"
	colorBlue    = "4"
	colorMagenta = "5"
	colorCyan    = "6"

	rule = "============================================================"
)

func (that *Terminal) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func (that *Terminal) println(line string) {
	fmt.Fprintln(that.out, line)
}

func (that *Terminal) style(s, color string) termenv.Style {
	return that.out.String(s).Foreground(that.out.Color(color))
}

func (that *Terminal) bold(s string) string {
	return that.out.String(s).Bold().String()
}

func (that *Terminal) title(s string) string {
	return that.style(s, colorYellow).Bold().String()
}

func (that *Terminal) accent(s string) string {
	return that.style(s, colorCyan).Bold().String()
}

func (that *Terminal) success(s string) string {
	return that.style(s, colorGreen).String()
}

func (that *Terminal) danger(s string) string {
	return that.style(s, colorRed).String()
}

// markStyle - X in red, O in green.
func (that *Terminal) markStyle(mark entity.Mark, s string) string {
	switch mark {
	case entity.PlayerX:
		return that.style(s, colorRed).Bold().String()
	case entity.PlayerO:
		return that.style(s, colorGreen).Bold().String()
	default:
		return that.out.String(s).Faint().String()
	}
}

// bell - the terminal bell stands in for move and result sounds.
func (that *Terminal) bell() {
	if that.sound {
		that.printf("\a")
	}
}

// clearScreen - skipped without colors so piped output stays readable.
func (that *Terminal) clearScreen() {
	if that.out.Profile == termenv.Ascii {
		return
	}

	that.out.ClearScreen()
}

// notify - queues a message for the next screen.
func (that *Terminal) notify(message string) {
	that.notice = message
}

func (that *Terminal) printHeader() {
	that.clearScreen()
	that.println(that.style(rule, colorBlue).Bold().String())
	that.println(that.style("                        TIC TAC TOE", colorBlue).Bold().String())
	that.println(that.style(rule, colorBlue).Bold().String())
	that.println("")

	if that.notice != "" {
		that.println(that.danger(that.notice))
		that.println("")
		that.notice = ""
	}
}

func (that *Terminal) showMenu() {
	sound := that.danger("OFF")
	if that.sound {
		sound = that.success("ON")
	}

	that.printHeader()
	that.println(that.title("*** SELECT GAME MODE ***"))
	that.println("")
	that.println("1. " + that.success("VS Computer (AI Challenge)"))
	that.println("2. " + that.style("Multiplayer (Local Battle)", colorCyan).String())
	that.println("3. " + that.style("View Statistics", colorMagenta).String())
	that.println("4. Toggle Sound (" + sound + ")")
	that.println("5. " + that.style("Game History", colorBlue).String())
	that.println("6. " + that.danger("Exit Game"))
	that.println("")
	that.printf("%s", that.bold("Enter your choice (1-6): "))
}

func (that *Terminal) showDifficultyMenu() {
	that.printHeader()
	that.println(that.title("*** SELECT AI DIFFICULTY ***"))
	that.println("")
	that.println("1. " + that.success("Easy Mode (Random moves)"))
	that.println("2. " + that.style("Medium Mode (Smart offense)", colorCyan).String())
	that.println("3. " + that.style("Hard Mode (Master AI)", colorMagenta).String())
	that.println("4. " + that.danger("Impossible Mode (Unbeatable)"))
	that.println("")
}

func (that *Terminal) showBoardScreen(board entity.Board) {
	that.printHeader()
	that.println(that.bold("Mode: ") + that.success(that.mode))

	if that.lastMove != "" {
		that.println("Last move: " + that.lastMove)
	}

	that.println(that.renderBoard(board))
}

// renderBoard - empty cells show their position number.
func (that *Terminal) renderBoard(board entity.Board) string {
	var sb strings.Builder

	sb.WriteString("\n")

	for row := range 3 {
		sb.WriteString("     |     |     \n")

		cells := make([]string, 0, 3)
		for col := range 3 {
			index := row*3 + col

			symbol := board[index].String()
			if board.IsEmpty(index) {
				symbol = strconv.Itoa(index + 1)
			}

			cells = append(cells, that.markStyle(board[index], symbol))
		}

		sb.WriteString("  " + strings.Join(cells, "  |  ") + "  \n")

		if row < 2 {
			sb.WriteString("_____|_____|_____\n")
		}
	}

	sb.WriteString("     |     |     \n")

	return sb.String()
}

func (that *Terminal) showStatistics(stats []entity.PlayerStats, totalGames int) {
	that.printHeader()
	that.println(that.title("*** GAME STATISTICS ***"))
	that.println("")

	if len(stats) == 0 {
		that.println("No games played yet.")
	}

	for _, item := range stats {
		label := "Player: "
		if item.Name == that.uMatch.ComputerName() {
			label = "Computer: "
		}

		that.println(that.bold(label) + that.success(item.Name))
		that.printf("   Wins: %d | Losses: %d | Ties: %d\n", item.Wins, item.Losses, item.Ties)
		that.printf("   Win Rate: %.1f%%\n\n", item.WinRate())
	}

	that.println(that.bold(fmt.Sprintf("Total Games Played: %d", totalGames)))
}

func (that *Terminal) showHistory(entries []entity.HistoryEntry) {
	that.printHeader()
	that.println(that.title(fmt.Sprintf("*** GAME HISTORY (Last %d games) ***", that.historySize)))
	that.println("")

	if len(entries) == 0 {
		that.println(that.danger("No games played yet!"))
		return
	}

	for i, entry := range entries {
		that.printf("%d. %s\n", i+1, that.success(entry.String()))
	}
}
