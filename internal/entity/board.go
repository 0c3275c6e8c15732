package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// BoardSize is the number of cells on the 3x3 grid.
const BoardSize = 9

// Mark is the content of a cell: Empty, X or O.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

// WinCombos are the eight three-in-a-row triples: rows, then columns, then diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (m Mark) String() string {
	switch m {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	case Empty:
		return " "
	default:
		return fmt.Sprintf("Mark(%d)", uint8(m))
	}
}

// IsPlayer - reports whether m is one of the two player marks.
func (m Mark) IsPlayer() bool {
	return m == PlayerX || m == PlayerO
}

// Opponent - returns the other player mark. Empty stays Empty.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// Board is the row-major 3x3 grid: row0={0,1,2}, row1={3,4,5}, row2={6,7,8}.
// It is a value type, so passing it to a function hands over a private copy.
type Board [BoardSize]Mark

func NewBoard() Board {
	return Board{}
}

// Place - puts mark on the empty cell at index.
func (that *Board) Place(index int, mark Mark) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, index)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidMark, mark)
	}

	if that[index] != Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that[index] = mark

	return nil
}

// Undo - clears a provisional placement made during lookahead.
// Out of range indexes are ignored.
func (that *Board) Undo(index int) {
	if index < 0 || index >= BoardSize {
		return
	}

	that[index] = Empty
}

func (that Board) IsEmpty(index int) bool {
	return index >= 0 && index < BoardSize && that[index] == Empty
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// EmptyCells - returns the indexes of all empty cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// MoveCount - returns how many marks have been placed.
func (that Board) MoveCount() int {
	return BoardSize - len(that.EmptyCells())
}

func (that Board) Evaluate() GameResult {
	return Evaluate(that)
}

// String renders the board as three rows, '.' for empty cells.
func (that Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		if cell == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(cell.String())
		}

		if i%3 == 2 && i != BoardSize-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// ParseBoard - builds a board from a 9 character string of 'X', 'O' and '.'/'_'/' '.
// Row separators ('/', '|', newlines) are skipped.
func ParseBoard(s string) (Board, error) {
	var board Board

	i := 0
	for _, r := range s {
		switch r {
		case '/', '|', '\n', '\r':
			continue
		}

		if i >= BoardSize {
			return Board{}, fmt.Errorf("%w: board %q has more than %d cells", apperror.ErrOutOfRange, s, BoardSize)
		}

		switch r {
		case 'X', 'x':
			board[i] = PlayerX
		case 'O', 'o':
			board[i] = PlayerO
		case '.', '_', ' ', '-':
			board[i] = Empty
		default:
			return Board{}, fmt.Errorf("%w: %q at cell %d", apperror.ErrInvalidMark, r, i)
		}
		i++
	}

	if i != BoardSize {
		return Board{}, fmt.Errorf("%w: board %q has %d cells", apperror.ErrOutOfRange, s, i)
	}

	return board, nil
}
