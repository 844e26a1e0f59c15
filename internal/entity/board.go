package entity

import (
	"errors"
	"fmt"
)

// Mark is the content of a single board cell.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"

	EmptyCell Mark = ""
)

// BoardSize is the length of a board side.
const BoardSize = 3

var (
	ErrMalformedBoard = errors.New("malformed board")

	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Opponent returns the other side's mark, or EmptyCell for anything that is not X or O.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Move is a 0-indexed board coordinate.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is returned when there is no empty cell left to play.
var NoMove = Move{Row: -1, Col: -1}

func (that Move) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is a 3x3 grid stored row-major. It is a value type: assigning it copies the grid.
type Board [BoardSize * BoardSize]Mark

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// ParseBoard builds a board from 9 row-major tokens. A token starting with X or O becomes
// that mark; any other token leaves the cell empty.
func ParseBoard(tokens []string) (Board, error) {
	var board Board

	if len(tokens) != len(board) {
		return board, fmt.Errorf("%w: expected %d cells, got %d", ErrMalformedBoard, len(board), len(tokens))
	}

	for i, token := range tokens {
		if token == "" {
			continue
		}

		switch mark := Mark(token[:1]); mark {
		case PlayerX, PlayerO:
			board[i] = mark
		}
	}

	return board, nil
}

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that *Board) Cell(row, col int) Mark {
	return that[row*BoardSize+col]
}

// IsOccupied reports whether the cell holds X or O. Coordinates must be in bounds.
func (that *Board) IsOccupied(row, col int) bool {
	return that.Cell(row, col).IsPlayer()
}

// Place writes mark into the cell without any validation; callers check IsOccupied first.
func (that *Board) Place(row, col int, mark Mark) {
	that[row*BoardSize+col] = mark
}

// Clear resets the cell to empty.
func (that *Board) Clear(row, col int) {
	that[row*BoardSize+col] = EmptyCell
}

// HasWinner reports whether mark fills a row, a column or a diagonal.
func (that *Board) HasWinner(mark Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if !cell.IsPlayer() {
			return false
		}
	}

	return true
}

// EmptyCells lists the free cells in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, len(that))
	for row := range BoardSize {
		for col := range BoardSize {
			if !that.IsOccupied(row, col) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}
