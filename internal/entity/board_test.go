package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_PlaceAndClear(t *testing.T) {
	t.Run("Place followed by Clear restores every cell", func(t *testing.T) {
		// Given: a board with a few marks on it
		board := Board{
			PlayerX, EmptyCell, EmptyCell,
			EmptyCell, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}
		before := board

		for _, move := range before.EmptyCells() {
			for _, mark := range []Mark{PlayerX, PlayerO} {
				// When: a mark is placed and retracted
				board.Place(move.Row, move.Col, mark)
				assert.True(t, board.IsOccupied(move.Row, move.Col))
				assert.Equal(t, mark, board.Cell(move.Row, move.Col))
				board.Clear(move.Row, move.Col)

				// Then: the board is identical to what it was
				require.Equal(t, before, board)
			}
		}
	})

	t.Run("IsOccupied reflects the cell content", func(t *testing.T) {
		// Given: a board with X in the centre
		board := NewBoard()
		board.Place(1, 1, PlayerX)

		// Then: only the centre is occupied
		assert.True(t, board.IsOccupied(1, 1))
		assert.False(t, board.IsOccupied(0, 0))
		assert.Len(t, board.EmptyCells(), 8)
	})
}

func TestBoard_HasWinner(t *testing.T) {
	for _, combo := range WinCombos {
		// Given: a board where X fills exactly one line
		board := NewBoard()
		for _, index := range combo {
			board[index] = PlayerX
		}

		// Then: X is a winner and O is not
		assert.True(t, board.HasWinner(PlayerX), "line %v", combo)
		assert.False(t, board.HasWinner(PlayerO), "line %v", combo)
	}

	t.Run("Full board without aligned triples", func(t *testing.T) {
		// Given: a full drawn board
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		// Then: there is no winner and the board is full
		assert.False(t, board.HasWinner(PlayerX))
		assert.False(t, board.HasWinner(PlayerO))
		assert.True(t, board.IsFull())
		assert.Empty(t, board.EmptyCells())
	})

	t.Run("Empty cells never win", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// Then: the empty mark is not reported as a winner
		assert.False(t, board.HasWinner(EmptyCell))
		assert.False(t, board.IsFull())
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("Reads nine row-major tokens", func(t *testing.T) {
		// Given: tokens for a custom board
		tokens := strings.Fields("X _ O  _ X _  O _ _")

		// When: parsing them
		board, err := ParseBoard(tokens)

		// Then: marks land in row-major order and anything else is empty
		require.NoError(t, err)
		assert.Equal(t, Board{
			PlayerX, EmptyCell, PlayerO,
			EmptyCell, PlayerX, EmptyCell,
			PlayerO, EmptyCell, EmptyCell,
		}, board)
	})

	t.Run("Unknown characters are free cells", func(t *testing.T) {
		// Given: tokens with characters other than X and O
		tokens := strings.Fields("x o - . 1 Xylophone Oak ? _")

		// When: parsing them
		board, err := ParseBoard(tokens)

		// Then: only the first character of each token is considered
		require.NoError(t, err)
		assert.Equal(t, Board{
			EmptyCell, EmptyCell, EmptyCell,
			EmptyCell, EmptyCell, PlayerX,
			PlayerO, EmptyCell, EmptyCell,
		}, board)
	})

	t.Run("Too few tokens", func(t *testing.T) {
		// When: parsing fewer than nine tokens
		_, err := ParseBoard([]string{"X", "O"})

		// Then: ErrMalformedBoard is returned
		require.ErrorIs(t, err, ErrMalformedBoard)
	})
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, PlayerTie.Opponent())
}
