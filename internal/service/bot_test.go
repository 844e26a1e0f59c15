package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/testutil"
)

func newBotGame(kind string, board entity.Board) *entity.Game {
	game := entity.NewGame("123", entity.WithBotType)
	game.Board = board
	game.Status = entity.StatusOngoing
	game.Turn = entity.PlayerO
	game.Players = []*entity.Player{
		entity.NewHumanPlayer("human", entity.PlayerX),
		entity.NewBotPlayer("bot", entity.PlayerO, kind),
	}

	return game
}

func TestBotService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Minimax bot blocks the human", func(t *testing.T) {
		// Given: X threatens the top row and the bot plays O
		game := newBotGame(entity.KindMinimax, entity.Board{
			entity.PlayerX, entity.PlayerX, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		})

		for _, parallel := range []bool{false, true} {
			// When: the bot makes its turn
			played := game.Clone()
			move, err := NewBotService(testutil.NopLogger(), parallel).MakeTurn(ctx, played)

			// Then: it takes the last cell of the row and passes the turn
			require.NoError(t, err)
			assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
			assert.Equal(t, entity.PlayerO, played.Board.Cell(0, 2))
			assert.Equal(t, entity.PlayerX, played.Turn)
		}
	})

	t.Run("Random bot plays a free cell", func(t *testing.T) {
		// Given: a random bot with a single free cell left
		game := newBotGame(entity.KindRandom, entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.EmptyCell,
		})

		// When: the bot makes its turn
		move, err := NewBotService(testutil.NopLogger(), false).MakeTurn(ctx, game)

		// Then: it fills the only free cell and the game ends
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
		assert.True(t, game.IsFinished())
	})

	t.Run("Human turn has no bot", func(t *testing.T) {
		// Given: it is the human's turn
		game := newBotGame(entity.KindMinimax, entity.NewBoard())
		game.Turn = entity.PlayerX

		// When: the bot is asked to move
		move, err := NewBotService(testutil.NopLogger(), false).MakeTurn(ctx, game)

		// Then: ErrBotNotFound is returned
		require.ErrorIs(t, err, ErrBotNotFound)
		assert.Equal(t, entity.NoMove, move)
	})

	t.Run("Unknown strategy", func(t *testing.T) {
		// Given: a bot of an unknown kind
		game := newBotGame("genius", entity.NewBoard())

		// When: the bot is asked to move
		_, err := NewBotService(testutil.NopLogger(), false).MakeTurn(ctx, game)

		// Then: ErrUnknownStrategy is returned
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})
}

func TestStrategies_FullBoard(t *testing.T) {
	board := entity.Board{
		entity.PlayerX, entity.PlayerO, entity.PlayerX,
		entity.PlayerX, entity.PlayerO, entity.PlayerO,
		entity.PlayerO, entity.PlayerX, entity.PlayerX,
	}

	strategies := map[string]Strategy{
		"minimax":          NewMinimaxStrategy(entity.PlayerO, false),
		"minimax parallel": NewMinimaxStrategy(entity.PlayerO, true),
		"random":           NewRandomStrategy(),
	}

	for name, strategy := range strategies {
		t.Run(name, func(t *testing.T) {
			// When: asking for a move on a full board
			move, err := strategy.ChooseMove(context.Background(), &board, entity.PlayerO)

			// Then: no move is available
			require.ErrorIs(t, err, ErrNoAvailableMoves)
			assert.Equal(t, entity.NoMove, move)
		})
	}
}

func TestRandomStrategy_UsesSource(t *testing.T) {
	// Given: a random strategy whose source always picks the last candidate
	strategy := &randomStrategy{intn: func(n int) int { return n - 1 }}
	board := entity.NewBoard()
	board.Place(2, 2, entity.PlayerX)

	// When: choosing a move
	move, err := strategy.ChooseMove(context.Background(), &board, entity.PlayerO)

	// Then: the last free cell in row-major order is chosen
	require.NoError(t, err)
	assert.Equal(t, entity.Move{Row: 2, Col: 1}, move)
}
