package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/minimax"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownStrategy  = errors.New("unknown bot strategy")
)

// Strategy chooses a move for mark on board. The board must be left as it was given.
type Strategy interface {
	ChooseMove(ctx context.Context, board *entity.Board, mark entity.Mark) (entity.Move, error)
}

type minimaxStrategy struct {
	searcher *minimax.Searcher
	parallel bool
}

// NewMinimaxStrategy plays optimally with maximizer as the searching side.
func NewMinimaxStrategy(maximizer entity.Mark, parallel bool) Strategy {
	return &minimaxStrategy{
		searcher: minimax.New(maximizer),
		parallel: parallel,
	}
}

func (that *minimaxStrategy) ChooseMove(ctx context.Context, board *entity.Board, mark entity.Mark) (entity.Move, error) {
	var (
		move entity.Move
		err  error
	)

	if that.parallel {
		move, err = that.searcher.SelectMoveParallel(ctx, *board, mark)
	} else {
		move, err = that.searcher.SelectMove(board, mark)
	}

	if errors.Is(err, minimax.ErrNoAvailableMoves) {
		return entity.NoMove, ErrNoAvailableMoves
	}

	if err != nil {
		return entity.NoMove, fmt.Errorf("minimax search failed: %w", err)
	}

	return move, nil
}

type randomStrategy struct {
	intn func(n int) int
}

// NewRandomStrategy picks any free cell.
func NewRandomStrategy() Strategy {
	return &randomStrategy{intn: rand.Intn} //nolint: gosec // it's ok
}

func (that *randomStrategy) ChooseMove(_ context.Context, board *entity.Board, _ entity.Mark) (entity.Move, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.NoMove, ErrNoAvailableMoves
	}

	return availableCells[that.intn(len(availableCells))], nil
}

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

type botService struct {
	logger   *slog.Logger
	parallel bool
}

func NewBotService(logger *slog.Logger, parallel bool) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		parallel: parallel,
	}
}

// MakeTurn lets the bot whose turn it is choose and apply a move.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	botPlayer := game.PlayerByMark(game.Turn)
	if botPlayer == nil || !botPlayer.IsBot() {
		return entity.NoMove, ErrBotNotFound
	}

	strategy, err := that.strategyFor(botPlayer)
	if err != nil {
		return entity.NoMove, err
	}

	move, err := strategy.ChooseMove(ctx, &game.Board, botPlayer.Mark)
	if err != nil {
		return entity.NoMove, fmt.Errorf("bot failed to choose move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, move); err != nil {
		return entity.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn", "gameID", game.ID, "kind", botPlayer.Kind, "mark", botPlayer.Mark, "move", move.String())

	return move, nil
}

// strategyFor builds the bot's strategy. A minimax bot always maximizes for its own mark.
func (that *botService) strategyFor(player *entity.Player) (Strategy, error) {
	switch player.Kind {
	case entity.KindMinimax:
		return NewMinimaxStrategy(player.Mark, that.parallel), nil
	case entity.KindRandom:
		return NewRandomStrategy(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, player.Kind)
	}
}
