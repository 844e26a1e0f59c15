// Package minimax picks moves by exhaustive game-tree search over the 3x3 board.
//
// Scores are taken from the maximizer's point of view: Win when the maximizer completes a
// line, Loss when the minimizer does, Draw for a full board. There is no pruning; every
// continuation is visited until a terminal position.
package minimax

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	Win  = 1
	Draw = 0
	Loss = -1
)

var (
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownMark      = errors.New("unknown mark")
)

// Searcher evaluates positions for a fixed maximizing mark chosen at game setup.
// It holds no mutable state and may be shared between goroutines; boards may not.
type Searcher struct {
	maximizer entity.Mark
	minimizer entity.Mark
}

func New(maximizer entity.Mark) *Searcher {
	return &Searcher{
		maximizer: maximizer,
		minimizer: maximizer.Opponent(),
	}
}

func (that *Searcher) Maximizer() entity.Mark {
	return that.maximizer
}

// Evaluate returns the outcome of the position under optimal play by both sides.
//
// Hypothetical moves are placed on board, searched and retracted in row-major order, so the
// board is identical to its input when Evaluate returns.
func (that *Searcher) Evaluate(board *entity.Board, maximizingTurn bool) int {
	switch {
	case board.HasWinner(that.maximizer):
		return Win
	case board.HasWinner(that.minimizer):
		return Loss
	case board.IsFull():
		return Draw
	}

	mark := that.minimizer
	best := math.MaxInt
	if maximizingTurn {
		mark = that.maximizer
		best = math.MinInt
	}

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board.IsOccupied(row, col) {
				continue
			}

			board.Place(row, col, mark)
			score := that.Evaluate(board, !maximizingTurn)
			board.Clear(row, col)

			if maximizingTurn {
				best = max(best, score)
			} else {
				best = min(best, score)
			}
		}
	}

	return best
}

// SelectMove returns the best move for mark. The reply is searched as the opponent's turn and
// ties keep the earliest cell in row-major order. A full board yields NoMove and
// ErrNoAvailableMoves.
func (that *Searcher) SelectMove(board *entity.Board, mark entity.Mark) (entity.Move, error) {
	maximizing, err := that.role(mark)
	if err != nil {
		return entity.NoMove, err
	}

	bestMove := entity.NoMove
	bestScore := initialScore(maximizing)

	for _, move := range board.EmptyCells() {
		board.Place(move.Row, move.Col, mark)
		score := that.Evaluate(board, !maximizing)
		board.Clear(move.Row, move.Col)

		if better(maximizing, score, bestScore) {
			bestScore = score
			bestMove = move
		}
	}

	if bestMove == entity.NoMove {
		return entity.NoMove, ErrNoAvailableMoves
	}

	return bestMove, nil
}

// SelectMoveParallel is SelectMove with each top-level branch searched in its own goroutine on
// a private copy of the board. It returns the same move as SelectMove.
func (that *Searcher) SelectMoveParallel(ctx context.Context, board entity.Board, mark entity.Mark) (entity.Move, error) {
	maximizing, err := that.role(mark)
	if err != nil {
		return entity.NoMove, err
	}

	moves := board.EmptyCells()
	if len(moves) == 0 {
		return entity.NoMove, ErrNoAvailableMoves
	}

	scores := make([]int, len(moves))
	group, ctx := errgroup.WithContext(ctx)

	for i, move := range moves {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint: wrapcheck // context error is returned as is
			}

			branch := board
			branch.Place(move.Row, move.Col, mark)
			scores[i] = that.Evaluate(&branch, !maximizing)

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return entity.NoMove, fmt.Errorf("search canceled: %w", err)
	}

	bestMove := entity.NoMove
	bestScore := initialScore(maximizing)
	for i, score := range scores {
		if better(maximizing, score, bestScore) {
			bestScore = score
			bestMove = moves[i]
		}
	}

	return bestMove, nil
}

func (that *Searcher) role(mark entity.Mark) (bool, error) {
	if !mark.IsPlayer() {
		return false, fmt.Errorf("%w: %q", ErrUnknownMark, mark)
	}

	switch mark {
	case that.maximizer:
		return true, nil
	case that.minimizer:
		return false, nil
	default: // only reachable when the searcher was built for a non-player mark
		return false, fmt.Errorf("%w: %q", ErrUnknownMark, mark)
	}
}

func initialScore(maximizing bool) int {
	if maximizing {
		return math.MinInt
	}
	return math.MaxInt
}

func better(maximizing bool, score, best int) bool {
	if maximizing {
		return score > best
	}
	return score < best
}
