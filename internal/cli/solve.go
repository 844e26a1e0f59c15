package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/minimax"
)

var ErrPositionDecided = errors.New("position is already decided")

func newSolveCmd() *cobra.Command {
	var (
		boardText string
		mark      string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the best move for a position",
		Example: `  tictactoe solve --board "X O X _ O _ _ _ _" --mark X
  tictactoe solve --board "_ _ _ _ _ _ _ _ _" --mark O`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := entity.ParseBoard(strings.Fields(boardText))
			if err != nil {
				return err //nolint: wrapcheck // already describes the board
			}

			player := entity.Mark(strings.ToUpper(mark))
			if !player.IsPlayer() {
				return fmt.Errorf("%w: %q", minimax.ErrUnknownMark, mark)
			}

			move, outcome, err := solve(&board, player)
			if err != nil {
				return err
			}

			logger.Debug("position solved", "mark", player, "move", move, "outcome", outcome)

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Best move for %s: %d %d\n", player, move.Row+1, move.Col+1)
			_, _ = fmt.Fprintf(out, "Expected outcome: %s (%+d)\n", outcomeName(outcome), outcome)

			return nil
		},
	}

	cmd.Flags().StringVar(&boardText, "board", "", "Nine cells (X, O or _) in row-major order, separated by spaces")
	cmd.Flags().StringVar(&mark, "mark", "X", "Mark to move: X or O")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}

// solve returns the best move for mark and the outcome for mark once it is played.
func solve(board *entity.Board, mark entity.Mark) (entity.Move, int, error) {
	if board.HasWinner(entity.PlayerX) || board.HasWinner(entity.PlayerO) {
		return entity.NoMove, 0, ErrPositionDecided
	}

	searcher := minimax.New(mark)

	move, err := searcher.SelectMove(board, mark)
	if err != nil {
		return entity.NoMove, 0, fmt.Errorf("failed to select move: %w", err)
	}

	board.Place(move.Row, move.Col, mark)
	outcome := searcher.Evaluate(board, false)
	board.Clear(move.Row, move.Col)

	return move, outcome, nil
}

func outcomeName(outcome int) string {
	switch outcome {
	case minimax.Win:
		return "win"
	case minimax.Loss:
		return "loss"
	default:
		return "draw"
	}
}
