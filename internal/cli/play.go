package cli

import (
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-cli/internal"
)

func newPlayCmd() *cobra.Command {
	var (
		opponent     string
		computerMark string
		firstTurn    string
		resumeID     string
		customBoard  bool
		parallel     bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game on the console",
		Long: `Play a game on the console. Moves are entered as "row col", both 1-indexed.

Flags override the values from the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()

			if flags.Changed("opponent") {
				conf.Game.Opponent = opponent
			}

			if flags.Changed("computer-mark") {
				conf.Game.ComputerMark = computerMark
			}

			if flags.Changed("first") {
				conf.Game.FirstTurn = firstTurn
			}

			if flags.Changed("parallel") {
				conf.Game.ParallelSearch = parallel
			}

			return application.RunApp(logger, conf, application.Options{ //nolint: wrapcheck // already wrapped
				CustomBoard: customBoard,
				ResumeID:    resumeID,
				In:          cmd.InOrStdin(),
				Out:         cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVar(&opponent, "opponent", "minimax", "Opponent: minimax, random or human")
	cmd.Flags().StringVar(&computerMark, "computer-mark", "O", "Mark played by the computer: X or O")
	cmd.Flags().StringVar(&firstTurn, "first", "X", "Mark that moves first: X or O")
	cmd.Flags().StringVar(&resumeID, "resume", "", "Resume a stored game by id (redis storage only)")
	cmd.Flags().BoolVar(&customBoard, "custom-board", false, "Read a starting board of 9 cells (X, O or _) before playing")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Search the computer's candidate moves in parallel")

	return cmd
}
