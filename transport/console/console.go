package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var (
	ErrInputClosed = errors.New("input closed")

	errNotInteger = errors.New("not an integer")
)

type gamePlay interface {
	MakeTurn(ctx context.Context, gameID string, mark entity.Mark, move entity.Move) (*entity.Game, error)
	BotTurn(ctx context.Context, gameID string) (*entity.Game, entity.Move, error)
}

type token struct {
	text string
	err  error
}

// Console runs a game over a text stream: whitespace separated tokens in, board and prompts out.
// Input is scanned by a background goroutine so that a blocked read never outlives ctx.
type Console struct {
	logger   *slog.Logger
	gamePlay gamePlay

	scanner  *bufio.Scanner
	tokens   chan token
	scanOnce sync.Once
	out      io.Writer
}

func New(logger *slog.Logger, gamePlay gamePlay, in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Console{
		logger:   logger.With("component", "console"),
		gamePlay: gamePlay,
		scanner:  scanner,
		tokens:   make(chan token),
		out:      out,
	}
}

// ReadCustomBoard reads 9 cell tokens in row-major order.
func (that *Console) ReadCustomBoard(ctx context.Context) (entity.Board, error) {
	tokens := make([]string, 0, len(entity.Board{}))
	for range cap(tokens) {
		text, err := that.nextToken(ctx)
		if errors.Is(err, ErrInputClosed) {
			return entity.Board{}, fmt.Errorf("%w: input ended after %d cells", entity.ErrMalformedBoard, len(tokens))
		}

		if err != nil {
			return entity.Board{}, err
		}

		tokens = append(tokens, text)
	}

	return entity.ParseBoard(tokens) //nolint: wrapcheck // already describes the board
}

// Run plays game until it is finished. The computer's turns are delegated to the game play
// service; human turns are read from input and re-prompted until the move is legal.
func (that *Console) Run(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "run", "gameID", game.ID)

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		that.printf("\nIt's %s's turn to play!\n", game.Turn)
		that.RenderBoard(&game.Board)
		that.printf("Enter coordinates (row, col): \n")

		var err error
		if game.IsBotTurn() {
			var move entity.Move
			if game, move, err = that.gamePlay.BotTurn(ctx, game.ID); err != nil {
				return fmt.Errorf("computer turn failed: %w", err)
			}

			that.printf("%d %d\n", move.Row+1, move.Col+1)
		} else if game, err = that.humanTurn(ctx, game); err != nil {
			return err
		}

		log.Debug("turn played", "move", game.LastMove, "status", game.Status)
	}

	that.printResult(game)

	return nil
}

func (that *Console) humanTurn(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	for {
		move, err := that.readMove(ctx)
		if err != nil {
			return nil, err
		}

		updated, err := that.gamePlay.MakeTurn(ctx, game.ID, game.Turn, move)
		if errors.Is(err, entity.ErrInvalidCell) || errors.Is(err, apperror.ErrCellOccupied) {
			that.printf("Please enter an integer between 1 and %d inclusively or a square "+
				"that's not occupied already\n", entity.BoardSize)
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("human turn failed: %w", err)
		}

		return updated, nil
	}
}

// readMove reads a 1-indexed row and column and converts them to a 0-indexed move.
func (that *Console) readMove(ctx context.Context) (entity.Move, error) {
	for {
		row, err := that.nextInt(ctx)
		if errors.Is(err, errNotInteger) {
			that.printf("Please enter an integer!\n")
			continue
		}

		if err != nil {
			return entity.NoMove, err
		}

		col, err := that.nextInt(ctx)
		if errors.Is(err, errNotInteger) {
			that.printf("Please enter an integer!\n")
			continue
		}

		if err != nil {
			return entity.NoMove, err
		}

		return entity.Move{Row: row - 1, Col: col - 1}, nil
	}
}

func (that *Console) nextInt(ctx context.Context) (int, error) {
	text, err := that.nextToken(ctx)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotInteger, text)
	}

	return value, nil
}

func (that *Console) nextToken(ctx context.Context) (string, error) {
	that.scanOnce.Do(func() {
		go that.scan()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("input interrupted: %w", ctx.Err())
	case tok, ok := <-that.tokens:
		if !ok {
			return "", ErrInputClosed
		}

		return tok.text, tok.err
	}
}

func (that *Console) scan() {
	defer close(that.tokens)

	for that.scanner.Scan() {
		that.tokens <- token{text: that.scanner.Text()}
	}

	if err := that.scanner.Err(); err != nil {
		that.tokens <- token{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

func (that *Console) printResult(game *entity.Game) {
	if game.IsTie() {
		that.printf("It's a draw!\n")
	} else {
		that.printf("\nThe game has ended, %s won!\n", game.Winner)
	}

	that.RenderBoard(&game.Board)
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
