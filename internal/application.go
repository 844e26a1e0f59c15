package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

var ErrUnknownStorage = errors.New("unknown storage")

// Options are the per-run choices that do not live in the config file.
type Options struct {
	CustomBoard bool
	ResumeID    string

	In  io.Reader
	Out io.Writer
}

// RunApp - plays one game on the console.
func RunApp(logger *slog.Logger, conf *config.Config, opts Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeStorage, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	gameService := service.NewGameService(gameRepo)
	botService := service.NewBotService(logger, conf.Game.ParallelSearch)
	gamePlay := service.NewGamePlayService(logger, gameService, botService)
	terminal := console.New(logger, gamePlay, opts.In, opts.Out)

	game, err := startOrResume(ctx, conf, opts, gamePlay, terminal)
	if err != nil {
		return err
	}

	if err = terminal.Run(ctx, game); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Game interrupted", "gameID", game.ID)

			if conf.Storage == config.StorageRedis {
				_, _ = fmt.Fprintf(opts.Out, "\nGame saved, resume it with --resume %s\n", game.ID)
			}

			return nil
		}

		return fmt.Errorf("game %s failed: %w", game.ID, err)
	}

	return nil
}

func startOrResume(
	ctx context.Context,
	conf *config.Config,
	opts Options,
	gamePlay service.GamePlayService,
	terminal *console.Console,
) (*entity.Game, error) {
	if opts.ResumeID != "" {
		game, err := gamePlay.ResumeGame(ctx, opts.ResumeID)
		if err != nil {
			return nil, fmt.Errorf("could not resume game: %w", err)
		}

		return game, nil
	}

	setup := service.GameSetup{
		Opponent:     conf.Game.Opponent,
		ComputerMark: entity.Mark(conf.Game.ComputerMark),
		FirstTurn:    entity.Mark(conf.Game.FirstTurn),
	}

	if opts.CustomBoard {
		_, _ = fmt.Fprintf(opts.Out, "Enter the 9 cells of the board (X, O or _), row by row:\n")

		board, err := terminal.ReadCustomBoard(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not read custom board: %w", err)
		}

		setup.Board = &board
	}

	game, err := gamePlay.StartGame(ctx, setup)
	if err != nil {
		return nil, fmt.Errorf("could not start game: %w", err)
	}

	return game, nil
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	switch conf.Storage {
	case config.StorageMemory:
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	case config.StorageRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewGameRepository(redisStorage.Connection, conf.Redis.SessionTTL), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage)
	}
}
