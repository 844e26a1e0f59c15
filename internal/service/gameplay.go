package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
)

var ErrInvalidSetup = errors.New("invalid game setup")

// GameSetup describes a new game. Opponent is one of the player kinds; for a human opponent
// ComputerMark is ignored. Board, when set, replaces the empty starting board.
type GameSetup struct {
	Opponent     string
	ComputerMark entity.Mark
	FirstTurn    entity.Mark
	Board        *entity.Board
}

func (that GameSetup) validate() error {
	switch that.Opponent {
	case entity.KindHuman, entity.KindMinimax, entity.KindRandom:
	default:
		return fmt.Errorf("%w: unknown opponent %q", ErrInvalidSetup, that.Opponent)
	}

	if !that.FirstTurn.IsPlayer() {
		return fmt.Errorf("%w: first turn %q", ErrInvalidSetup, that.FirstTurn)
	}

	if that.Opponent != entity.KindHuman && !that.ComputerMark.IsPlayer() {
		return fmt.Errorf("%w: computer mark %q", ErrInvalidSetup, that.ComputerMark)
	}

	return nil
}

type GamePlayService interface {
	StartGame(ctx context.Context, setup GameSetup) (*entity.Game, error)
	ResumeGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, gameID string, mark entity.Mark, move entity.Move) (*entity.Game, error)
	BotTurn(ctx context.Context, gameID string) (*entity.Game, entity.Move, error)

	CleanupGame(ctx context.Context, game *entity.Game)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:      logger.With("component", "gameplay"),
		gameService: gameService,
		botService:  botService,
	}
}

func (that *gamePlayService) StartGame(ctx context.Context, setup GameSetup) (*entity.Game, error) {
	if err := setup.validate(); err != nil {
		return nil, err
	}

	gameType := entity.WithBotType
	if setup.Opponent == entity.KindHuman {
		gameType = entity.LocalType
	}

	game, err := that.gameService.CreateGame(ctx, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if setup.Board != nil {
		game.Board = *setup.Board
	}

	game.Turn = setup.FirstTurn

	if game.IsWithBot() {
		game.Players = []*entity.Player{
			entity.NewHumanPlayer(pkg.GeneratePlayerID(), setup.ComputerMark.Opponent()),
			entity.NewBotPlayer(pkg.GeneratePlayerID(), setup.ComputerMark, setup.Opponent),
		}
	} else {
		game.Players = []*entity.Player{
			entity.NewHumanPlayer(pkg.GeneratePlayerID(), entity.PlayerX),
			entity.NewHumanPlayer(pkg.GeneratePlayerID(), entity.PlayerO),
		}
	}

	// a custom board may already be decided
	game.UpdateGameState()

	that.logger.Info("game started", "gameID", game.ID, "type", game.Type, "status", game.Status)

	return that.saveOrCleanup(ctx, game)
}

func (that *gamePlayService) ResumeGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return nil, fmt.Errorf("game %s cannot be resumed: %w", gameID, err)
	}

	return game, nil
}

// MakeTurn applies a human move. Moves for a mark played by the computer are rejected.
func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, mark entity.Mark, move entity.Move) (*entity.Game, error) {
	game, err := that.ongoingGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if player := game.PlayerByMark(mark); player == nil || player.IsBot() {
		return nil, apperror.ErrNotYourTurn
	}

	if err = game.MakeTurn(mark, move); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return that.saveOrCleanup(ctx, game)
}

func (that *gamePlayService) BotTurn(ctx context.Context, gameID string) (*entity.Game, entity.Move, error) {
	game, err := that.ongoingGame(ctx, gameID)
	if err != nil {
		return nil, entity.NoMove, err
	}

	move, err := that.botService.MakeTurn(ctx, game)
	if err != nil {
		return nil, entity.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	game, err = that.saveOrCleanup(ctx, game)
	if err != nil {
		return nil, entity.NoMove, err
	}

	return game, move, nil
}

// CleanupGame drops the stored snapshot of a game. Failures are only logged.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted", "winner", game.Winner)
}

func (that *gamePlayService) ongoingGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return nil, err //nolint: wrapcheck // rule errors are matched by callers
	}

	return game, nil
}

func (that *gamePlayService) saveOrCleanup(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	if game.IsFinished() {
		that.CleanupGame(ctx, game)
		return game, nil
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}
