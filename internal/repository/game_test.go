package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type GameRepositorySuite struct {
	suite.Suite
	mini   *miniredis.Miniredis
	client *redis.Client
	repo   GameRepository
	ctx    context.Context
}

func TestGameRepositorySuite(t *testing.T) {
	suite.Run(t, new(GameRepositorySuite))
}

func (s *GameRepositorySuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})
	s.repo = NewGameRepository(s.client, time.Hour)
	s.ctx = context.Background()
}

func (s *GameRepositorySuite) TearDownTest() {
	_ = s.client.Close()
}

func (s *GameRepositorySuite) TestCreateAndGet() {
	// Given: an ongoing game against the computer
	game := entity.NewGame("123", entity.WithBotType)
	game.Status = entity.StatusOngoing
	game.Players = []*entity.Player{
		entity.NewHumanPlayer("human", entity.PlayerX),
		entity.NewBotPlayer("bot", entity.PlayerO, entity.KindMinimax),
	}
	s.Require().NoError(game.MakeTurn(entity.PlayerX, entity.Move{Row: 1, Col: 1}))

	// When: it is stored and read back
	s.Require().NoError(s.repo.CreateOrUpdate(s.ctx, game))
	retrieved, err := s.repo.GetByID(s.ctx, game.ID)

	// Then: the snapshot matches
	s.Require().NoError(err)
	s.Equal(game, retrieved)
}

func (s *GameRepositorySuite) TestSnapshotExpires() {
	// Given: a stored game
	game := entity.NewGame("123", entity.LocalType)
	s.Require().NoError(s.repo.CreateOrUpdate(s.ctx, game))

	// Then: the key carries the session ttl
	s.Equal(time.Hour, s.mini.TTL(gameKey(game.ID)))

	// When: the ttl elapses
	s.mini.FastForward(2 * time.Hour)

	// Then: the game is gone
	_, err := s.repo.GetByID(s.ctx, game.ID)
	s.ErrorIs(err, apperror.ErrGameNotFound)
}

func (s *GameRepositorySuite) TestGetNotFound() {
	retrieved, err := s.repo.GetByID(s.ctx, "9999999")

	s.ErrorIs(err, apperror.ErrGameNotFound)
	s.Empty(retrieved.ID)
}

func (s *GameRepositorySuite) TestCorruptedSnapshot() {
	// Given: garbage under a game key
	s.Require().NoError(s.mini.Set(gameKey("bad"), "{not json"))

	// When: reading it
	_, err := s.repo.GetByID(s.ctx, "bad")

	// Then: an unmarshal error is reported
	s.Require().Error(err)
	s.Contains(err.Error(), "unmarshal")
}

func (s *GameRepositorySuite) TestDelete() {
	// Given: a stored game
	game := entity.NewGame("123", entity.LocalType)
	s.Require().NoError(s.repo.CreateOrUpdate(s.ctx, game))

	// When: it is deleted
	s.Require().NoError(s.repo.DeleteByID(s.ctx, game.ID))

	// Then: it cannot be read nor deleted again
	_, err := s.repo.GetByID(s.ctx, game.ID)
	s.ErrorIs(err, apperror.ErrGameNotFound)
	s.ErrorIs(s.repo.DeleteByID(s.ctx, game.ID), apperror.ErrGameNotFound)
}
