package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	LocalType   = "local"
	WithBotType = "bot"
)

var (
	ErrInvalidCell       = errors.New("invalid cell")
	ErrUnknownGameStatus = errors.New("unknown game status")
)

type Game struct {
	ID       string    `json:"id"`
	Board    Board     `json:"board"`
	Winner   Mark      `json:"winner"`
	Status   string    `json:"status"`
	Turn     Mark      `json:"player_turn"`
	Players  []*Player `json:"players,omitempty"`
	Type     string    `json:"type,omitempty"`
	LastMove *Move     `json:"last_move,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  NewBoard(),
		Turn:   PlayerX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// DetermineGameResult returns the winning mark, PlayerTie for a full board, or EmptyCell while
// the game goes on. X is checked before O, and any win before a full board.
func (that *Game) DetermineGameResult() Mark {
	for _, mark := range []Mark{PlayerX, PlayerO} {
		if that.Board.HasWinner(mark) {
			return mark
		}
	}

	if that.Board.IsFull() {
		return PlayerTie
	}

	return EmptyCell
}

func (that *Game) UpdateGameState() {
	switch result := that.DetermineGameResult(); result {
	case PlayerX, PlayerO, PlayerTie:
		that.Winner = result
		that.Status = StatusFinished
		that.Turn = EmptyCell
	default:
		that.Status = StatusOngoing
	}
}

// MakeTurn validates and applies a move for playerMark, then passes the turn.
func (that *Game) MakeTurn(playerMark Mark, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !InBounds(move.Row, move.Col) {
		return fmt.Errorf("%w: %s", ErrInvalidCell, move)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board.IsOccupied(move.Row, move.Col) {
		return apperror.ErrCellOccupied
	}

	that.Board.Place(move.Row, move.Col, playerMark)
	that.LastMove = &move
	that.Turn = playerMark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

func (that *Game) PlayerByMark(mark Mark) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

// IsBotTurn reports whether the side to move is played by the computer.
func (that *Game) IsBotTurn() bool {
	player := that.PlayerByMark(that.Turn)
	return player != nil && player.IsBot()
}

// Clone returns a deep copy so stored snapshots never alias live games.
func (that *Game) Clone() *Game {
	clone := *that

	if that.Players != nil {
		clone.Players = make([]*Player, len(that.Players))
		for i, player := range that.Players {
			p := *player
			clone.Players[i] = &p
		}
	}

	if that.LastMove != nil {
		move := *that.LastMove
		clone.LastMove = &move
	}

	return &clone
}
