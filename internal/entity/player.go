package entity

const (
	KindHuman   = "human"
	KindMinimax = "minimax"
	KindRandom  = "random"
)

type Player struct {
	ID   string `json:"id"`
	Mark Mark   `json:"mark,omitempty"`
	Kind string `json:"kind"`
}

func NewHumanPlayer(id string, mark Mark) *Player {
	return &Player{ID: id, Mark: mark, Kind: KindHuman}
}

func NewBotPlayer(id string, mark Mark, kind string) *Player {
	return &Player{ID: id, Mark: mark, Kind: kind}
}

func (that *Player) IsBot() bool {
	return that.Kind != KindHuman
}
