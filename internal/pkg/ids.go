package pkg

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateGameID returns a random id under which a game session is stored.
func GenerateGameID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return id.String(), nil
}

func GeneratePlayerID() string {
	return uuid.NewString()
}
