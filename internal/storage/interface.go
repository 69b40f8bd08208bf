package storage

import (
	"context"

	"github.com/calumh/ghostsnake/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, username string) (*model.User, error)
	CountUsers(ctx context.Context) (int, error)

	// Score operations. Scores are append-only: entries are never
	// mutated or removed once recorded.
	AppendScore(ctx context.Context, entry *model.ScoreEntry) error
	ListScores(ctx context.Context) ([]*model.ScoreEntry, error)
}
