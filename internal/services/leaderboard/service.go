package leaderboard

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/calumh/ghostsnake/internal/dependencies/clock"
	"github.com/calumh/ghostsnake/internal/model"
	"github.com/calumh/ghostsnake/internal/storage"
)

// Service maintains the append-only leaderboard of completed games
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new leaderboard Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Record appends a score entry for a completed game.
// A score of 0 is recorded like any other.
func (s *Service) Record(ctx context.Context, username string, score int) (*model.ScoreEntry, error) {
	entry := &model.ScoreEntry{
		ID:         uuid.New(),
		Username:   username,
		Score:      score,
		RecordedAt: s.clock.Now(),
	}

	if err := s.storage.AppendScore(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("score recorded",
		slog.String("username", username),
		slog.Int("score", score),
	)

	return entry, nil
}

// Top returns up to n entries ranked highest score first, ties broken by the
// earlier RecordedAt. n <= 0 returns all entries.
func (s *Service) Top(ctx context.Context, n int) ([]model.RankedScore, error) {
	entries, err := s.storage.ListScores(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].RecordedAt.Before(entries[j].RecordedAt)
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}

	ranked := make([]model.RankedScore, len(entries))
	for i, e := range entries {
		ranked[i] = model.RankedScore{Rank: i + 1, Entry: *e}
	}
	return ranked, nil
}

// Best returns the user's highest recorded score, or 0 if they have none
func (s *Service) Best(ctx context.Context, username string) (int, error) {
	entries, err := s.storage.ListScores(ctx)
	if err != nil {
		return 0, err
	}

	best := 0
	for _, e := range entries {
		if e.Username == username && e.Score > best {
			best = e.Score
		}
	}
	return best, nil
}

// History returns the user's entries in recording order
func (s *Service) History(ctx context.Context, username string) ([]*model.ScoreEntry, error) {
	entries, err := s.storage.ListScores(ctx)
	if err != nil {
		return nil, err
	}

	var result []*model.ScoreEntry
	for _, e := range entries {
		if e.Username == username {
			result = append(result, e)
		}
	}
	return result, nil
}
