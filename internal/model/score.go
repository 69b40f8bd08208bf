package model

import (
	"time"

	"github.com/google/uuid"
)

// ScoreEntry is an immutable record of a completed game's final score.
// Created once per completed game and never mutated.
type ScoreEntry struct {
	ID         uuid.UUID
	Username   string
	Score      int
	RecordedAt time.Time
}

// RankedScore pairs a score entry with its 1-based leaderboard rank
type RankedScore struct {
	Rank  int
	Entry ScoreEntry
}
