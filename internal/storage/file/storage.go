// Package file implements storage backed by JSON files in a local data
// directory. Every mutation rewrites the affected file atomically, so a crash
// mid-write never leaves a partial file behind.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/calumh/ghostsnake/internal/model"
	"github.com/calumh/ghostsnake/internal/storage"
)

const (
	credentialsFile = "credentials.json"
	scoresFile      = "scores.json"
)

// Storage is a file-backed implementation of the storage interface.
// State is loaded once at open and kept in memory; files are the source of
// truth across restarts only.
type Storage struct {
	mu  sync.RWMutex
	dir string

	users  map[string]*model.User
	scores []*model.ScoreEntry
}

// userRecord is the on-disk form of a model.User
type userRecord struct {
	Username          string    `json:"username"`
	EncryptedPassword []byte    `json:"encrypted_password"`
	IsAdmin           bool      `json:"is_admin"`
	CreatedAt         time.Time `json:"created_at"`
}

// scoreRecord is the on-disk form of a model.ScoreEntry
type scoreRecord struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Score      int       `json:"score"`
	RecordedAt time.Time `json:"recorded_at"`
}

// New opens (or initializes) file storage rooted at dir
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	s := &Storage{
		dir:   dir,
		users: make(map[string]*model.User),
	}

	if err := s.loadUsers(); err != nil {
		return nil, err
	}
	if err := s.loadScores(); err != nil {
		return nil, err
	}

	return s, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Username] = user
	return s.persistUsers()
}

func (s *Storage) GetUser(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// Score operations

func (s *Storage) AppendScore(ctx context.Context, entry *model.ScoreEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = append(s.scores, entry)
	return s.persistScores()
}

func (s *Storage) ListScores(ctx context.Context) ([]*model.ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.ScoreEntry, len(s.scores))
	copy(result, s.scores)
	return result, nil
}

// Persistence

func (s *Storage) loadUsers() error {
	data, err := os.ReadFile(filepath.Join(s.dir, credentialsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read credentials file: %w", err)
	}

	var records []userRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to decode credentials file: %w", err)
	}

	for _, r := range records {
		s.users[r.Username] = &model.User{
			Username:          r.Username,
			EncryptedPassword: r.EncryptedPassword,
			IsAdmin:           r.IsAdmin,
			CreatedAt:         r.CreatedAt,
		}
	}
	return nil
}

func (s *Storage) loadScores() error {
	data, err := os.ReadFile(filepath.Join(s.dir, scoresFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read scores file: %w", err)
	}

	var records []scoreRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to decode scores file: %w", err)
	}

	for _, r := range records {
		s.scores = append(s.scores, &model.ScoreEntry{
			ID:         r.ID,
			Username:   r.Username,
			Score:      r.Score,
			RecordedAt: r.RecordedAt,
		})
	}
	return nil
}

// persistUsers writes the credentials file; the caller must hold the lock
func (s *Storage) persistUsers() error {
	records := make([]userRecord, 0, len(s.users))
	for _, u := range s.users {
		records = append(records, userRecord{
			Username:          u.Username,
			EncryptedPassword: u.EncryptedPassword,
			IsAdmin:           u.IsAdmin,
			CreatedAt:         u.CreatedAt,
		})
	}
	return s.writeAtomic(credentialsFile, records)
}

// persistScores writes the scores file; the caller must hold the lock
func (s *Storage) persistScores() error {
	records := make([]scoreRecord, 0, len(s.scores))
	for _, e := range s.scores {
		records = append(records, scoreRecord{
			ID:         e.ID,
			Username:   e.Username,
			Score:      e.Score,
			RecordedAt: e.RecordedAt,
		})
	}
	return s.writeAtomic(scoresFile, records)
}

func (s *Storage) writeAtomic(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
