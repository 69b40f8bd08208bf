package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/calumh/ghostsnake/internal/model"
)

type StorageSuite struct {
	suite.Suite
	dir     string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.dir = s.T().TempDir()
	storage, err := New(s.dir)
	s.Require().NoError(err)
	s.storage = storage
	s.ctx = context.Background()
}

// reopen simulates an application restart against the same data dir
func (s *StorageSuite) reopen() {
	storage, err := New(s.dir)
	s.Require().NoError(err)
	s.storage = storage
}

func (s *StorageSuite) TestUsersSurviveReopen() {
	user := &model.User{
		Username:          "alice",
		EncryptedPassword: []byte{0xde, 0xad, 0xbe, 0xef},
		IsAdmin:           true,
		CreatedAt:         time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	s.reopen()

	retrieved, err := s.storage.GetUser(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.Username, retrieved.Username)
	s.Equal(user.EncryptedPassword, retrieved.EncryptedPassword)
	s.True(retrieved.IsAdmin)
	s.True(user.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestScoresSurviveReopen() {
	entry := &model.ScoreEntry{
		ID:         uuid.New(),
		Username:   "alice",
		Score:      3,
		RecordedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.storage.AppendScore(s.ctx, entry))

	s.reopen()

	scores, err := s.storage.ListScores(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal(entry.ID, scores[0].ID)
	s.Equal(3, scores[0].Score)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestCountUsersAfterReopen() {
	_ = s.storage.SaveUser(s.ctx, &model.User{Username: "alice"})
	_ = s.storage.SaveUser(s.ctx, &model.User{Username: "bob"})

	s.reopen()

	count, err := s.storage.CountUsers(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *StorageSuite) TestNoTempFileLeftBehind() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{Username: "alice"}))

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	for _, e := range entries {
		s.NotContains(e.Name(), ".tmp")
	}
}

func (s *StorageSuite) TestOpenFailsOnCorruptCredentialsFile() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, credentialsFile), []byte("{not json"), 0600))

	_, err := New(s.dir)
	s.Error(err)
}

func (s *StorageSuite) TestOpenCreatesDataDir() {
	nested := filepath.Join(s.T().TempDir(), "a", "b")
	_, err := New(nested)
	s.Require().NoError(err)

	info, err := os.Stat(nested)
	s.Require().NoError(err)
	s.True(info.IsDir())
}
