package credential

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"github.com/calumh/ghostsnake/internal/crypto"
	"github.com/calumh/ghostsnake/internal/dependencies/clock"
	"github.com/calumh/ghostsnake/internal/model"
	"github.com/calumh/ghostsnake/internal/storage"
)

// Errors
var (
	// ErrInvalidCredentials covers unknown username, wrong password, and an
	// undecryptable stored record alike, so callers cannot enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrEmptyCredentials   = errors.New("username and password required")
	ErrAdminRequired      = errors.New("only an admin can register new users")
)

// Service handles registration and verification of user credentials.
// Passwords are stored reversibly encrypted with the injected cipher rather
// than hashed; that mirrors the product's (weak, but deliberate) design.
type Service struct {
	storage storage.Storage
	cipher  *crypto.Cipher
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new credential Service. The cipher carries the single
// process-wide key; it is an explicit dependency, never ambient state.
func New(storage storage.Storage, cipher *crypto.Cipher, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		cipher:  cipher,
		clock:   clock,
		logger:  logger,
	}
}

// Register creates a new user account. The very first account becomes admin
// and needs no actor; after that only an admin actor may register users.
// Registration aborts without a partial write on any failure.
func (s *Service) Register(ctx context.Context, actor *model.User, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	if _, err := s.storage.GetUser(ctx, username); err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	count, err := s.storage.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	isAdmin := count == 0
	if !isAdmin && (actor == nil || !actor.IsAdmin) {
		return nil, ErrAdminRequired
	}

	sealed, err := s.cipher.Encrypt([]byte(password))
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:          username,
		EncryptedPassword: sealed,
		IsAdmin:           isAdmin,
		CreatedAt:         s.clock.Now(),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("username", username),
		slog.Bool("is_admin", isAdmin),
	)

	return user, nil
}

// Verify checks a username/password pair against the store. Unknown user,
// wrong password, and a corrupted record all return ErrInvalidCredentials;
// decryption failure is a verification failure, never a crash.
func (s *Service) Verify(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.storage.GetUser(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	stored, err := s.cipher.Decrypt(user.EncryptedPassword)
	if err != nil {
		s.logger.Warn("stored credential failed to decrypt",
			slog.String("username", user.Username),
		)
		return nil, ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare(stored, []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
