package factory

import (
	"bytes"
	"time"

	"github.com/calumh/ghostsnake/internal/crypto"
	"github.com/calumh/ghostsnake/internal/dependencies/mocks"
	"github.com/calumh/ghostsnake/internal/services/game"
	"github.com/calumh/ghostsnake/internal/storage/memory"
	"github.com/calumh/ghostsnake/internal/testutil"
)

// TestKey is the fixed symmetric key used by test apps
var TestKey = bytes.Repeat([]byte{0x2a}, crypto.KeySize)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing: memory storage, mocked
// clock and randomness, a fixed key, and a small grid.
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(game.Config{
		GridWidth:    10,
		GridHeight:   10,
		TickInterval: 10 * time.Millisecond,
	})
}

// NewTestAppWithConfig is NewTestApp with an explicit game config
func NewTestAppWithConfig(gameCfg game.Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	cipher, err := crypto.NewCipher(TestKey)
	if err != nil {
		// TestKey is KeySize bytes, so this cannot fail
		panic(err)
	}

	app := newWithDependencies(store, mockClock, mockRandom, cipher, gameCfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
