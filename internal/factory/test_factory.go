package factory

import (
	"time"

	"github.com/mcoot/game2048/internal/dependencies/mocks"
	"github.com/mcoot/game2048/internal/storage/memory"
	"github.com/mcoot/game2048/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	// MockIDRandom supplies record IDs
	MockIDRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockIDRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, mockIDRandom, testutil.NopLogger())

	return &TestApp{
		App:          app,
		MockClock:    mockClock,
		MockRandom:   mockRandom,
		MockIDRandom: mockIDRandom,
	}
}
