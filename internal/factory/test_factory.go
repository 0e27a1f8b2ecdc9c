package factory

import (
	"time"

	"github.com/arenahq/arena/internal/dependencies/mocks"
	"github.com/arenahq/arena/internal/services/auth"
	"github.com/arenahq/arena/internal/storage/memory"
	"github.com/arenahq/arena/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with a mocked clock
// and zero simulated latency.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	authCfg := auth.DefaultConfig()
	authCfg.LoginLatency = 0
	authCfg.SignupLatency = 0

	app := newWithDependencies(store, mockClock, authCfg, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
