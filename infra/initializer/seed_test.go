package initializer

import (
	"bytes"
	"context"
	"testing"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/actor"
	"github.com/amirasaad/ledger/pkg/specification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.App {
	return &config.App{
		Env:       "test",
		Log:       &config.Log{Level: 8, Format: "text"},
		DB:        &config.DB{Driver: infra.DriverSQLite, Url: ":memory:"},
		RateLimit: &config.RateLimit{},
		Seed:      &config.Seed{Enabled: true},
	}
}

func TestInitializeDependencies_SeedsOnce(t *testing.T) {
	var out bytes.Buffer
	deps, closeFn, err := InitializeDependencies(testConfig(), &out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	require.NotNil(t, deps.UowFactory)
	require.NotNil(t, deps.Metrics)

	uow, err := deps.UowFactory()
	require.NoError(t, err)
	repo, err := uow.ActorRepository()
	require.NoError(t, err)

	for _, sp := range SeedPersons {
		a, err := repo.Get(context.Background(), specification.ActorByID(sp.ID))
		require.NoError(t, err)
		p, ok := actor.AsPerson(a)
		require.True(t, ok)
		assert.Equal(t, sp.FirstName, p.FirstName())
		assert.Equal(t, sp.LastName, p.LastName())
	}

	inserted, err := Seed(context.Background(), deps.UowFactory, deps.Logger)
	require.NoError(t, err)
	assert.Zero(t, inserted, "seeding an already seeded database inserts nothing")
}

func TestInitializeDependencies_InvalidDriver(t *testing.T) {
	cfg := testConfig()
	cfg.DB.Driver = "oracle"

	_, _, err := InitializeDependencies(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSetupLogger_JSON(t *testing.T) {
	var out bytes.Buffer
	logger := SetupLogger(&config.Log{Format: "json", Prefix: "[ledger]"}, &out)

	logger.Info("hello", "command", "deposit")

	assert.Contains(t, out.String(), `"msg":"hello"`)
	assert.Contains(t, out.String(), `"command":"deposit"`)
}
