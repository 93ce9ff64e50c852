package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := metrics.New()

	m.Observe("deposit", time.Now(), nil)
	m.Observe("deposit", time.Now(), nil)
	m.Observe("transfer", time.Now(), errors.New("insufficient funds"))

	expected := `
# HELP ledger_commands_total Total number of ledger commands and queries handled.
# TYPE ledger_commands_total counter
ledger_commands_total{command="deposit",outcome="success"} 2
ledger_commands_total{command="transfer",outcome="failure"} 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "ledger_commands_total")
	require.NoError(t, err)
	n, err := testutil.GatherAndCount(m.Registry(), "ledger_command_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestObserve_NilMetrics(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() { m.Observe("deposit", time.Now(), nil) })
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.Observe("get_balance", time.Now(), nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `ledger_commands_total{command="get_balance",outcome="success"} 1`)
}
