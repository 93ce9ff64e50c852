// Package testutils provides an end-to-end suite running the HTTP app against
// an in-memory SQLite ledger seeded with the demo persons.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/webapi"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// E2ETestSuite builds a fresh app and database for every test.
type E2ETestSuite struct {
	suite.Suite
	App     *fiber.App
	Deps    *config.Deps
	closeFn func() error
}

// TestConfig returns the configuration used by the suite.
func TestConfig() *config.App {
	return &config.App{
		Env:       "test",
		Log:       &config.Log{Level: 12},
		DB:        &config.DB{Driver: infra.DriverSQLite, Url: ":memory:"},
		RateLimit: &config.RateLimit{},
		Seed:      &config.Seed{Enabled: true},
	}
}

func (s *E2ETestSuite) SetupTest() {
	deps, closeFn, err := initializer.InitializeDependencies(TestConfig(), io.Discard)
	s.Require().NoError(err)
	s.Deps = deps
	s.closeFn = closeFn
	s.App = webapi.SetupApp(deps, account.NewService(*deps))
}

func (s *E2ETestSuite) TearDownTest() {
	s.Require().NoError(s.closeFn())
}

// MakeRequest sends a request with an optional JSON body to the app.
func (s *E2ETestSuite) MakeRequest(method, path, body string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// Decode reads the response body into v and closes it.
func (s *E2ETestSuite) Decode(resp *http.Response, v any) {
	defer resp.Body.Close() //nolint: errcheck
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
}

// CreateAccount opens a DKK account for the first seeded person and returns its id.
func (s *E2ETestSuite) CreateAccount() uuid.UUID {
	resp := s.MakeRequest(http.MethodPost, "/api/v1/accounts",
		`{"owner_id":"`+initializer.SeedPersons[0].ID.String()+`","currency":"DKK"}`)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		common.Response
		Data struct {
			ID uuid.UUID `json:"id"`
		} `json:"data"`
	}
	s.Decode(resp, &body)
	return body.Data.ID
}
