package account_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/amirasaad/ledger/webapi/testutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountTestSuite struct {
	testutils.E2ETestSuite
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}

type balanceBody struct {
	Data struct {
		AccountID     uuid.UUID `json:"account_id"`
		AccountNumber string    `json:"account_number"`
		Currency      string    `json:"currency"`
		Balance       struct {
			Value    decimal.Decimal `json:"value"`
			Currency string          `json:"currency"`
		} `json:"balance"`
	} `json:"data"`
}

func (s *AccountTestSuite) balance(id uuid.UUID) decimal.Decimal {
	resp := s.MakeRequest(http.MethodGet, "/api/v1/accounts/"+id.String()+"/balance", "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var body balanceBody
	s.Decode(resp, &body)
	s.Equal(id, body.Data.AccountID)
	s.Equal("DKK", body.Data.Balance.Currency)
	return body.Data.Balance.Value
}

func (s *AccountTestSuite) problem(resp *http.Response, status int) common.ProblemDetails {
	s.Require().Equal(status, resp.StatusCode)
	s.Equal("application/problem+json", resp.Header.Get("Content-Type"))
	var pd common.ProblemDetails
	s.Decode(resp, &pd)
	return pd
}

func (s *AccountTestSuite) TestCreateAccount() {
	owner := initializer.SeedPersons[1].ID.String()
	resp := s.MakeRequest(http.MethodPost, "/api/v1/accounts", `{"owner_id":"`+owner+`"}`)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			ID            uuid.UUID `json:"id"`
			AccountNumber string    `json:"account_number"`
			Currency      string    `json:"currency"`
			OwnerID       string    `json:"owner_id"`
		} `json:"data"`
	}
	s.Decode(resp, &body)
	s.NotEqual(uuid.Nil, body.Data.ID)
	s.NotEmpty(body.Data.AccountNumber)
	s.Equal("DKK", body.Data.Currency, "currency defaults to DKK")
	s.Equal(owner, body.Data.OwnerID)
	s.True(s.balance(body.Data.ID).IsZero())
}

func (s *AccountTestSuite) TestCreateAccount_Rejected() {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"missing owner", `{}`, http.StatusBadRequest},
		{"owner not a uuid", `{"owner_id":"john"}`, http.StatusBadRequest},
		{"unsupported currency", `{"owner_id":"` + uuid.NewString() + `","currency":"EUR"}`, http.StatusBadRequest},
		{"unknown owner", `{"owner_id":"` + uuid.NewString() + `"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp := s.MakeRequest(http.MethodPost, "/api/v1/accounts", tt.body)
			s.problem(resp, tt.status)
		})
	}
}

func (s *AccountTestSuite) TestDepositAndTransfer() {
	from := s.CreateAccount()
	to := s.CreateAccount()

	resp := s.MakeRequest(http.MethodPost, "/api/v1/accounts/"+from.String()+"/deposits",
		`{"amount":{"value":"150.25","currency":"DKK"}}`)
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)

	resp = s.MakeRequest(http.MethodPost, "/api/v1/accounts/"+from.String()+"/transfers",
		`{"to_account_id":"`+to.String()+`","amount":{"value":50,"currency":"dkk"}}`)
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)

	s.True(s.balance(from).Equal(decimal.RequireFromString("100.25")))
	s.True(s.balance(to).Equal(decimal.NewFromInt(50)))
}

func (s *AccountTestSuite) TestDeposit_Rejected() {
	id := s.CreateAccount()
	path := "/api/v1/accounts/" + id.String() + "/deposits"

	pd := s.problem(s.MakeRequest(http.MethodPost, path, `{"amount":{"value":"-5","currency":"DKK"}}`), http.StatusBadRequest)
	s.Equal("Failed to deposit", pd.Title)

	s.problem(s.MakeRequest(http.MethodPost, path, `{"amount":{"currency":"DKK"}}`), http.StatusBadRequest)
	s.problem(s.MakeRequest(http.MethodPost, path, `{"amount":{"value":"5","currency":"USD"}}`), http.StatusBadRequest)
	s.problem(s.MakeRequest(http.MethodPost, "/api/v1/accounts/nope/deposits",
		`{"amount":{"value":"5","currency":"DKK"}}`), http.StatusBadRequest)
	s.problem(s.MakeRequest(http.MethodPost, "/api/v1/accounts/"+uuid.NewString()+"/deposits",
		`{"amount":{"value":"5","currency":"DKK"}}`), http.StatusNotFound)

	s.True(s.balance(id).IsZero())
}

func (s *AccountTestSuite) TestTransfer_InsufficientFunds() {
	from := s.CreateAccount()
	to := s.CreateAccount()

	resp := s.MakeRequest(http.MethodPost, "/api/v1/accounts/"+from.String()+"/transfers",
		`{"to_account_id":"`+to.String()+`","amount":{"value":"1","currency":"DKK"}}`)
	pd := s.problem(resp, http.StatusUnprocessableEntity)
	s.Contains(pd.Detail, "insufficient funds")

	s.True(s.balance(from).IsZero())
	s.True(s.balance(to).IsZero())
}

func (s *AccountTestSuite) TestTransfer_UnknownDestination() {
	from := s.CreateAccount()

	resp := s.MakeRequest(http.MethodPost, "/api/v1/accounts/"+from.String()+"/transfers",
		`{"to_account_id":"`+uuid.NewString()+`","amount":{"value":"1","currency":"DKK"}}`)
	s.problem(resp, http.StatusNotFound)
}

func (s *AccountTestSuite) TestGetBalance_Errors() {
	s.problem(s.MakeRequest(http.MethodGet, "/api/v1/accounts/123/balance", ""), http.StatusBadRequest)
	s.problem(s.MakeRequest(http.MethodGet, "/api/v1/accounts/"+uuid.NewString()+"/balance", ""), http.StatusNotFound)
}
