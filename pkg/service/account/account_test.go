package account_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/currency"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/metrics"
	"github.com/amirasaad/ledger/pkg/repository"
	service "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var johnSmith = initializer.SeedPersons[0].ID

type ServiceTestSuite struct {
	suite.Suite
	svc     *service.Service
	deps    *config.Deps
	closeFn func() error
	ctx     context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	cfg := &config.App{
		Env:       "test",
		Log:       &config.Log{Level: 12},
		DB:        &config.DB{Driver: infra.DriverSQLite, Url: ":memory:"},
		RateLimit: &config.RateLimit{},
		Seed:      &config.Seed{Enabled: true},
	}
	deps, closeFn, err := initializer.InitializeDependencies(cfg, io.Discard)
	s.Require().NoError(err)
	s.deps = deps
	s.closeFn = closeFn
	s.svc = service.NewService(*deps)
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TearDownTest() {
	s.Require().NoError(s.closeFn())
}

func (s *ServiceTestSuite) dkk(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func (s *ServiceTestSuite) openAccount(balance int64) uuid.UUID {
	created, err := s.svc.CreateAccount(s.ctx, johnSmith, currency.DKK)
	s.Require().NoError(err)
	if balance > 0 {
		s.Require().NoError(s.svc.Deposit(s.ctx, created.ID, s.dkk(balance), currency.DKK))
	}
	return created.ID
}

func (s *ServiceTestSuite) balanceOf(id uuid.UUID) decimal.Decimal {
	res, err := s.svc.GetBalance(s.ctx, id)
	s.Require().NoError(err)
	return res.Balance.Value()
}

func (s *ServiceTestSuite) TestCreateAccount() {
	created, err := s.svc.CreateAccount(s.ctx, johnSmith, currency.DKK)
	s.Require().NoError(err)

	s.NotEqual(uuid.Nil, created.ID)
	s.NotEmpty(created.AccountNumber)
	s.Equal(currency.DKK, created.Currency)
	s.True(created.Balance.IsZero())
	s.Equal(johnSmith, created.OwnerID)

	res, err := s.svc.GetBalance(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.AccountNumber, res.AccountNumber)
	s.True(res.Balance.IsZero())
}

func (s *ServiceTestSuite) TestCreateAccount_UnknownActor() {
	_, err := s.svc.CreateAccount(s.ctx, uuid.New(), currency.DKK)

	var nf *domain.EntityNotFoundError
	s.Require().ErrorAs(err, &nf)
	s.Equal("Actor", nf.Entity)
}

func (s *ServiceTestSuite) TestDeposit() {
	id := s.openAccount(0)

	s.Require().NoError(s.svc.Deposit(s.ctx, id, s.dkk(100), currency.DKK))
	s.Require().NoError(s.svc.Deposit(s.ctx, id, decimal.RequireFromString("0.5"), currency.DKK))
	s.Require().NoError(s.svc.Deposit(s.ctx, id, decimal.Zero, currency.DKK))

	s.True(s.balanceOf(id).Equal(decimal.RequireFromString("100.5")))
}

func (s *ServiceTestSuite) TestDeposit_KeepsFullPrecision() {
	id := s.openAccount(0)
	big := decimal.RequireFromString("123456789012.12345678")

	s.Require().NoError(s.svc.Deposit(s.ctx, id, big, currency.DKK))
	s.Equal("123456789012.12345678", s.balanceOf(id).String())

	s.Require().NoError(s.svc.Deposit(s.ctx, id, decimal.RequireFromString("0.01"), currency.DKK))
	s.Equal("123456789012.13345678", s.balanceOf(id).String())
}

func (s *ServiceTestSuite) TestTransfer_HighPrecisionConservesTotal() {
	a := s.openAccount(0)
	b := s.openAccount(0)
	total := decimal.RequireFromString("987654321098.76543219")
	s.Require().NoError(s.svc.Deposit(s.ctx, a, total, currency.DKK))

	s.Require().NoError(s.svc.Transfer(s.ctx, a, b, decimal.RequireFromString("0.00000001"), currency.DKK))
	s.Require().NoError(s.svc.Transfer(s.ctx, a, b, decimal.RequireFromString("123456789012.1"), currency.DKK))

	s.Equal("864197532086.66543218", s.balanceOf(a).String())
	s.Equal("123456789012.10000001", s.balanceOf(b).String())
	s.True(s.balanceOf(a).Add(s.balanceOf(b)).Equal(total))
}

func (s *ServiceTestSuite) TestDeposit_Rejected() {
	id := s.openAccount(10)

	err := s.svc.Deposit(s.ctx, id, s.dkk(-1), currency.DKK)
	s.ErrorIs(err, account.ErrInvalidAmount)

	err = s.svc.Deposit(s.ctx, id, s.dkk(5), currency.Undefined)
	s.ErrorIs(err, account.ErrCurrencyMismatch)

	err = s.svc.Deposit(s.ctx, uuid.New(), s.dkk(5), currency.DKK)
	s.ErrorIs(err, domain.ErrNotFound)

	s.True(s.balanceOf(id).Equal(s.dkk(10)))
}

func (s *ServiceTestSuite) TestTransfer_RoundTripConservesTotal() {
	a := s.openAccount(250)
	b := s.openAccount(0)

	s.Require().NoError(s.svc.Transfer(s.ctx, a, b, s.dkk(100), currency.DKK))
	s.Require().NoError(s.svc.Transfer(s.ctx, b, a, s.dkk(30), currency.DKK))

	s.True(s.balanceOf(a).Equal(s.dkk(180)))
	s.True(s.balanceOf(b).Equal(s.dkk(70)))
	s.True(s.balanceOf(a).Add(s.balanceOf(b)).Equal(s.dkk(250)))
}

func (s *ServiceTestSuite) TestTransfer_MissingDestinationCommitsNothing() {
	from := s.openAccount(100)

	err := s.svc.Transfer(s.ctx, from, uuid.New(), s.dkk(40), currency.DKK)

	var nf *domain.EntityNotFoundError
	s.Require().ErrorAs(err, &nf)
	s.Equal("Account", nf.Entity)
	s.True(s.balanceOf(from).Equal(s.dkk(100)))
}

func (s *ServiceTestSuite) TestTransfer_InsufficientFundsCommitsNothing() {
	from := s.openAccount(30)
	to := s.openAccount(5)

	err := s.svc.Transfer(s.ctx, from, to, s.dkk(31), currency.DKK)

	s.ErrorIs(err, account.ErrInsufficientFunds)
	s.True(s.balanceOf(from).Equal(s.dkk(30)))
	s.True(s.balanceOf(to).Equal(s.dkk(5)))
}

func (s *ServiceTestSuite) TestTransfer_ConcurrentTransfersNeverOverdraw() {
	from := s.openAccount(100)
	to := s.openAccount(0)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.svc.Transfer(s.ctx, from, to, s.dkk(15), currency.DKK)
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, account.ErrInsufficientFunds)
	}
	s.Equal(6, succeeded)
	s.True(s.balanceOf(from).Equal(s.dkk(10)))
	s.True(s.balanceOf(to).Equal(s.dkk(90)))
}

func (s *ServiceTestSuite) TestGetBalance_UnknownAccount() {
	res, err := s.svc.GetBalance(s.ctx, uuid.New())
	s.Nil(res)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *ServiceTestSuite) TestMetricsRecordOutcomes() {
	id := s.openAccount(0)
	_ = s.svc.Deposit(s.ctx, id, s.dkk(-1), currency.DKK)

	expected := `
# HELP ledger_commands_total Total number of ledger commands and queries handled.
# TYPE ledger_commands_total counter
ledger_commands_total{command="create_account",outcome="success"} 1
ledger_commands_total{command="deposit",outcome="failure"} 1
`
	s.NoError(testutil.GatherAndCompare(s.deps.Metrics.Registry(), strings.NewReader(expected), "ledger_commands_total"))
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func TestService_CommandFailureRollsBack(t *testing.T) {
	repoErr := errors.New("connection reset")
	uow := mocks.NewMockUnitOfWork(t)
	accounts := mocks.NewMockAccountRepository(t)

	uow.On("InTransaction").Return(false).Once()
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("AccountRepository").Return(accounts, nil).Once()
	accounts.On("Get", mock.Anything, mock.Anything).Return(nil, repoErr).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	uow.On("Close").Return(nil).Once()

	svc := service.NewService(config.Deps{
		UowFactory: func() (repository.UnitOfWork, error) { return uow, nil },
		Metrics:    metrics.New(),
	})

	err := svc.Deposit(context.Background(), uuid.New(), decimal.NewFromInt(1), currency.DKK)
	require.ErrorIs(t, err, repoErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertNotCalled(t, "SaveChanges", mock.Anything)
}

func TestService_QueryBypassesTransaction(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	accounts := mocks.NewMockAccountRepository(t)

	uow.On("AccountRepository").Return(accounts, nil).Once()
	accounts.On("Get", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound).Once()
	uow.On("Close").Return(nil).Once()

	svc := service.NewService(config.Deps{
		UowFactory: func() (repository.UnitOfWork, error) { return uow, nil },
	})

	_, err := svc.GetBalance(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
	uow.AssertNotCalled(t, "InTransaction")
}
