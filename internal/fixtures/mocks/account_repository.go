package mocks

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/specification"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a testify mock of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a mock and registers expectation checks on test cleanup.
func NewMockAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Get records the call; specs are passed through as a single slice argument.
func (m *MockAccountRepository) Get(
	ctx context.Context,
	specs ...specification.Specification[*account.Account],
) (*account.Account, error) {
	ret := m.Called(ctx, specs)
	var a *account.Account
	if rf, ok := ret.Get(0).(func(context.Context, ...specification.Specification[*account.Account]) *account.Account); ok {
		a = rf(ctx, specs...)
	} else if ret.Get(0) != nil {
		a = ret.Get(0).(*account.Account)
	}
	return a, ret.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, a *account.Account) error {
	ret := m.Called(ctx, a)
	return ret.Error(0)
}
