package mocks

import (
	"context"

	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a testify mock of repository.UnitOfWork.
type MockUnitOfWork struct {
	mock.Mock
}

// NewMockUnitOfWork creates a mock and registers expectation checks on test cleanup.
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUnitOfWork) InTransaction() bool {
	return m.Called().Bool(0)
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) SaveChanges(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) Close() error {
	return m.Called().Error(0)
}

func (m *MockUnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	ret := m.Called()
	var r repository.AccountRepository
	if ret.Get(0) != nil {
		r = ret.Get(0).(repository.AccountRepository)
	}
	return r, ret.Error(1)
}

func (m *MockUnitOfWork) ActorRepository() (repository.ActorRepository, error) {
	ret := m.Called()
	var r repository.ActorRepository
	if ret.Get(0) != nil {
		r = ret.Get(0).(repository.ActorRepository)
	}
	return r, ret.Error(1)
}
