package mocks

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/actor"
	"github.com/amirasaad/ledger/pkg/specification"
	"github.com/stretchr/testify/mock"
)

// MockActorRepository is a testify mock of repository.ActorRepository.
type MockActorRepository struct {
	mock.Mock
}

// NewMockActorRepository creates a mock and registers expectation checks on test cleanup.
func NewMockActorRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockActorRepository {
	m := &MockActorRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockActorRepository) Get(
	ctx context.Context,
	specs ...specification.Specification[actor.Actor],
) (actor.Actor, error) {
	ret := m.Called(ctx, specs)
	var a actor.Actor
	if ret.Get(0) != nil {
		a = ret.Get(0).(actor.Actor)
	}
	return a, ret.Error(1)
}

func (m *MockActorRepository) Create(ctx context.Context, a actor.Actor) error {
	ret := m.Called(ctx, a)
	return ret.Error(0)
}
