package mocks

import (
	"context"

	"go-gin-cinema-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MockTheatreRepository struct {
	mock.Mock
}

func NewMockTheatreRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTheatreRepository {
	m := &MockTheatreRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTheatreRepository) Create(ctx context.Context, theatre *model.Theatre) (*model.Theatre, error) {
	args := m.Called(ctx, theatre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Theatre), args.Error(1)
}

func (m *MockTheatreRepository) List(ctx context.Context) ([]*model.Theatre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Theatre), args.Error(1)
}

func (m *MockTheatreRepository) FindByID(ctx context.Context, id string) (*model.Theatre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Theatre), args.Error(1)
}

func (m *MockTheatreRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTheatreRepository) FindByIDTx(ctx context.Context, tx pgx.Tx, id string) (*model.Theatre, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Theatre), args.Error(1)
}

func (m *MockTheatreRepository) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id string) (*model.Theatre, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Theatre), args.Error(1)
}

func (m *MockTheatreRepository) Update(ctx context.Context, tx pgx.Tx, theatre *model.Theatre) (*model.Theatre, error) {
	args := m.Called(ctx, tx, theatre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Theatre), args.Error(1)
}
