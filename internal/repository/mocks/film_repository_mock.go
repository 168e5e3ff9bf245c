package mocks

import (
	"context"

	"go-gin-cinema-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MockFilmRepository struct {
	mock.Mock
}

func NewMockFilmRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFilmRepository {
	m := &MockFilmRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFilmRepository) Create(ctx context.Context, film *model.Film) (*model.Film, error) {
	args := m.Called(ctx, film)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Film), args.Error(1)
}

func (m *MockFilmRepository) List(ctx context.Context) ([]*model.Film, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Film), args.Error(1)
}

func (m *MockFilmRepository) FindByID(ctx context.Context, id string) (*model.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Film), args.Error(1)
}

func (m *MockFilmRepository) Update(ctx context.Context, id string, params model.UpdateFilmParams) (*model.Film, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Film), args.Error(1)
}

func (m *MockFilmRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFilmRepository) FindByIDTx(ctx context.Context, tx pgx.Tx, id string) (*model.Film, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Film), args.Error(1)
}
