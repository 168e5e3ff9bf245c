package mocks

import (
	"context"

	"go-gin-cinema-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type MockScreeningRepository struct {
	mock.Mock
}

func NewMockScreeningRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockScreeningRepository {
	m := &MockScreeningRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockScreeningRepository) List(ctx context.Context) ([]*model.Screening, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Screening), args.Error(1)
}

func (m *MockScreeningRepository) ListByFilmID(ctx context.Context, filmID string) ([]*model.Screening, error) {
	args := m.Called(ctx, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Screening), args.Error(1)
}

func (m *MockScreeningRepository) FindByID(ctx context.Context, id string) (*model.Screening, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screening), args.Error(1)
}

func (m *MockScreeningRepository) Create(ctx context.Context, tx pgx.Tx, screening *model.Screening) (*model.Screening, error) {
	args := m.Called(ctx, tx, screening)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screening), args.Error(1)
}

func (m *MockScreeningRepository) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id string) (*model.Screening, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screening), args.Error(1)
}

func (m *MockScreeningRepository) ListByTheatreIDWithLock(ctx context.Context, tx pgx.Tx, theatreID string) ([]*model.Screening, error) {
	args := m.Called(ctx, tx, theatreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Screening), args.Error(1)
}

func (m *MockScreeningRepository) Update(ctx context.Context, tx pgx.Tx, screening *model.Screening) (*model.Screening, error) {
	args := m.Called(ctx, tx, screening)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screening), args.Error(1)
}

func (m *MockScreeningRepository) AdjustSeatsRemaining(ctx context.Context, tx pgx.Tx, id string, delta int) error {
	args := m.Called(ctx, tx, id, delta)
	return args.Error(0)
}

func (m *MockScreeningRepository) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}
