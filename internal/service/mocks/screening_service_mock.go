package mocks

import (
	"context"

	"go-gin-cinema-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockScreeningService struct {
	mock.Mock
}

func NewMockScreeningService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockScreeningService {
	m := &MockScreeningService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockScreeningService) CreateScreening(ctx context.Context, req model.CreateScreeningRequest) (*model.Screening, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screening), args.Error(1)
}

func (m *MockScreeningService) ScreeningList(ctx context.Context) ([]*model.Screening, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Screening), args.Error(1)
}

func (m *MockScreeningService) GetScreeningByID(ctx context.Context, id string) (*model.Screening, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screening), args.Error(1)
}

func (m *MockScreeningService) ListScreeningsByFilm(ctx context.Context, filmID string) ([]*model.Screening, error) {
	args := m.Called(ctx, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Screening), args.Error(1)
}

func (m *MockScreeningService) UpdateScreening(ctx context.Context, id string, params model.UpdateScreeningParams) (*model.Screening, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screening), args.Error(1)
}

func (m *MockScreeningService) DeleteScreening(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScreeningService) GetSeatMap(ctx context.Context, id string) (*model.SeatMap, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SeatMap), args.Error(1)
}
