package mocks

import (
	"context"

	"go-gin-cinema-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockTheatreService struct {
	mock.Mock
}

func NewMockTheatreService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTheatreService {
	m := &MockTheatreService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTheatreService) CreateTheatre(ctx context.Context, req model.CreateTheatreRequest) (*model.Theatre, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Theatre), args.Error(1)
}

func (m *MockTheatreService) TheatreList(ctx context.Context) ([]*model.Theatre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Theatre), args.Error(1)
}

func (m *MockTheatreService) GetTheatreByID(ctx context.Context, id string) (*model.Theatre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Theatre), args.Error(1)
}

func (m *MockTheatreService) UpdateTheatre(ctx context.Context, id string, params model.UpdateTheatreParams) (*model.Theatre, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Theatre), args.Error(1)
}

func (m *MockTheatreService) DeleteTheatre(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
