package mocks

import (
	"context"

	"go-gin-cinema-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockFilmService struct {
	mock.Mock
}

func NewMockFilmService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFilmService {
	m := &MockFilmService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFilmService) CreateFilm(ctx context.Context, req model.CreateFilmRequest) (*model.Film, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Film), args.Error(1)
}

func (m *MockFilmService) FilmList(ctx context.Context) ([]*model.Film, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Film), args.Error(1)
}

func (m *MockFilmService) GetFilmByID(ctx context.Context, id string) (*model.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Film), args.Error(1)
}

func (m *MockFilmService) UpdateFilm(ctx context.Context, id string, params model.UpdateFilmParams) (*model.Film, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Film), args.Error(1)
}

func (m *MockFilmService) DeleteFilm(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
