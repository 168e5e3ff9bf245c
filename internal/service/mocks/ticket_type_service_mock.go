package mocks

import (
	"context"

	"go-gin-cinema-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockTicketTypeService struct {
	mock.Mock
}

func NewMockTicketTypeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTicketTypeService {
	m := &MockTicketTypeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTicketTypeService) CreateTicketType(ctx context.Context, req model.CreateTicketTypeRequest) (*model.TicketType, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TicketType), args.Error(1)
}

func (m *MockTicketTypeService) TicketTypeList(ctx context.Context) ([]*model.TicketType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TicketType), args.Error(1)
}

func (m *MockTicketTypeService) GetTicketTypeByID(ctx context.Context, id string) (*model.TicketType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TicketType), args.Error(1)
}

func (m *MockTicketTypeService) UpdateTicketType(ctx context.Context, id string, params model.UpdateTicketTypeParams) (*model.TicketType, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TicketType), args.Error(1)
}

func (m *MockTicketTypeService) DeleteTicketType(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
