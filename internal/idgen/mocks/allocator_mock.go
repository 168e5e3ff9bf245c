package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAllocator struct {
	mock.Mock
}

func NewMockAllocator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAllocator {
	m := &MockAllocator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAllocator) Next(ctx context.Context, entity string) (string, error) {
	args := m.Called(ctx, entity)
	return args.String(0), args.Error(1)
}

func (m *MockAllocator) NextN(ctx context.Context, entity string, n int) ([]string, error) {
	args := m.Called(ctx, entity, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAllocator) WarmUp(ctx context.Context, entity string, floor int64) error {
	args := m.Called(ctx, entity, floor)
	return args.Error(0)
}
