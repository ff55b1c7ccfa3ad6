package mocks

import (
	"context"

	"yamdb/internal/dto/request"
	"yamdb/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTitleService struct {
	mock.Mock
}

func (m *MockTitleService) GetAllTitles(ctx context.Context, filter *request.TitleFilterRequest, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	args := m.Called(ctx, filter, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.TitleResponse]), args.Error(1)
}

func (m *MockTitleService) GetTitle(ctx context.Context, id uuid.UUID) (*response.TitleResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TitleResponse), args.Error(1)
}

func (m *MockTitleService) CreateTitle(ctx context.Context, req *request.CreateTitleRequest) (*response.TitleResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TitleResponse), args.Error(1)
}

func (m *MockTitleService) UpdateTitle(ctx context.Context, id uuid.UUID, req *request.UpdateTitleRequest) (*response.TitleResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TitleResponse), args.Error(1)
}

func (m *MockTitleService) DeleteTitle(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
