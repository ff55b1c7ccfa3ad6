package mocks

import (
	"context"

	"yamdb/internal/dto/request"
	"yamdb/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) GetAllCategories(ctx context.Context, search string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.SlugResponse], error) {
	args := m.Called(ctx, search, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.SlugResponse]), args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.SlugResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.SlugResponse), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}
