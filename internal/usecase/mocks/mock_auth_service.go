package mocks

import (
	"context"

	"yamdb/internal/dto/request"
	"yamdb/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.SignupResponse), args.Error(1)
}

func (m *MockAuthService) Token(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TokenResponse), args.Error(1)
}
