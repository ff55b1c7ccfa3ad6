package mocks

import (
	"context"

	"yamdb/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockConfirmationCodeRepository struct {
	mock.Mock
}

func (m *MockConfirmationCodeRepository) Create(ctx context.Context, code *entity.ConfirmationCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockConfirmationCodeRepository) FindLatestActive(ctx context.Context, userID uuid.UUID) (*entity.ConfirmationCode, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ConfirmationCode), args.Error(1)
}

func (m *MockConfirmationCodeRepository) MarkAsUsed(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockConfirmationCodeRepository) InvalidateForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
