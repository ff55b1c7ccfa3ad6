package mocks

import (
	"context"

	"yamdb/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type MockImportRepository struct {
	mock.Mock
}

func (m *MockImportRepository) InsertUsers(ctx context.Context, users []*entity.User) (int64, error) {
	args := m.Called(ctx, users)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImportRepository) InsertCategories(ctx context.Context, categories []*entity.Category) (int64, error) {
	args := m.Called(ctx, categories)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImportRepository) InsertGenres(ctx context.Context, genres []*entity.Genre) (int64, error) {
	args := m.Called(ctx, genres)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImportRepository) InsertTitles(ctx context.Context, titles []*entity.Title) (int64, error) {
	args := m.Called(ctx, titles)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImportRepository) InsertTitleGenres(ctx context.Context, links []entity.TitleGenre) (int64, error) {
	args := m.Called(ctx, links)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImportRepository) InsertReviews(ctx context.Context, reviews []*entity.Review) (int64, error) {
	args := m.Called(ctx, reviews)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImportRepository) InsertComments(ctx context.Context, comments []*entity.Comment) (int64, error) {
	args := m.Called(ctx, comments)
	return args.Get(0).(int64), args.Error(1)
}
