package usecase

import (
	"context"
	"testing"
	"time"

	"yamdb/internal/data/entity"
	"yamdb/internal/data/repository"
	repoMocks "yamdb/internal/data/repository/mocks"
	"yamdb/internal/dto/request"
	"yamdb/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type titleFixture struct {
	titles     *repoMocks.MockTitleRepository
	genres     *repoMocks.MockGenreRepository
	categories *repoMocks.MockCategoryRepository
	service    TitleService
}

func newTitleFixture() *titleFixture {
	f := &titleFixture{
		titles:     new(repoMocks.MockTitleRepository),
		genres:     new(repoMocks.MockGenreRepository),
		categories: new(repoMocks.MockCategoryRepository),
	}
	repo := &repository.Repository{Title: f.titles, Genre: f.genres, Category: f.categories}
	f.service = NewTitleService(repo, zap.NewNop())
	return f
}

func pinYear(t *testing.T, year int) {
	t.Helper()
	restore := utils.Now
	utils.Now = func() time.Time { return time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { utils.Now = restore })
}

func TestTitleService_CreateTitle(t *testing.T) {
	ctx := context.Background()
	pinYear(t, 2024)

	drama := &entity.Genre{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "Drama", Slug: "drama"}
	movie := &entity.Category{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "Movie", Slug: "movie"}

	t.Run("resolves slugs and returns the stored title", func(t *testing.T) {
		f := newTitleFixture()
		f.genres.On("FindBySlugs", ctx, []string{"drama", "drama"}).Return([]*entity.Genre{drama}, nil)
		f.categories.On("FindBySlug", ctx, "movie").Return(movie, nil)

		f.titles.On("Create", ctx, mock.MatchedBy(func(title *entity.Title) bool {
			return title.Name == "Arrival" && *title.CategoryID == movie.ID
		}), []uuid.UUID{drama.ID}).Return(nil)
		f.titles.On("FindByID", ctx, mock.Anything).Return(&entity.Title{
			BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
			Name:         "Arrival",
			Year:         2016,
			CategoryID:   &movie.ID,
			Category:     movie,
		}, nil)
		f.genres.On("FindByTitleIDs", ctx, mock.Anything).Return(map[uuid.UUID][]*entity.Genre{}, nil)

		resp, err := f.service.CreateTitle(ctx, &request.CreateTitleRequest{
			Name:     "Arrival",
			Year:     2016,
			Genre:    []string{"drama", "drama"},
			Category: "movie",
		})
		require.NoError(t, err)
		assert.Equal(t, "Arrival", resp.Name)
		assert.Nil(t, resp.Rating)
		require.NotNil(t, resp.Category)
		assert.Equal(t, "movie", resp.Category.Slug)
		f.titles.AssertExpectations(t)
	})

	t.Run("unknown genre slug", func(t *testing.T) {
		f := newTitleFixture()
		f.genres.On("FindBySlugs", ctx, []string{"drama", "nope"}).Return([]*entity.Genre{drama}, nil)

		_, err := f.service.CreateTitle(ctx, &request.CreateTitleRequest{
			Name: "Arrival", Year: 2016, Genre: []string{"drama", "nope"}, Category: "movie",
		})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Incorrect slug nope", vErr.Fields["genre"])
		f.titles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown category slug", func(t *testing.T) {
		f := newTitleFixture()
		f.genres.On("FindBySlugs", ctx, []string{"drama"}).Return([]*entity.Genre{drama}, nil)
		f.categories.On("FindBySlug", ctx, "book").Return(nil, nil)

		_, err := f.service.CreateTitle(ctx, &request.CreateTitleRequest{
			Name: "Arrival", Year: 2016, Genre: []string{"drama"}, Category: "book",
		})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "category")
	})

	t.Run("year in the future", func(t *testing.T) {
		f := newTitleFixture()

		_, err := f.service.CreateTitle(ctx, &request.CreateTitleRequest{
			Name: "Later", Year: 2025, Genre: []string{"drama"}, Category: "movie",
		})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "year")
	})

	t.Run("current year is accepted by validation", func(t *testing.T) {
		req := &request.CreateTitleRequest{Name: "Now", Year: 2024, Genre: []string{"drama"}, Category: "movie"}
		assert.NoError(t, validate(req))
	})
}

func TestTitleService_UpdateTitle(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	stored := func() *entity.Title {
		return &entity.Title{BaseNoDelete: entity.BaseNoDelete{ID: id}, Name: "Old", Year: 2000}
	}

	t.Run("partial update keeps genres", func(t *testing.T) {
		f := newTitleFixture()
		f.titles.On("FindByID", ctx, id).Return(stored(), nil)
		f.titles.On("Update", ctx, mock.MatchedBy(func(title *entity.Title) bool {
			return title.Name == "New" && title.Year == 2000
		}), []uuid.UUID(nil)).Return(nil)
		f.genres.On("FindByTitleIDs", ctx, []uuid.UUID{id}).Return(map[uuid.UUID][]*entity.Genre{}, nil)

		_, err := f.service.UpdateTitle(ctx, id, &request.UpdateTitleRequest{Name: strPtr("New")})
		require.NoError(t, err)
		f.titles.AssertExpectations(t)
	})

	t.Run("empty genre list clears genres", func(t *testing.T) {
		f := newTitleFixture()
		f.titles.On("FindByID", ctx, id).Return(stored(), nil)
		f.titles.On("Update", ctx, mock.Anything, []uuid.UUID{}).Return(nil)
		f.genres.On("FindByTitleIDs", ctx, []uuid.UUID{id}).Return(map[uuid.UUID][]*entity.Genre{}, nil)

		_, err := f.service.UpdateTitle(ctx, id, &request.UpdateTitleRequest{Genre: &[]string{}})
		require.NoError(t, err)
		f.titles.AssertExpectations(t)
	})

	t.Run("missing title", func(t *testing.T) {
		f := newTitleFixture()
		f.titles.On("FindByID", ctx, id).Return(nil, nil)

		_, err := f.service.UpdateTitle(ctx, id, &request.UpdateTitleRequest{Name: strPtr("New")})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		f := newTitleFixture()

		_, err := f.service.UpdateTitle(ctx, id, &request.UpdateTitleRequest{Name: strPtr("")})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "name")
		f.titles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTitleService_GetTitleRating(t *testing.T) {
	ctx := context.Background()
	f := newTitleFixture()
	id := uuid.New()
	drama := &entity.Genre{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "Drama", Slug: "drama"}

	f.titles.On("FindByID", ctx, id).Return(&entity.Title{
		BaseNoDelete: entity.BaseNoDelete{ID: id}, Name: "Arrival", Year: 2016, Rating: floatPtr(7.5),
	}, nil)
	f.genres.On("FindByTitleIDs", ctx, []uuid.UUID{id}).
		Return(map[uuid.UUID][]*entity.Genre{id: {drama}}, nil)

	resp, err := f.service.GetTitle(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, resp.Rating)
	assert.InDelta(t, 7.5, *resp.Rating, 0.001)
	require.Len(t, resp.Genre, 1)
	assert.Equal(t, "drama", resp.Genre[0].Slug)
	assert.Nil(t, resp.Category)
}

func TestTitleService_DeleteTitle(t *testing.T) {
	ctx := context.Background()
	f := newTitleFixture()
	id := uuid.New()
	f.titles.On("Delete", ctx, id).Return(false, nil)

	assert.ErrorIs(t, f.service.DeleteTitle(ctx, id), ErrNotFound)
}
