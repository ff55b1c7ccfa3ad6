package usecase

import (
	"context"
	"fmt"
	"time"

	"yamdb/internal/data/entity"
	"yamdb/internal/data/repository"
	"yamdb/internal/dto/request"
	"yamdb/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TitleService interface {
	GetAllTitles(ctx context.Context, filter *request.TitleFilterRequest, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error)
	GetTitle(ctx context.Context, id uuid.UUID) (*response.TitleResponse, error)
	CreateTitle(ctx context.Context, req *request.CreateTitleRequest) (*response.TitleResponse, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, req *request.UpdateTitleRequest) (*response.TitleResponse, error)
	DeleteTitle(ctx context.Context, id uuid.UUID) error
}

type titleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTitleService(repo *repository.Repository, log *zap.Logger) TitleService {
	return &titleService{
		repo: repo,
		log:  log.With(zap.String("service", "title")),
	}
}

func (s *titleService) GetAllTitles(ctx context.Context, filter *request.TitleFilterRequest, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	req.Normalize()

	var f entity.TitleFilter
	if filter != nil {
		f = entity.TitleFilter{
			CategorySlug: filter.Category,
			GenreSlug:    filter.Genre,
			Name:         filter.Name,
			Year:         filter.Year,
		}
	}

	titles, err := s.repo.Title.FindAll(ctx, f, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get titles: %w", err)
	}
	total, err := s.repo.Title.CountAll(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count titles: %w", err)
	}

	if err := s.attachGenres(ctx, titles...); err != nil {
		return nil, err
	}

	results := make([]response.TitleResponse, len(titles))
	for i, title := range titles {
		results[i] = response.TitleToResponse(title)
	}

	return response.NewPaginatedResponse(results, req.Page, req.PageSize, total), nil
}

func (s *titleService) GetTitle(ctx context.Context, id uuid.UUID) (*response.TitleResponse, error) {
	title, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.TitleToResponse(title)
	return &resp, nil
}

func (s *titleService) CreateTitle(ctx context.Context, req *request.CreateTitleRequest) (*response.TitleResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	genreIDs, err := s.resolveGenres(ctx, req.Genre)
	if err != nil {
		return nil, err
	}
	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	title := &entity.Title{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		CategoryID:  &category.ID,
	}

	if err := s.repo.Title.Create(ctx, title, genreIDs); err != nil {
		return nil, fmt.Errorf("create title: %w", err)
	}

	s.log.Info("Title created",
		zap.String("title_id", title.ID.String()),
		zap.String("name", title.Name),
	)

	return s.GetTitle(ctx, title.ID)
}

func (s *titleService) UpdateTitle(ctx context.Context, id uuid.UUID, req *request.UpdateTitleRequest) (*response.TitleResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, notFound("title")
	}

	var genreIDs []uuid.UUID
	if req.Genre != nil {
		if genreIDs, err = s.resolveGenres(ctx, *req.Genre); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		category, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
	}
	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = *req.Description
	}
	title.UpdatedAt = time.Now()

	if err := s.repo.Title.Update(ctx, title, genreIDs); err != nil {
		return nil, fmt.Errorf("update title: %w", err)
	}

	return s.GetTitle(ctx, id)
}

func (s *titleService) DeleteTitle(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Title.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete title: %w", err)
	}
	if !deleted {
		return notFound("title")
	}

	s.log.Info("Title deleted", zap.String("title_id", id.String()))
	return nil
}

func (s *titleService) load(ctx context.Context, id uuid.UUID) (*entity.Title, error) {
	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, notFound("title")
	}

	if err := s.attachGenres(ctx, title); err != nil {
		return nil, err
	}
	return title, nil
}

func (s *titleService) attachGenres(ctx context.Context, titles ...*entity.Title) error {
	if len(titles) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(titles))
	for i, title := range titles {
		ids[i] = title.ID
	}

	genres, err := s.repo.Genre.FindByTitleIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load title genres: %w", err)
	}
	for _, title := range titles {
		title.Genres = genres[title.ID]
	}
	return nil
}

// resolveGenres maps slugs to ids. A non-nil slice is returned even for an empty list.
func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(slugs))
	if len(slugs) == 0 {
		return ids, nil
	}

	genres, err := s.repo.Genre.FindBySlugs(ctx, slugs)
	if err != nil {
		return nil, fmt.Errorf("resolve genres: %w", err)
	}

	bySlug := make(map[string]uuid.UUID, len(genres))
	for _, genre := range genres {
		bySlug[genre.Slug] = genre.ID
	}

	seen := make(map[uuid.UUID]bool, len(slugs))
	for _, slug := range slugs {
		id, ok := bySlug[slug]
		if !ok {
			return nil, newValidationError("genre", "Incorrect slug "+slug)
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *titleService) resolveCategory(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := s.repo.Category.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("resolve category: %w", err)
	}
	if category == nil {
		return nil, newValidationError("category", "Incorrect slug "+slug)
	}
	return category, nil
}
