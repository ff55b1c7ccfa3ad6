package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"yamdb/internal/data/entity"
	"yamdb/internal/data/repository"
	"yamdb/pkg/utils"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CSV rows carry integer keys; every key is mapped with utils.LegacyUUID.

type userRow struct {
	ID        string `csv:"id"`
	Username  string `csv:"username"`
	Email     string `csv:"email"`
	Role      string `csv:"role"`
	Bio       string `csv:"bio"`
	FirstName string `csv:"first_name"`
	LastName  string `csv:"last_name"`
}

type slugRow struct {
	ID   string `csv:"id"`
	Name string `csv:"name"`
	Slug string `csv:"slug"`
}

type titleRow struct {
	ID          string `csv:"id"`
	Name        string `csv:"name"`
	Year        int    `csv:"year"`
	Description string `csv:"description"`
	Category    string `csv:"category"`
}

type genreTitleRow struct {
	ID      string `csv:"id"`
	TitleID string `csv:"title_id"`
	GenreID string `csv:"genre_id"`
}

type reviewRow struct {
	ID      string `csv:"id"`
	TitleID string `csv:"title_id"`
	Text    string `csv:"text"`
	Author  string `csv:"author"`
	Score   int    `csv:"score"`
	PubDate string `csv:"pub_date"`
}

type commentRow struct {
	ID       string `csv:"id"`
	ReviewID string `csv:"review_id"`
	Text     string `csv:"text"`
	Author   string `csv:"author"`
	PubDate  string `csv:"pub_date"`
}

type ImportService interface {
	// Load reads one CSV file for model and returns how many new rows were stored.
	Load(ctx context.Context, model string, r io.Reader) (int64, error)
	Models() []string
}

type importService struct {
	importRepo repository.ImportRepository
	loaders    map[string]func(ctx context.Context, r io.Reader) (int64, error)
	now        func() time.Time
	log        *zap.Logger
}

func NewImportService(importRepo repository.ImportRepository, log *zap.Logger) ImportService {
	s := &importService{
		importRepo: importRepo,
		now:        time.Now,
		log:        log.With(zap.String("service", "import")),
	}
	s.loaders = map[string]func(ctx context.Context, r io.Reader) (int64, error){
		"users":       s.loadUsers,
		"category":    s.loadCategories,
		"genre":       s.loadGenres,
		"titles":      s.loadTitles,
		"genre_title": s.loadGenreTitles,
		"review":      s.loadReviews,
		"comments":    s.loadComments,
	}
	return s
}

func (s *importService) Models() []string {
	models := make([]string, 0, len(s.loaders))
	for name := range s.loaders {
		models = append(models, name)
	}
	sort.Strings(models)
	return models
}

func (s *importService) Load(ctx context.Context, model string, r io.Reader) (int64, error) {
	load, ok := s.loaders[model]
	if !ok {
		return 0, newValidationError("model", fmt.Sprintf("Unknown model %q, expected one of: %s",
			model, strings.Join(s.Models(), ", ")))
	}

	inserted, err := load(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", model, err)
	}

	s.log.Info("CSV loaded", zap.String("model", model), zap.Int64("inserted", inserted))
	return inserted, nil
}

func (s *importService) loadUsers(ctx context.Context, r io.Reader) (int64, error) {
	var rows []*userRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}

	now := s.now()
	users := make([]*entity.User, 0, len(rows))
	for i, row := range rows {
		role := entity.UserRole(strings.TrimSpace(row.Role))
		if role == "" {
			role = entity.RoleUser
		}
		if !role.Valid() {
			return 0, fmt.Errorf("line %d: unknown role %q", i+2, row.Role)
		}
		users = append(users, &entity.User{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        utils.LegacyUUID("users", row.ID),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Username:  row.Username,
			Email:     row.Email,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Bio:       row.Bio,
			Role:      role,
			IsActive:  true,
		})
	}

	return s.importRepo.InsertUsers(ctx, users)
}

func (s *importService) loadCategories(ctx context.Context, r io.Reader) (int64, error) {
	var rows []*slugRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}

	now := s.now()
	categories := make([]*entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, &entity.Category{
			BaseSimple: entity.BaseSimple{ID: utils.LegacyUUID("category", row.ID), CreatedAt: now},
			Name:       row.Name,
			Slug:       row.Slug,
		})
	}

	return s.importRepo.InsertCategories(ctx, categories)
}

func (s *importService) loadGenres(ctx context.Context, r io.Reader) (int64, error) {
	var rows []*slugRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}

	now := s.now()
	genres := make([]*entity.Genre, 0, len(rows))
	for _, row := range rows {
		genres = append(genres, &entity.Genre{
			BaseSimple: entity.BaseSimple{ID: utils.LegacyUUID("genre", row.ID), CreatedAt: now},
			Name:       row.Name,
			Slug:       row.Slug,
		})
	}

	return s.importRepo.InsertGenres(ctx, genres)
}

func (s *importService) loadTitles(ctx context.Context, r io.Reader) (int64, error) {
	var rows []*titleRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}

	now := s.now()
	titles := make([]*entity.Title, 0, len(rows))
	for i, row := range rows {
		if row.Year > now.Year() {
			return 0, fmt.Errorf("line %d: year %d is in the future", i+2, row.Year)
		}

		var categoryID *uuid.UUID
		if c := strings.TrimSpace(row.Category); c != "" {
			id := utils.LegacyUUID("category", c)
			categoryID = &id
		}

		titles = append(titles, &entity.Title{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        utils.LegacyUUID("titles", row.ID),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name:        row.Name,
			Year:        row.Year,
			Description: row.Description,
			CategoryID:  categoryID,
		})
	}

	return s.importRepo.InsertTitles(ctx, titles)
}

func (s *importService) loadGenreTitles(ctx context.Context, r io.Reader) (int64, error) {
	var rows []*genreTitleRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}

	links := make([]entity.TitleGenre, 0, len(rows))
	for _, row := range rows {
		links = append(links, entity.TitleGenre{
			TitleID: utils.LegacyUUID("titles", row.TitleID),
			GenreID: utils.LegacyUUID("genre", row.GenreID),
		})
	}

	return s.importRepo.InsertTitleGenres(ctx, links)
}

func (s *importService) loadReviews(ctx context.Context, r io.Reader) (int64, error) {
	var rows []*reviewRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}

	reviews := make([]*entity.Review, 0, len(rows))
	for i, row := range rows {
		if row.Score < entity.MinScore || row.Score > entity.MaxScore {
			return 0, fmt.Errorf("line %d: score %d out of range", i+2, row.Score)
		}
		pubDate, err := s.parseDate(row.PubDate)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+2, err)
		}
		reviews = append(reviews, &entity.Review{
			ID:       utils.LegacyUUID("review", row.ID),
			TitleID:  utils.LegacyUUID("titles", row.TitleID),
			AuthorID: utils.LegacyUUID("users", row.Author),
			Text:     row.Text,
			Score:    row.Score,
			PubDate:  pubDate,
		})
	}

	return s.importRepo.InsertReviews(ctx, reviews)
}

func (s *importService) loadComments(ctx context.Context, r io.Reader) (int64, error) {
	var rows []*commentRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}

	comments := make([]*entity.Comment, 0, len(rows))
	for i, row := range rows {
		pubDate, err := s.parseDate(row.PubDate)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+2, err)
		}
		comments = append(comments, &entity.Comment{
			ID:       utils.LegacyUUID("comments", row.ID),
			ReviewID: utils.LegacyUUID("review", row.ReviewID),
			AuthorID: utils.LegacyUUID("users", row.Author),
			Text:     row.Text,
			PubDate:  pubDate,
		})
	}

	return s.importRepo.InsertComments(ctx, comments)
}

// parseDate accepts RFC 3339 timestamps; an empty value means now.
func (s *importService) parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return s.now(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pub_date %q: %w", value, err)
	}
	return t, nil
}
