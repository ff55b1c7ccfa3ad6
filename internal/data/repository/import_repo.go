package repository

import (
	"context"
	"fmt"

	"yamdb/internal/data/entity"
	"yamdb/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ImportRepository bulk-loads rows. Each call runs in one transaction and
// skips rows whose key already exists, so a file can be loaded again safely.
type ImportRepository interface {
	InsertUsers(ctx context.Context, users []*entity.User) (int64, error)
	InsertCategories(ctx context.Context, categories []*entity.Category) (int64, error)
	InsertGenres(ctx context.Context, genres []*entity.Genre) (int64, error)
	InsertTitles(ctx context.Context, titles []*entity.Title) (int64, error)
	InsertTitleGenres(ctx context.Context, links []entity.TitleGenre) (int64, error)
	InsertReviews(ctx context.Context, reviews []*entity.Review) (int64, error)
	InsertComments(ctx context.Context, comments []*entity.Comment) (int64, error)
}

type importRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewImportRepository(db database.PgxIface, log *zap.Logger) ImportRepository {
	return &importRepository{
		db:  db,
		log: log.With(zap.String("repository", "import")),
	}
}

// insertAll executes query once per argument set and returns the number of inserted rows.
func (r *importRepository) insertAll(ctx context.Context, table, query string, rows [][]any) (int64, error) {
	var inserted int64

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		for i, args := range rows {
			tag, err := tx.Exec(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			inserted += tag.RowsAffected()
		}
		return nil
	})
	if err != nil {
		r.log.Error("Failed to import rows",
			zap.Error(err),
			zap.String("table", table),
		)
		return 0, fmt.Errorf("import %s: %w", table, err)
	}

	r.log.Info("Rows imported",
		zap.String("table", table),
		zap.Int("rows", len(rows)),
		zap.Int64("inserted", inserted),
	)
	return inserted, nil
}

func (r *importRepository) InsertUsers(ctx context.Context, users []*entity.User) (int64, error) {
	query := `
		INSERT INTO users (id, username, email, first_name, last_name, bio, role,
		                   is_superuser, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT DO NOTHING
	`
	rows := make([][]any, 0, len(users))
	for _, u := range users {
		rows = append(rows, []any{u.ID, u.Username, u.Email, u.FirstName, u.LastName, u.Bio,
			u.Role, u.IsSuperuser, u.IsActive, u.CreatedAt, u.UpdatedAt})
	}
	return r.insertAll(ctx, "users", query, rows)
}

func (r *importRepository) InsertCategories(ctx context.Context, categories []*entity.Category) (int64, error) {
	query := `INSERT INTO categories (id, name, slug, created_at) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`
	rows := make([][]any, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []any{c.ID, c.Name, c.Slug, c.CreatedAt})
	}
	return r.insertAll(ctx, "categories", query, rows)
}

func (r *importRepository) InsertGenres(ctx context.Context, genres []*entity.Genre) (int64, error) {
	query := `INSERT INTO genres (id, name, slug, created_at) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`
	rows := make([][]any, 0, len(genres))
	for _, g := range genres {
		rows = append(rows, []any{g.ID, g.Name, g.Slug, g.CreatedAt})
	}
	return r.insertAll(ctx, "genres", query, rows)
}

func (r *importRepository) InsertTitles(ctx context.Context, titles []*entity.Title) (int64, error) {
	query := `
		INSERT INTO titles (id, name, year, description, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT DO NOTHING
	`
	rows := make([][]any, 0, len(titles))
	for _, t := range titles {
		rows = append(rows, []any{t.ID, t.Name, t.Year, t.Description, t.CategoryID, t.CreatedAt, t.UpdatedAt})
	}
	return r.insertAll(ctx, "titles", query, rows)
}

func (r *importRepository) InsertTitleGenres(ctx context.Context, links []entity.TitleGenre) (int64, error) {
	query := `INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	rows := make([][]any, 0, len(links))
	for _, l := range links {
		rows = append(rows, []any{l.TitleID, l.GenreID})
	}
	return r.insertAll(ctx, "title_genres", query, rows)
}

func (r *importRepository) InsertReviews(ctx context.Context, reviews []*entity.Review) (int64, error) {
	query := `
		INSERT INTO reviews (id, title_id, author_id, text, score, pub_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT DO NOTHING
	`
	rows := make([][]any, 0, len(reviews))
	for _, rv := range reviews {
		rows = append(rows, []any{rv.ID, rv.TitleID, rv.AuthorID, rv.Text, rv.Score, rv.PubDate})
	}
	return r.insertAll(ctx, "reviews", query, rows)
}

func (r *importRepository) InsertComments(ctx context.Context, comments []*entity.Comment) (int64, error) {
	query := `
		INSERT INTO comments (id, review_id, author_id, text, pub_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING
	`
	rows := make([][]any, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []any{c.ID, c.ReviewID, c.AuthorID, c.Text, c.PubDate})
	}
	return r.insertAll(ctx, "comments", query, rows)
}
