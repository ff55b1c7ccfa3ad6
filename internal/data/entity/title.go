package entity

import (
	"github.com/google/uuid"
)

type Title struct {
	BaseNoDelete
	Name        string     `db:"name"`
	Year        int        `db:"year"`
	Description string     `db:"description"`
	CategoryID  *uuid.UUID `db:"category_id"`

	// Read-side fields filled by joins
	Category *Category `db:"-"`
	Genres   []*Genre  `db:"-"`
	Rating   *float64  `db:"rating"`
}

// TitleFilter narrows title listings. Empty fields are ignored.
type TitleFilter struct {
	CategorySlug string
	GenreSlug    string
	Name         string
	Year         *int
}
