package request

type CreateTitleRequest struct {
	Name        string   `json:"name" validate:"required,max=256"`
	Year        int      `json:"year" validate:"required,notfuture"`
	Description string   `json:"description"`
	Genre       []string `json:"genre" validate:"required,dive,required"`
	Category    string   `json:"category" validate:"required"`
}

// UpdateTitleRequest is a partial update. A present genre list replaces the current set.
type UpdateTitleRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1,max=256"`
	Year        *int      `json:"year,omitempty" validate:"omitempty,notfuture"`
	Description *string   `json:"description,omitempty"`
	Genre       *[]string `json:"genre,omitempty" validate:"omitempty,dive,required"`
	Category    *string   `json:"category,omitempty"`
}

type TitleFilterRequest struct {
	Category string
	Genre    string
	Name     string
	Year     *int
}
