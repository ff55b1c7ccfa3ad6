package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type signupInput struct {
	Username string `json:"username" validate:"required,max=150,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
}

type taxonomyInput struct {
	Name string `json:"name" validate:"required,max=256"`
	Slug string `json:"slug" validate:"required,max=50,slug"`
}

type titleInput struct {
	Year *int `json:"year,omitempty" validate:"omitempty,notfuture"`
}

func TestValidateStruct_Username(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "plain", username: "reviewer", wantErr: false},
		{name: "allowed symbols", username: "john.doe+tag@x_y-z", wantErr: false},
		{name: "reserved me", username: "me", wantErr: true},
		{name: "reserved me upper case", username: "ME", wantErr: true},
		{name: "me as prefix is fine", username: "meow", wantErr: false},
		{name: "space", username: "john doe", wantErr: true},
		{name: "slash", username: "john/doe", wantErr: true},
		{name: "cyrillic", username: "Иван", wantErr: false},
		{name: "accented", username: "josé_2", wantErr: false},
		{name: "emoji", username: "fan🎬", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(signupInput{Username: tt.username, Email: "a@b.co"})
			if tt.wantErr {
				assert.Contains(t, errs, "username")
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestValidateStruct_ReservedUsernameMessage(t *testing.T) {
	errs := ValidateStruct(signupInput{Username: "me", Email: "me@example.com"})

	assert.Equal(t, `Username "me" is not allowed`, errs["username"])
}

func TestValidateStruct_Slug(t *testing.T) {
	assert.Empty(t, ValidateStruct(taxonomyInput{Name: "Films", Slug: "films_2-x"}))

	errs := ValidateStruct(taxonomyInput{Name: "Films", Slug: "films!"})
	assert.Equal(t, "Only letters, digits, hyphens and underscores are allowed", errs["slug"])

	errs = ValidateStruct(taxonomyInput{Slug: "ok"})
	assert.Equal(t, "This field is required", errs["name"])
}

func TestValidateStruct_NotFutureYear(t *testing.T) {
	restore := Now
	Now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { Now = restore }()

	current := 2024
	next := 2025
	past := 1899

	assert.Empty(t, ValidateStruct(titleInput{Year: &current}))
	assert.Empty(t, ValidateStruct(titleInput{Year: &past}))
	assert.Empty(t, ValidateStruct(titleInput{}))

	errs := ValidateStruct(titleInput{Year: &next})
	assert.Equal(t, "Year must be less than or equal to the current one", errs["year"])
}

func TestFormatValidationErrors_Sorted(t *testing.T) {
	out := FormatValidationErrors(map[string]string{
		"slug": "bad",
		"name": "missing",
	})

	assert.Equal(t, "name: missing; slug: bad", out)
}
