package book

import (
	"encoding/json"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookRequest_Valid(t *testing.T) {
	req := CreateBookRequest{
		Title:      "The Dispossessed",
		Author:     "Ursula K. Le Guin",
		CategoryID: uuid.NewString(),
	}

	assert.NoError(t, req.Validate())
}

func TestCreateBookRequest_CategoryOptional(t *testing.T) {
	req := CreateBookRequest{Title: "Piranesi", Author: "Susanna Clarke"}

	assert.NoError(t, req.Validate())
}

func TestCreateBookRequest_MissingFields(t *testing.T) {
	req := CreateBookRequest{}

	err := req.Validate()
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "author")
	assert.NotContains(t, errs, "category_id")
}

func TestCreateBookRequest_BadCategoryID(t *testing.T) {
	req := CreateBookRequest{
		Title:      "Dune",
		Author:     "Frank Herbert",
		CategoryID: "not-a-uuid",
	}

	err := req.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "category_id")
}

func TestUpdateBookRequest_OmittedFieldsSkipped(t *testing.T) {
	// Absent fields carry no rules; only provided values are checked.
	assert.NoError(t, UpdateBookRequest{}.Validate())
}

func TestUpdateBookRequest_ProvidedEmptyTitleRejected(t *testing.T) {
	empty := ""
	req := UpdateBookRequest{Title: &empty}

	err := req.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "title")
}

func TestUpdateBookRequest_EmptyCategoryIDDetaches(t *testing.T) {
	// Empty string is the detach sentinel, not a malformed UUID.
	empty := ""
	req := UpdateBookRequest{CategoryID: &empty}

	assert.NoError(t, req.Validate())
}

func TestBookWithCategory_ToDTO(t *testing.T) {
	catID := uuid.New()
	catName := "Science Fiction"
	b := BookWithCategory{
		Book: Book{
			ID:         uuid.New(),
			Title:      "Annihilation",
			Author:     "Jeff VanderMeer",
			CategoryID: &catID,
		},
		CategoryName: &catName,
	}

	dto := b.ToDTO()
	require.NotNil(t, dto.Category)
	assert.Equal(t, catID, dto.Category.ID)
	assert.Equal(t, "Science Fiction", dto.Category.Name)
}

func TestBookWithCategory_SurvivesCacheRoundTrip(t *testing.T) {
	// The cache layer stores BookWithCategory as JSON. Every joined
	// field must survive the round trip, or cache hits would serve a
	// different book than the first read did.
	catID := uuid.New()
	catName := "Fiction"
	original := BookWithCategory{
		Book: Book{
			ID:         uuid.New(),
			Title:      "The Left Hand of Darkness",
			Author:     "Ursula K. Le Guin",
			CategoryID: &catID,
		},
		CategoryName: &catName,
	}

	raw, err := json.Marshal(&original)
	require.NoError(t, err)

	var cached BookWithCategory
	require.NoError(t, json.Unmarshal(raw, &cached))

	require.NotNil(t, cached.CategoryName)
	assert.Equal(t, "Fiction", *cached.CategoryName)

	dto := cached.ToDTO()
	require.NotNil(t, dto.Category)
	assert.Equal(t, catID, dto.Category.ID)
	assert.Equal(t, "Fiction", dto.Category.Name)
}

func TestBookWithCategory_ToDTO_NoCategory(t *testing.T) {
	b := BookWithCategory{
		Book: Book{ID: uuid.New(), Title: "Orphaned", Author: "Nobody"},
	}

	assert.Nil(t, b.ToDTO().Category)
}
