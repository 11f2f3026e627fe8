package wishlist

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWishlistRequest_Valid(t *testing.T) {
	req := CreateWishlistRequest{
		BookID: uuid.NewString(),
		Notes:  "lent my copy to a friend",
	}

	assert.NoError(t, req.Validate())
}

func TestCreateWishlistRequest_MissingBookID(t *testing.T) {
	err := CreateWishlistRequest{}.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "book_id")
}

func TestCreateWishlistRequest_BadBookID(t *testing.T) {
	err := CreateWishlistRequest{BookID: "42"}.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "book_id")
}

func TestCreateWishlistRequest_NotesTooLong(t *testing.T) {
	req := CreateWishlistRequest{
		BookID: uuid.NewString(),
		Notes:  strings.Repeat("a", 501),
	}

	err := req.Validate()
	require.Error(t, err)

	errs := err.(validation.Errors)
	assert.Contains(t, errs, "notes")
}

func TestUpdateWishlistRequest_NilNotesAllowed(t *testing.T) {
	assert.NoError(t, UpdateWishlistRequest{}.Validate())
}
