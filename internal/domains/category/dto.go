package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/shared/query"
)

// CategorySortFields is the sort allow-list for category listings.
var CategorySortFields = []string{"name", "created_at", "updated_at"}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100).Error("name must be 1-100 characters"),
		),
	)
}

// UpdateCategoryRequest follows "sometimes" semantics: name may be
// omitted, but if present it is validated in full.
type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil,
				validation.Required.Error("name cannot be empty"),
				validation.Length(1, 100).Error("name must be 1-100 characters"),
			),
		),
	)
}

// ListCategoriesRequest carries the filter/sort/paginate query params.
// start_date and end_date form an inclusive created_at range; supplying
// only one of them is ignored.
type ListCategoriesRequest struct {
	Name      string `form:"name"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

type ListCategoriesResponse struct {
	Categories []Category `json:"categories"`
	Meta       query.Meta `json:"meta"`
}
