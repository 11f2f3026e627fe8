package query

import "strings"

// Sort is a validated ORDER BY target.
type Sort struct {
	Column string
	Order  string // "ASC" or "DESC"
}

// ResolveSort checks sort_by against the entity's allow-list and
// sort_order against {asc, desc}. Anything outside either set silently
// falls back to created_at descending. The fallback is policy, not an
// error: unknown sort keys must not fail public list endpoints.
func ResolveSort(sortBy, sortOrder string, allowed []string) Sort {
	column := ""
	for _, a := range allowed {
		if sortBy == a {
			column = sortBy
			break
		}
	}
	if column == "" {
		return Sort{Column: "created_at", Order: "DESC"}
	}

	switch strings.ToLower(sortOrder) {
	case "asc":
		return Sort{Column: column, Order: "ASC"}
	case "desc":
		return Sort{Column: column, Order: "DESC"}
	default:
		return Sort{Column: "created_at", Order: "DESC"}
	}
}

// Clause renders "ORDER BY column ORDER". Column comes from the
// allow-list, never from user input, so interpolation is safe.
func (s Sort) Clause() string {
	return "ORDER BY " + s.Column + " " + s.Order
}
