// Package query builds the filtered, sorted, paginated SQL fragments shared
// by the catalog list endpoints. Predicates are conjunctive and composable:
// each call appends one condition with positional $n placeholders, so the
// final WHERE clause is independent of call order.
package query

import (
	"fmt"
	"strings"
)

// Builder accumulates WHERE conditions and their arguments.
// The zero value is not usable; call NewBuilder.
type Builder struct {
	conditions []string
	args       []interface{}
}

func NewBuilder() *Builder {
	return &Builder{
		conditions: []string{},
		args:       []interface{}{},
	}
}

// Raw appends a constant condition with no arguments.
func (b *Builder) Raw(condition string) *Builder {
	b.conditions = append(b.conditions, condition)
	return b
}

// Equals appends an exact-match condition.
func (b *Builder) Equals(column string, value interface{}) *Builder {
	b.args = append(b.args, value)
	b.conditions = append(b.conditions, fmt.Sprintf("%s = $%d", column, len(b.args)))
	return b
}

// Contains appends a case-insensitive substring match. The value is
// wrapped in %% so it matches anywhere in the column.
func (b *Builder) Contains(column, value string) *Builder {
	b.args = append(b.args, "%"+value+"%")
	b.conditions = append(b.conditions, fmt.Sprintf("%s ILIKE $%d", column, len(b.args)))
	return b
}

// Between appends an inclusive range condition.
func (b *Builder) Between(column string, from, to interface{}) *Builder {
	b.args = append(b.args, from, to)
	b.conditions = append(b.conditions,
		fmt.Sprintf("%s BETWEEN $%d AND $%d", column, len(b.args)-1, len(b.args)))
	return b
}

// ContainsAny appends an OR group matching the term against every column.
// This is the free-text search mode; a single argument is bound once and
// referenced by each branch.
func (b *Builder) ContainsAny(columns []string, term string) *Builder {
	if len(columns) == 0 {
		return b
	}

	b.args = append(b.args, "%"+term+"%")
	n := len(b.args)

	branches := make([]string, len(columns))
	for i, col := range columns {
		branches[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
	}
	b.conditions = append(b.conditions, "("+strings.Join(branches, " OR ")+")")
	return b
}

// WhereClause returns the assembled clause including the WHERE keyword,
// or an empty string when no condition was added.
func (b *Builder) WhereClause() string {
	if len(b.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conditions, " AND ")
}

// Args returns the bound arguments in placeholder order.
func (b *Builder) Args() []interface{} {
	return b.args
}

// NextPlaceholder returns the positional index the next bound argument
// would get. Used to append LIMIT/OFFSET after the WHERE arguments.
func (b *Builder) NextPlaceholder() int {
	return len(b.args) + 1
}
