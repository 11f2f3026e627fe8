package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_Empty(t *testing.T) {
	b := NewBuilder()

	assert.Equal(t, "", b.WhereClause())
	assert.Empty(t, b.Args())
	assert.Equal(t, 1, b.NextPlaceholder())
}

func TestBuilder_ConditionsJoinedWithAND(t *testing.T) {
	b := NewBuilder().
		Contains("title", "go").
		Equals("category_id", "abc")

	assert.Equal(t, "WHERE title ILIKE $1 AND category_id = $2", b.WhereClause())
	assert.Equal(t, []interface{}{"%go%", "abc"}, b.Args())
	assert.Equal(t, 3, b.NextPlaceholder())
}

func TestBuilder_ContainsWrapsTerm(t *testing.T) {
	b := NewBuilder().Contains("author", "le guin")

	assert.Equal(t, []interface{}{"%le guin%"}, b.Args())
}

func TestBuilder_Between(t *testing.T) {
	b := NewBuilder().Between("created_at", "2026-01-01", "2026-01-31")

	assert.Equal(t, "WHERE created_at BETWEEN $1 AND $2", b.WhereClause())
	assert.Len(t, b.Args(), 2)
}

func TestBuilder_ContainsAnyBindsTermOnce(t *testing.T) {
	b := NewBuilder().ContainsAny([]string{"title", "author"}, "dune")

	assert.Equal(t, "WHERE (title ILIKE $1 OR author ILIKE $1)", b.WhereClause())
	assert.Equal(t, []interface{}{"%dune%"}, b.Args())
}

func TestBuilder_ContainsAnyNoColumns(t *testing.T) {
	b := NewBuilder().ContainsAny(nil, "dune")

	assert.Equal(t, "", b.WhereClause())
	assert.Empty(t, b.Args())
}

func TestBuilder_MixedModes(t *testing.T) {
	b := NewBuilder().
		ContainsAny([]string{"b.title", "b.author"}, "sand").
		Equals("b.category_id", "cat-1")

	assert.Equal(t, "WHERE (b.title ILIKE $1 OR b.author ILIKE $1) AND b.category_id = $2", b.WhereClause())
}

func TestBuilder_Raw(t *testing.T) {
	b := NewBuilder().Raw("deleted_at IS NULL").Equals("is_active", true)

	assert.Equal(t, "WHERE deleted_at IS NULL AND is_active = $1", b.WhereClause())
}
