package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange_BothBounds(t *testing.T) {
	from, to := ParseDateRange("2026-01-01", "2026-01-31")

	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *from)

	// The end bound covers the whole final day.
	assert.Equal(t, 2026, to.Year())
	assert.Equal(t, time.January, to.Month())
	assert.Equal(t, 31, to.Day())
	assert.Equal(t, 23, to.Hour())
	assert.True(t, to.After(time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)))
}

func TestParseDateRange_MissingStartIgnored(t *testing.T) {
	from, to := ParseDateRange("", "2026-01-31")

	assert.Nil(t, from)
	assert.Nil(t, to)
}

func TestParseDateRange_MissingEndIgnored(t *testing.T) {
	from, to := ParseDateRange("2026-01-01", "")

	assert.Nil(t, from)
	assert.Nil(t, to)
}

func TestParseDateRange_UnparseableIgnored(t *testing.T) {
	from, to := ParseDateRange("01/01/2026", "2026-01-31")

	assert.Nil(t, from)
	assert.Nil(t, to)
}
