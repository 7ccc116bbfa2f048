package timeutil_test

import (
	"testing"
	"time"

	"go-attendance/internal/shared/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 15, 23, 59, 59, 999, time.Local)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), timeutil.StartOfDay(in))
}

func TestParseRange(t *testing.T) {
	t.Run("both ends", func(t *testing.T) {
		r, err := timeutil.ParseRange("2024-03-01", "2024-03-31")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), r.From)
		assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.Local), r.To)
	})

	t.Run("one end ignored", func(t *testing.T) {
		r, err := timeutil.ParseRange("2024-03-01", "")
		require.NoError(t, err)
		assert.True(t, r.IsZero())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := timeutil.ParseRange("yesterday", "2024-03-31")
		assert.ErrorIs(t, err, timeutil.ErrInvalidDate)
	})

	t.Run("reversed", func(t *testing.T) {
		_, err := timeutil.ParseRange("2024-03-31", "2024-03-01")
		assert.Error(t, err)
	})
}

func TestMonthRange(t *testing.T) {
	r := timeutil.MonthRange(time.Date(2024, 2, 10, 12, 0, 0, 0, time.Local))

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), r.From)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local), r.To)
}
