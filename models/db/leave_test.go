package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLeave(t *testing.T) {
	rec := Leave{
		FromDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		ToDate:   time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
	}

	t.Run(`Days includes both bounds check`, func(t *testing.T) {
		require.Equal(t, 5, rec.Days())

		oneDay := Leave{FromDate: rec.FromDate, ToDate: rec.FromDate}
		require.Equal(t, 1, oneDay.Days())
	})

	t.Run(`Covers check`, func(t *testing.T) {
		require.True(t, rec.Covers(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)))
		require.True(t, rec.Covers(time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC)))
		require.True(t, rec.Covers(time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)))
		require.False(t, rec.Covers(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)))
		require.False(t, rec.Covers(time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC)))
	})
}
