package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`RoundHours check`, func(t *testing.T) {
		require.Equal(t, 8.0, RoundHours(480))
		require.Equal(t, 8.5, RoundHours(510))
		// 505 минут = 8.41(6) часа
		require.Equal(t, 8.42, RoundHours(505))
		require.Equal(t, 0.0, RoundHours(0))
		require.Equal(t, 0.02, RoundHours(1))
	})

	t.Run(`SameDate check`, func(t *testing.T) {
		a := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		b := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
		require.True(t, SameDate(a, b))
		require.False(t, SameDate(a, b.AddDate(0, 0, 1)))
	})

	t.Run(`DateOnly check`, func(t *testing.T) {
		got := DateOnly(time.Date(2026, 3, 10, 15, 30, 45, 12, time.UTC))
		require.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)
	})
}
