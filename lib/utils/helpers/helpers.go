package helpers

import (
	"context"
	"math"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// RoundHours - минуты в часы с округлением до двух знаков
func RoundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}

// DateOnly - обнуляет время, сохраняя дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
