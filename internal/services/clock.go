package services

import (
	"time"

	"fyyur/internal/domain"
)

// naiveNow is the default clock. Show times are stored without a zone, so
// "now" is compared as a wall clock.
func naiveNow() time.Time {
	return domain.Naive(time.Now())
}
