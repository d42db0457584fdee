package services

import (
	"time"

	"github.com/rentdesk/rentdesk/internal/adapters/clock"
)

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedClock(s string) clock.Fixed {
	return clock.Fixed(at(s))
}
