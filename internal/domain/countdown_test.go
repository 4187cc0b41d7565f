package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemainingUntil(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   Countdown
	}{
		{"past", now.Add(-time.Minute), Countdown{Expired: true}},
		{"now", now, Countdown{Expired: true}},
		{"sub-second", now.Add(500 * time.Millisecond), Countdown{}},
		{"floors seconds", now.Add(2500 * time.Millisecond), Countdown{Seconds: 2}},
		{
			"full chain",
			now.Add(3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second + 999*time.Millisecond),
			Countdown{Days: 3, Hours: 4, Minutes: 5, Seconds: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemainingUntil(tt.target, now))
		})
	}
}
