package domain

import "time"

const (
	msPerDay    = 86_400_000
	msPerHour   = 3_600_000
	msPerMinute = 60_000
	msPerSecond = 1_000
)

type Countdown struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Expired bool  `json:"expired"`
}

// RemainingUntil splits the time left until target into days, hours, minutes and
// seconds. A target at or before now yields an expired countdown with zero fields.
func RemainingUntil(target, now time.Time) Countdown {
	ms := target.Sub(now).Milliseconds()
	if ms <= 0 {
		return Countdown{Expired: true}
	}

	return Countdown{
		Days:    ms / msPerDay,
		Hours:   (ms % msPerDay) / msPerHour,
		Minutes: (ms % msPerHour) / msPerMinute,
		Seconds: (ms % msPerMinute) / msPerSecond,
	}
}
