// Package models contains the API request/response models and their
// conversions from Ent entities. Timestamps cross the wire as unix seconds.
package models

import (
	"math"
	"time"
)

// UnixSeconds converts a timestamp to fractional unix seconds.
func UnixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// UnixSecondsPtr converts an optional timestamp to fractional unix seconds.
func UnixSecondsPtr(t *time.Time) *float64 {
	if t == nil {
		return nil
	}
	v := UnixSeconds(*t)
	return &v
}

// FromUnixSeconds converts fractional unix seconds to a timestamp.
func FromUnixSeconds(s float64) time.Time {
	sec, frac := math.Modf(s)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

// FromUnixSecondsPtr converts optional fractional unix seconds to a
// timestamp.
func FromUnixSecondsPtr(s *float64) *time.Time {
	if s == nil {
		return nil
	}
	v := FromUnixSeconds(*s)
	return &v
}
