package utils

import (
	"strings"
	"time"
)

// Clock returns the current time. Components take one so tests can move time.
type Clock func() time.Time

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

// ClockOrDefault returns c, or GetCurrentTime when c is nil
func ClockOrDefault(c Clock) Clock {
	if c == nil {
		return GetCurrentTime
	}
	return c
}

// IsTruthy reports whether an environment style flag is switched on
func IsTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
