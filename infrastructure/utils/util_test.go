package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", " yes ", "on"} {
		assert.True(t, IsTruthy(v), v)
	}
	for _, v := range []string{"", "0", "false", "off", "nope"} {
		assert.False(t, IsTruthy(v), v)
	}
}

func TestClockOrDefault(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, fixed, ClockOrDefault(func() time.Time { return fixed })())
	assert.WithinDuration(t, time.Now(), ClockOrDefault(nil)(), time.Second)
}
