package core

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, time.October, 7, 9, 5, 3, 0, time.Local)
	assert.Equal(t, "07/10/2025 09:05:03", FormatTimestamp(ts))
}

func TestClock(t *testing.T) {
	fixed := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, fixed, FixedClock(fixed).Now())

	var unset Clock
	pattern := regexp.MustCompile(`^\d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2}$`)
	assert.Regexp(t, pattern, FormatTimestamp(unset.Now()))
}
