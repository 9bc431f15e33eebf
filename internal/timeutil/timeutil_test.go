package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/velvetnails/salon-scheduler/internal/timeutil"
)

func TestNaive(t *testing.T) {
	utc := time.Date(2026, 9, 14, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"already utc", utc},
		{"negative offset", time.Date(2026, 9, 14, 10, 0, 0, 0, time.FixedZone("BRT", -3*60*60))},
		{"positive offset", time.Date(2026, 9, 14, 15, 0, 0, 0, time.FixedZone("CEST", 2*60*60))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timeutil.Naive(tt.in)
			assert.True(t, got.Equal(utc))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNow(t *testing.T) {
	assert.Equal(t, time.UTC, timeutil.Now().Location())
}
