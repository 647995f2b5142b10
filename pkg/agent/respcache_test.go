package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResponseCacheKey(t *testing.T) {
	assert.Equal(t,
		"resp:show me july sales:lohono",
		responseCacheKey("  Show  me JULY   sales ", "lohono"))

	assert.Equal(t,
		responseCacheKey("villas in goa", ""),
		responseCacheKey("Villas   in Goa", ""))

	assert.NotEqual(t,
		responseCacheKey("villas in goa", "isprava"),
		responseCacheKey("villas in goa", "lohono"))
}

func TestResponseTTL(t *testing.T) {
	// 2026-08-24 12:00 IST; current month starts 2026-08-01 IST.
	now := time.Date(2026, 8, 24, 6, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		message string
		want    time.Duration
	}{
		{"no date signals", "how many leads do we have", liveTTL},
		{"past iso date", "bookings on 2026-07-15 in goa", historicalTTL},
		{"current month iso date", "bookings on 2026-08-10", liveTTL},
		{"future iso date", "availability for 2026-12-25", liveTTL},
		{"past month-year", "revenue for July 2026", historicalTTL},
		{"older month-year", "compare Jan 2025 and Feb 2025", historicalTTL},
		{"current month-year", "revenue for August 2026", liveTTL},
		{"last month phrase", "what was last month's occupancy", historicalTTL},
		{"previous quarter phrase", "previous quarter payouts", historicalTTL},
		{"mixed past and current", "compare July 2026 with August 2026", liveTTL},
		{"today keyword", "how many leads today?", liveTTL},
		{"today with past month", "compare today with July 2026", liveTTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, responseTTL(tt.message, now))
		})
	}
}
