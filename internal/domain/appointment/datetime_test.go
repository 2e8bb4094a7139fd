package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateTime(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{"iso utc", "2025-12-11T01:11:00Z", time.Date(2025, 12, 11, 1, 11, 0, 0, time.UTC), true},
		{"iso millis", "2025-12-11T01:11:00.500Z", time.Date(2025, 12, 11, 1, 11, 0, 500_000_000, time.UTC), true},
		{"iso offset", "2025-12-11T01:11:00-03:00", time.Date(2025, 12, 11, 4, 11, 0, 0, time.UTC), true},
		{"iso no zone is utc", "2025-12-11T01:11:00", time.Date(2025, 12, 11, 1, 11, 0, 0, time.UTC), true},
		{"datetime-local", "2025-12-11T01:11", time.Date(2025, 12, 11, 4, 11, 0, 0, time.UTC), true},
		{"space separated", "2025-12-11 14:30", time.Date(2025, 12, 11, 17, 30, 0, 0, time.UTC), true},
		{"space with seconds", "2025-12-11 14:30:15", time.Date(2025, 12, 11, 17, 30, 15, 0, time.UTC), true},
		{"date only", "2025-12-11", time.Date(2025, 12, 11, 3, 0, 0, 0, time.UTC), true},
		{"brazilian", "11/12/2025 09:00", time.Date(2025, 12, 11, 12, 0, 0, 0, time.UTC), true},
		{"trims spaces", "  2025-12-11T01:11:00Z ", time.Date(2025, 12, 11, 1, 11, 0, 0, time.UTC), true},
		{"garbage", "amanhã às 10", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDateTime(tt.raw, loc)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
				assert.Equal(t, time.UTC, got.Location())
			}
		})
	}
}

func TestNormalizeDateTime_NilLocationIsUTC(t *testing.T) {
	got, ok := NormalizeDateTime("2025-12-11T10:00", nil)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 12, 11, 10, 0, 0, 0, time.UTC), got)
}
