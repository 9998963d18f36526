package reltime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/reltime"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"zero", 0, "Just now"},
		{"seconds", 59 * time.Second, "Just now"},
		{"one minute", time.Minute, "1 minute ago"},
		{"minutes floor", 119 * time.Second, "1 minute ago"},
		{"several minutes", 45 * time.Minute, "45 minutes ago"},
		{"one hour", time.Hour, "1 hour ago"},
		{"hours floor", 23*time.Hour + 59*time.Minute, "23 hours ago"},
		{"one day", 24 * time.Hour, "1 day ago"},
		{"many days", 400 * 24 * time.Hour, "400 days ago"},
		{"future", -5 * time.Minute, "Just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reltime.Format(now, now.Add(-tt.ago)))
		})
	}
}

func TestSince(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Just now", reltime.Since(time.Now()))
	assert.Equal(t, "2 hours ago", reltime.Since(time.Now().Add(-2*time.Hour-time.Minute)))
}
