package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(v int64) *int64 { return &v }

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name string
		size *int64
		want string
	}{
		{"nil is dash", nil, "-"},
		{"zero is dash", ptr(0), "-"},
		{"bytes", ptr(512), "512.0 B"},
		{"kilobytes", ptr(245760), "240.0 KB"},
		{"megabytes", ptr(2097152), "2.0 MB"},
		{"gigabytes", ptr(3435973837), "3.2 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.size))
		})
	}
}

func TestFormatModified(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same day", now.Add(-2 * time.Hour), "Today"},
		{"one day", now.Add(-36 * time.Hour), "Yesterday"},
		{"within week", now.AddDate(0, 0, -3), "3 days ago"},
		{"older", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "Jan 10, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatModified(tt.t, now))
		})
	}
}

func TestFileKind_Icon(t *testing.T) {
	assert.Equal(t, "📁", KindFolder.Icon())
	assert.Equal(t, "📎", KindGeneric.Icon())
	assert.NotEmpty(t, KindVideo.Icon())
}
