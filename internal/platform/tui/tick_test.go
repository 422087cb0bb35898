package tui

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		expected time.Duration
	}{
		{"default rate", 8, 125 * time.Millisecond},
		{"one per second", 1, time.Second},
		{"zero treated as one", 0, time.Second},
		{"negative treated as one", -4, time.Second},
		{"at cap", maxTickRate, time.Second / maxTickRate},
		{"above cap", 1000, time.Second / maxTickRate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tickInterval(tc.rate); got != tc.expected {
				t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.expected)
			}
		})
	}
}
