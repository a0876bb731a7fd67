package labels

import (
	"testing"
	"time"
)

func TestTimestamp(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2025, 1, 5, 6, 4, 5, 0, time.UTC), "2025. 1. 5. 오후 3:04:05"},
		{time.Date(2025, 1, 5, 15, 0, 0, 0, time.UTC), "2025. 1. 6. 오전 12:00:00"},
		{time.Date(2024, 12, 31, 3, 30, 9, 0, time.UTC), "2024. 12. 31. 오후 12:30:09"},
		{time.Date(2024, 7, 1, 9, 5, 0, 0, KST), "2024. 7. 1. 오전 9:05:00"},
	}
	for _, tt := range tests {
		if got := Timestamp(tt.in); got != tt.want {
			t.Errorf("Timestamp(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
