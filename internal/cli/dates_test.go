package cli

import (
	"testing"
	"time"

	apperrors "github.com/agbru/lunaris/internal/errors"
)

func TestParseDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	now := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"", now},
		{"now", now},
		{"Today", now},
		{"2024-03-10", time.Date(2024, time.March, 10, 0, 0, 0, 0, tokyo)},
		{"2024-03-10 15:04", time.Date(2024, time.March, 10, 15, 4, 0, 0, tokyo)},
		{"2024-03-10T15:04", time.Date(2024, time.March, 10, 15, 4, 0, 0, tokyo)},
		{"2024-03-10T06:04:00Z", time.Date(2024, time.March, 10, 6, 4, 0, 0, time.UTC)},
		{"  2000-01-06  ", time.Date(2000, time.January, 6, 0, 0, 0, 0, tokyo)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in, tokyo, now)
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got.Location() != tokyo {
				t.Errorf("ParseDate(%q) location = %v, want JST", tt.in, got.Location())
			}
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"tomorrow", "2024-13-01", "10/03/2024", "2024-03-10 25:00"} {
		_, err := ParseDate(in, time.UTC, time.Now())
		if err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", in)
			continue
		}
		if code := apperrors.ExitCodeFor(err); code != apperrors.ExitErrorConfig {
			t.Errorf("ParseDate(%q) exit code = %d, want %d", in, code, apperrors.ExitErrorConfig)
		}
	}
}

func TestParseDate_NilLocation(t *testing.T) {
	got, err := ParseDate("2024-03-10", nil, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if got.Location() != time.Local {
		t.Errorf("location = %v, want Local", got.Location())
	}
}
