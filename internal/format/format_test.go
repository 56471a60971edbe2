package format

import (
	"math"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Duration
		want string
	}{
		{250 * time.Microsecond, "250µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90*time.Second + 1234567*time.Nanosecond, "1m30.001s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.in); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAge(t *testing.T) {
	t.Parallel()
	tests := []struct {
		days float64
		want string
	}{
		{0, "0d 00h"},
		{7.38, "7d 09h"},
		{14.765, "14d 18h"},
		{29.52, "29d 12h"},
		{-1, "0d 00h"},
		{math.NaN(), "0d 00h"},
	}
	for _, tt := range tests {
		if got := FormatAge(tt.days); got != tt.want {
			t.Errorf("FormatAge(%v) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	t.Parallel()
	if got := FormatPercent(0.5); got != "50.0%" {
		t.Errorf("FormatPercent(0.5) = %q", got)
	}
	if got := FormatPercent(0.9876); got != "98.8%" {
		t.Errorf("FormatPercent(0.9876) = %q", got)
	}
	if got := FormatSignedDays(3); got != "+3d" {
		t.Errorf("FormatSignedDays(3) = %q", got)
	}
	if got := FormatSignedDays(-2); got != "-2d" {
		t.Errorf("FormatSignedDays(-2) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()
	ref := time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)
	tests := []struct {
		name string
		tag  language.Tag
		date string
		dt   string
		mon  string
	}{
		{"english", language.English, "Thursday, January 6, 2000", "Thursday, January 6, 2000 18:14 UTC", "January 2000"},
		{"chinese", language.Chinese, "2000年1月6日 星期四", "2000年1月6日 星期四 18:14 UTC", "2000年1月"},
		{"traditional chinese", language.TraditionalChinese, "2000年1月6日 星期四", "2000年1月6日 星期四 18:14 UTC", "2000年1月"},
		{"french falls back", language.French, "Thursday, January 6, 2000", "Thursday, January 6, 2000 18:14 UTC", "January 2000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatDate(ref, tt.tag); got != tt.date {
				t.Errorf("FormatDate = %q, want %q", got, tt.date)
			}
			if got := FormatDateTime(ref, tt.tag); got != tt.dt {
				t.Errorf("FormatDateTime = %q, want %q", got, tt.dt)
			}
			if got := FormatMonth(ref, tt.tag); got != tt.mon {
				t.Errorf("FormatMonth = %q, want %q", got, tt.mon)
			}
		})
	}
}
