package lunar

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNameFor_BandEdges(t *testing.T) {
	t.Parallel()
	tests := []struct {
		phase float64
		want  PhaseName
	}{
		{0, NewMoon},
		{0.0299, NewMoon},
		{0.03, WaxingCrescent},
		{0.2199, WaxingCrescent},
		{0.22, FirstQuarter},
		{0.25, FirstQuarter},
		{0.2799, FirstQuarter},
		{0.28, WaxingGibbous},
		{0.4699, WaxingGibbous},
		{0.47, FullMoon},
		{0.5, FullMoon},
		{0.5299, FullMoon},
		{0.53, WaningGibbous},
		{0.7199, WaningGibbous},
		{0.72, LastQuarter},
		{0.75, LastQuarter},
		{0.78, WaningCrescent},
		{0.97, WaningCrescent},
		{0.9701, NewMoon},
		{0.9999, NewMoon},
	}

	for _, tt := range tests {
		if got := NameFor(tt.phase); got != tt.want {
			t.Errorf("NameFor(%v) = %s, want %s", tt.phase, got, tt.want)
		}
	}
}

func TestNameFor_EightBandsInOrder(t *testing.T) {
	t.Parallel()
	seen := []PhaseName{}
	for i := range 1000 {
		name := NameFor(float64(i) / 1000)
		if len(seen) == 0 || seen[len(seen)-1] != name {
			seen = append(seen, name)
		}
	}
	want := []PhaseName{
		NewMoon, WaxingCrescent, FirstQuarter, WaxingGibbous,
		FullMoon, WaningGibbous, LastQuarter, WaningCrescent, NewMoon,
	}
	if len(seen) != len(want) {
		t.Fatalf("band sequence = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("band %d = %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestPhaseName_String(t *testing.T) {
	t.Parallel()
	if got := FullMoon.String(); got != "Full Moon" {
		t.Errorf("FullMoon.String() = %q", got)
	}
	if got := PhaseName(42).String(); got != "Unknown" {
		t.Errorf("PhaseName(42).String() = %q, want Unknown", got)
	}
}

func TestPhaseName_Localized(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name PhaseName
		tag  language.Tag
		want string
	}{
		{FullMoon, language.English, "Full Moon"},
		{FullMoon, language.Chinese, "满月 (Full Moon)"},
		{WaxingCrescent, language.SimplifiedChinese, "蛾眉月 (Waxing Crescent)"},
		{LastQuarter, language.French, "Last Quarter"},
	}
	for _, tt := range tests {
		if got := tt.name.Localized(tt.tag); got != tt.want {
			t.Errorf("%s.Localized(%s) = %q, want %q", tt.name, tt.tag, got, tt.want)
		}
	}
}

func TestMatchLanguage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pref string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"en-GB", language.English},
		{"zh", language.Chinese},
		{"zh-CN", language.Chinese},
		{"fr", language.English},
		{"not a tag!!", language.English},
	}
	for _, tt := range tests {
		if got := MatchLanguage(tt.pref); got != tt.want {
			t.Errorf("MatchLanguage(%q) = %s, want %s", tt.pref, got, tt.want)
		}
	}
}
