package lunar

import (
	"golang.org/x/text/language"
)

// PhaseName is one of the eight labelled bands of the synodic month.
type PhaseName int

// The eight phase bands in cycle order.
const (
	NewMoon PhaseName = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

// band is the half-open interval [lower, next band's lower) owned by a name.
type band struct {
	lower float64
	name  PhaseName
}

// bands partitions [0, 1). Quarter and full/new windows are narrow and centred
// on their nominal fractions; crescents and gibbous phases fill the rest.
// New moon wraps: it owns [0, 0.03) and (0.97, 1).
var bands = [...]band{
	{0.03, WaxingCrescent},
	{0.22, FirstQuarter},
	{0.28, WaxingGibbous},
	{0.47, FullMoon},
	{0.53, WaningGibbous},
	{0.72, LastQuarter},
	{0.78, WaningCrescent},
}

const newMoonWrap = 0.97

// NameFor returns the band label for a phase in [0, 1).
func NameFor(phase float64) PhaseName {
	if phase < bands[0].lower || phase > newMoonWrap {
		return NewMoon
	}
	name := NewMoon
	for _, b := range bands {
		if phase < b.lower {
			break
		}
		name = b.name
	}
	return name
}

var englishNames = [...]string{
	NewMoon:        "New Moon",
	WaxingCrescent: "Waxing Crescent",
	FirstQuarter:   "First Quarter",
	WaxingGibbous:  "Waxing Gibbous",
	FullMoon:       "Full Moon",
	WaningGibbous:  "Waning Gibbous",
	LastQuarter:    "Last Quarter",
	WaningCrescent: "Waning Crescent",
}

var chineseNames = [...]string{
	NewMoon:        "新月",
	WaxingCrescent: "蛾眉月",
	FirstQuarter:   "上弦月",
	WaxingGibbous:  "盈凸月",
	FullMoon:       "满月",
	WaningGibbous:  "亏凸月",
	LastQuarter:    "下弦月",
	WaningCrescent: "残月",
}

// String returns the English label.
func (n PhaseName) String() string {
	if n < NewMoon || n > WaningCrescent {
		return "Unknown"
	}
	return englishNames[n]
}

// Localized returns the label for tag. Chinese tags get the bilingual form
// "满月 (Full Moon)"; everything else gets English.
func (n PhaseName) Localized(tag language.Tag) string {
	if n < NewMoon || n > WaningCrescent {
		return n.String()
	}
	if base, _ := tag.Base(); base.String() == "zh" {
		return chineseNames[n] + " (" + englishNames[n] + ")"
	}
	return englishNames[n]
}

// SupportedLanguages lists the label languages, preferred first.
var SupportedLanguages = []language.Tag{language.English, language.Chinese}

var languageMatcher = language.NewMatcher(SupportedLanguages)

// MatchLanguage resolves a user-supplied language preference ("zh-CN",
// "en-GB", an Accept-Language style list) to a supported tag. Unknown or
// malformed input falls back to English.
func MatchLanguage(pref string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := languageMatcher.Match(tags...)
	return SupportedLanguages[idx]
}
