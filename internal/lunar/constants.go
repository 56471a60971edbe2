package lunar

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Cycle Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// SynodicMonth is the mean interval between successive new moons, in days.
	SynodicMonth = 29.53058867

	// SecondsPerDay converts elapsed seconds to days.
	SecondsPerDay = 86400.0
)

// ReferenceNewMoon is a known new moon (2000-01-06 12:24 UTC). Every phase is
// measured as an offset from this instant.
var ReferenceNewMoon = time.Date(2000, time.January, 6, 12, 24, 0, 0, time.UTC)

// Nominal phase fractions of the four principal phases.
const (
	NewMoonFraction      = 0.0
	FirstQuarterFraction = 0.25
	FullMoonFraction     = 0.5
	LastQuarterFraction  = 0.75
)
