package model

// Config carries the solver tunables. It is passed explicitly into the
// domain builder and scheduler at construction time; there is no shared
// mutable global.
type Config struct {
	// AllowUnqualifiedFallback substitutes the full instructor set when a
	// course has no qualified instructor. Fallback candidates still record
	// Qualified=false.
	AllowUnqualifiedFallback bool
	// ShortTutorialMaxMinutes is the duration ceiling for slots accepting a
	// short tutorial without a "short" slot-type tag.
	ShortTutorialMaxMinutes int
	// LongLectureMinMinutes is the duration floor for slots accepting a
	// long tutorial without a "long" slot-type tag.
	LongLectureMinMinutes int
	// CapacityRelax in [0,1) lowers the required room capacity to
	// round(students * (1 - CapacityRelax)). Zero means strict.
	CapacityRelax float64
}

// DefaultConfig returns the strict defaults.
func DefaultConfig() Config {
	return Config{
		AllowUnqualifiedFallback: true,
		ShortTutorialMaxMinutes:  79,
		LongLectureMinMinutes:    80,
		CapacityRelax:            0,
	}
}
