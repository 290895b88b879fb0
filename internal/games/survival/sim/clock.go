package sim

import "math"

// Clock tracks time of day and the day counter. Day starts at 1.
type Clock struct {
	TDay  float64 // Seconds into the current day
	Day   int
	Cycle float64 // Length of a full day in seconds
}

// NewClock starts day 1 at dawn.
func NewClock(cycle float64) Clock {
	return Clock{Day: 1, Cycle: cycle}
}

// Advance moves time forward and reports whether a new day began.
func (c *Clock) Advance(dt float64) bool {
	c.TDay += dt
	if c.TDay >= c.Cycle {
		c.TDay -= c.Cycle
		c.Day++
		return true
	}
	return false
}

// Phase returns the position in the day cycle in [0,1).
func (c Clock) Phase() float64 {
	if c.Cycle <= 0 {
		return 0
	}
	return c.TDay / c.Cycle
}

// IsNight reports whether the clock is in the back half of the cycle.
func (c Clock) IsNight() bool {
	return c.Phase() >= 0.5
}

// Darkness returns the overlay intensity in [0,1]. It rises through dusk
// (35%-50% of the cycle), peaks at 75% and eases off towards dawn.
func (c Clock) Darkness() float64 {
	p := c.Phase()
	var dark float64
	switch {
	case p >= 0.5:
		mid := math.Abs(p-0.75) / 0.25
		dark = 170 - 70*mid
	case p > 0.35:
		dark = 70 * (p - 0.35) / 0.15
	}
	return min(max(dark, 0), 190) / 255
}

// Won reports whether the day counter is past winDays.
// A non-positive winDays never wins.
func (c Clock) Won(winDays int) bool {
	return winDays > 0 && c.Day > winDays
}

// DaysSurvived returns the number of completed days.
func (c Clock) DaysSurvived() int {
	return c.Day - 1
}

