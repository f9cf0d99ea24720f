// Package age computes the bucketed age label encoded into renamed files.
package age

import (
	"fmt"
	"time"
)

// DayMonthThreshold is the whole-day count below which ages render as days.
const DayMonthThreshold = 28

// Label returns the zero-padded age of a subject born on birth at the
// time photo was taken:
//
//	DDdays    under DayMonthThreshold whole days (floor of 1 day)
//	MMmonths  under 12 calendar months
//	YYyears   12 calendar months and up
//
// A photo dated before birth yields "01days": bad EXIF data must never
// produce a negative age. Both arguments are treated as calendar dates;
// time of day and location are ignored.
func Label(birth, photo time.Time) string {
	b := dateOnly(birth)
	p := dateOnly(photo)
	if p.Before(b) {
		return "01days"
	}

	days := int(p.Sub(b).Hours() / 24)
	if days < DayMonthThreshold {
		if days < 1 {
			days = 1
		}
		return fmt.Sprintf("%02ddays", days)
	}

	months := (p.Year()-b.Year())*12 + int(p.Month()) - int(b.Month())
	if p.Day() < b.Day() {
		months--
	}
	if months < 12 {
		return fmt.Sprintf("%02dmonths", months)
	}
	return fmt.Sprintf("%02dyears", months/12)
}

// dateOnly normalizes to UTC midnight so day subtraction is exact whole
// days regardless of DST transitions in the source location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
