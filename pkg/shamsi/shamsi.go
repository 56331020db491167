// Package shamsi converts between Gregorian time values and Persian
// (Shamsi) calendar date strings of the form YYYY/MM/DD.
package shamsi

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Separator between date components.
const Separator = "/"

// Date is a Persian calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String formats the date as zero-padded YYYY/MM/DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// FromTime converts a Gregorian time (in its own location) to a Persian date.
func FromTime(t time.Time) Date {
	y, m, d := gregorianToJalali(t.Year(), int(t.Month()), t.Day())
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the Gregorian day equal to d.
func (d Date) Time() time.Time {
	y, m, day := jalaliToGregorian(d.Year, d.Month, d.Day)
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

// Today returns the current Persian date in loc. A nil loc means time.Local.
func Today(now time.Time, loc *time.Location) string {
	if loc != nil {
		now = now.In(loc)
	}
	return FromTime(now).String()
}

// Parse reads a YYYY/MM/DD string. Components need not be zero padded.
func Parse(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), Separator)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid shamsi date %q", s)
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("invalid shamsi date %q: %w", s, err)
		}
		vals[i] = v
	}
	d := Date{Year: vals[0], Month: vals[1], Day: vals[2]}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 || (d.Month > 6 && d.Day > 30) {
		return Date{}, fmt.Errorf("shamsi date %q out of range", s)
	}
	return d, nil
}

// Compact strips separators: "1403/05/10" becomes "14030510".
func Compact(s string) string {
	return strings.ReplaceAll(s, Separator, "")
}

// Month returns the YYYY/MM prefix of a date string, or "" when too short.
func Month(s string) string {
	if len(s) < 7 {
		return ""
	}
	return s[:7]
}

func gregorianToJalali(gy, gm, gd int) (int, int, int) {
	cumulative := [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	gy2 := gy
	if gm > 2 {
		gy2 = gy + 1
	}
	days := 355666 + 365*gy + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400 + gd + cumulative[gm-1]
	jy := -1595 + 33*(days/12053)
	days %= 12053
	jy += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}
	if days < 186 {
		return jy, 1 + days/31, 1 + days%31
	}
	return jy, 7 + (days-186)/30, 1 + (days-186)%30
}

func jalaliToGregorian(jy, jm, jd int) (int, int, int) {
	jy += 1595
	days := -355668 + 365*jy + (jy/33)*8 + ((jy%33)+3)/4 + jd
	if jm < 7 {
		days += (jm - 1) * 31
	} else {
		days += (jm-7)*30 + 186
	}
	gy := 400 * (days / 146097)
	days %= 146097
	if days > 36524 {
		days--
		gy += 100 * (days / 36524)
		days %= 36524
		if days >= 365 {
			days++
		}
	}
	gy += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}
	gd := days + 1
	monthDays := [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if (gy%4 == 0 && gy%100 != 0) || gy%400 == 0 {
		monthDays[2] = 29
	}
	gm := 1
	for gm < 13 && gd > monthDays[gm] {
		gd -= monthDays[gm]
		gm++
	}
	return gy, gm, gd
}
