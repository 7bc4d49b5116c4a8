package formula

import (
	"time"

	"github.com/doeshing/calchub/internal/domain"
)

const dateLayout = "2006-01-02"

// Date reads a date input. Malformed or missing values fall back to the
// provided default rather than failing.
func Date(in domain.Inputs, key string, fallback time.Time) time.Time {
	raw := Text(in, key)
	if raw == "" {
		return fallback
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().Truncate(24 * time.Hour)
	}
	return fallback
}

// Age computes the calendar difference between a birth date and the
// evaluation date (input "asOf", defaulting to today) as whole years,
// months, and days, borrowing days from the previous month's length and
// months as twelve when negative. Proleptic Gregorian arithmetic via the
// time package, no leap-year shortcuts.
func Age(in domain.Inputs) domain.Results {
	today := Date(in, "asOf", time.Now().UTC().Truncate(24*time.Hour))
	birth := Date(in, "birthDate", today)
	if birth.After(today) {
		birth = today
	}

	years := today.Year() - birth.Year()
	months := int(today.Month()) - int(birth.Month())
	days := today.Day() - birth.Day()

	if days < 0 {
		months--
		days += daysInMonth(today.Year(), today.Month()-1)
	}
	if months < 0 {
		years--
		months += 12
	}

	totalDays := int(today.Sub(birth).Hours() / 24)

	return domain.Results{
		"years":       years,
		"months":      months,
		"days":        days,
		"totalDays":   totalDays,
		"totalWeeks":  totalDays / 7,
		"totalMonths": years*12 + months,
	}
}

// daysInMonth returns the day count of the given month; time.Date
// normalizes out-of-range months (month 0 is December of the prior year).
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
