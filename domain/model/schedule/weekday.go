package schedule

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/radio47ke/companion/internal/errutil"
)

type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func (d Weekday) String() string {
	return weekdayNames[d]
}

// Prefix returns the 3-letter lowercase form used in per-day show ids ("mon", "tue", ...).
func (d Weekday) Prefix() string {
	return strings.ToLower(weekdayNames[d][:3])
}

func WeekdayFromTime(t time.Time) Weekday {
	// time.Weekday starts the week on Sunday
	return Weekday((int(t.Weekday()) + 6) % 7)
}

func WeekdayFromPrefix(prefix string) (Weekday, error) {
	for d := Monday; d <= Sunday; d++ {
		if d.Prefix() == strings.ToLower(prefix) {
			return d, nil
		}
	}
	return 0, errors.Wrapf(errutil.ErrMalformedDays, "unknown day prefix %q", prefix)
}

var (
	Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
	AllDays  = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
)

// ParseDays interprets a free-text days value from a persisted liked show.
// Recognized forms: "weekdays", "all days", and comma-separated day names.
// Unrecognized text yields errutil.ErrMalformedDays so callers can skip the
// record instead of crashing on it.
func ParseDays(s string) ([]Weekday, error) {
	lower := strings.ToLower(s)

	if strings.Contains(lower, "weekdays") {
		return Weekdays, nil
	}
	if strings.Contains(lower, "all days") {
		return AllDays, nil
	}

	var days []Weekday
	for d := Monday; d <= Sunday; d++ {
		if strings.Contains(lower, strings.ToLower(d.String())) {
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return nil, errors.Wrapf(errutil.ErrMalformedDays, "no recognizable day in %q", s)
	}
	return days, nil
}

// FormatDays renders a day set back into the display form ParseDays accepts.
func FormatDays(days []Weekday) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}
