package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/radio47ke/companion/internal/errutil"
)

// DefaultHorizonDays is how far Upcoming looks ahead.
const DefaultHorizonDays = 2

// Current returns the show on air at now, or OffAir() when nothing is
// scheduled. Day membership is checked against the day a window starts on:
// the post-midnight tail of an overnight window stays on air into the next
// day even when that day is not in the show's day set.
func (t Table) Current(now time.Time) Resolved {
	day := WeekdayFromTime(now)
	dayBefore := Weekday((int(day) + 6) % 7)
	minute := now.Hour()*60 + now.Minute()

	for _, s := range t.shows {
		if !s.Window.Wraps() {
			if s.airsOn(day) && s.Window.Contains(minute) {
				return s.resolved(s.ID(), s.Window.String())
			}
			continue
		}
		if s.airsOn(day) && minute >= s.Window.Start {
			return s.resolved(s.ID(), s.Window.String())
		}
		if s.airsOn(dayBefore) && minute < s.Window.End {
			return s.resolved(s.ID(), s.Window.String())
		}
	}
	return OffAir()
}

// Upcoming returns up to limit shows that have not started yet, ordered by
// actual start, looking DefaultHorizonDays ahead.
func (t Table) Upcoming(now time.Time, limit int) []Resolved {
	return t.UpcomingHorizon(now, limit, DefaultHorizonDays)
}

// UpcomingHorizon enumerates every airing within [today, today+horizonDays).
// A show that already began today is not upcoming even if it is still on air;
// the same show airing again tomorrow is a distinct entry.
func (t Table) UpcomingHorizon(now time.Time, limit int, horizonDays int) []Resolved {
	day := WeekdayFromTime(now)
	minute := now.Hour()*60 + now.Minute()

	type entry struct {
		sortKey int
		show    Resolved
	}
	var entries []entry

	for offset := 0; offset < horizonDays; offset++ {
		futureDay := Weekday((int(day) + offset) % 7)
		for _, s := range t.shows {
			if !s.airsOn(futureDay) {
				continue
			}
			if offset == 0 && s.Window.Start <= minute {
				continue
			}

			label := s.Window.String()
			switch {
			case offset == 1:
				label = "Tomorrow " + label
			case offset > 1:
				label = futureDay.String() + " " + label
			}

			entries = append(entries, entry{
				sortKey: s.Window.Start + offset*minutesPerDay,
				show:    s.resolved(s.ID(), label),
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].sortKey < entries[j].sortKey })
	if len(entries) > limit {
		entries = entries[:limit]
	}

	shows := make([]Resolved, 0, len(entries))
	for _, e := range entries {
		shows = append(shows, e.show)
	}
	return shows
}

// ByID looks a show up by either id shape: the direct "<name>-<window>" form
// first, then the per-day "<prefix>-<name>" form produced by ByDay.
// Returns errutil.ErrShowNotFound when neither matches.
func (t Table) ByID(id string) (Resolved, error) {
	for _, s := range t.shows {
		if s.ID() == id {
			return s.resolved(s.ID(), s.Window.String()), nil
		}
	}

	if prefix, name, found := strings.Cut(id, "-"); found {
		day, err := WeekdayFromPrefix(prefix)
		if err == nil {
			for _, s := range t.shows {
				if s.Name == name && s.airsOn(day) {
					return s.resolved(id, s.Window.String()), nil
				}
			}
		}
	}

	return Resolved{}, errors.Wrapf(errutil.ErrShowNotFound, "no show matches id %q", id)
}

// ByDay groups the table into the seven weekday buckets used by the full
// schedule view, each sorted by start minute and carrying day-prefixed ids.
func (t Table) ByDay() map[Weekday][]Resolved {
	byDay := make(map[Weekday][]Resolved, 7)
	for _, day := range AllDays {
		var shows []Resolved
		for _, s := range t.shows {
			if s.airsOn(day) {
				shows = append(shows, s.resolved(day.Prefix()+"-"+s.Name, s.Window.String()))
			}
		}
		sort.SliceStable(shows, func(i, j int) bool {
			return MustWindow(shows[i].Time).Start < MustWindow(shows[j].Time).Start
		})
		byDay[day] = shows
	}
	return byDay
}

// AllShows lists each show once by name, in declaration order.
func (t Table) AllShows() []Resolved {
	seen := make(map[string]bool)
	var shows []Resolved
	for _, s := range t.shows {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		shows = append(shows, s.resolved(s.ID(), s.Window.String()))
	}
	return shows
}
