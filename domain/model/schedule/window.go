package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/radio47ke/companion/internal/errutil"
)

const minutesPerDay = 24 * 60

// Window is an air window as minute-of-day values in [0, 1440).
// End <= Start means the window wraps past midnight.
type Window struct {
	Start int
	End   int
}

// ParseWindow parses a display window such as "06:00 - 10:00".
func ParseWindow(s string) (Window, error) {
	parts := strings.Split(s, " - ")
	if len(parts) != 2 {
		return Window{}, errors.Wrapf(errutil.ErrTimeParse, "window %q is not of the form HH:MM - HH:MM", s)
	}

	start, err := parseClock(parts[0])
	if err != nil {
		return Window{}, err
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: end}, nil
}

func MustWindow(s string) Window {
	w, err := ParseWindow(s)
	if err != nil {
		panic(err)
	}
	return w
}

func parseClock(s string) (int, error) {
	hm := strings.Split(strings.TrimSpace(s), ":")
	if len(hm) != 2 {
		return 0, errors.Wrapf(errutil.ErrTimeParse, "clock %q is not of the form HH:MM", s)
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, errors.Wrap(errutil.ErrTimeParse, err.Error())
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, errors.Wrap(errutil.ErrTimeParse, err.Error())
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, errors.Wrapf(errutil.ErrTimeParse, "clock %q out of range", s)
	}
	return hour*60 + minute, nil
}

// Contains reports whether minute-of-day t falls inside the window,
// including the wrapped part of a midnight-crossing window.
func (w Window) Contains(t int) bool {
	if w.End > w.Start {
		return t >= w.Start && t < w.End
	}
	return t >= w.Start || t < w.End
}

// Wraps reports whether the window crosses midnight into the next day.
func (w Window) Wraps() bool {
	return w.End <= w.Start
}

func (w Window) String() string {
	return fmt.Sprintf("%s - %s", clockString(w.Start), clockString(w.End))
}

func clockString(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
