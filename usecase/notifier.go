package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/radio47ke/companion/domain/model/reminder"
	"github.com/radio47ke/companion/domain/model/schedule"
	"github.com/radio47ke/companion/domain/repository"
	"github.com/radio47ke/companion/internal/errutil"
	"golang.org/x/sync/singleflight"
)

const (
	// show reminders fire this long before air time
	reminderLead = 15 * time.Minute

	// reminders further out than this are not pre-scheduled; a later
	// reschedule pass picks them up
	scheduleHorizon = 7 * 24 * time.Hour

	// how far out the single tune-in nudge is placed
	tuneInAfter = 6 * time.Hour
)

// Notifier keeps the delivery service's pending reminders in sync with the
// user's liked shows and settings.
type Notifier struct {
	table     schedule.Table
	favorites *Favorites
	settings  *Settings
	delivery  repository.DeliveryService
	group     singleflight.Group
}

func NewNotifier(
	table schedule.Table,
	favorites *Favorites,
	settings *Settings,
	delivery repository.DeliveryService,
) *Notifier {
	return &Notifier{
		table:     table,
		favorites: favorites,
		settings:  settings,
		delivery:  delivery,
	}
}

// RescheduleShowReminders recomputes every show reminder from scratch:
// cancel the pending show reminders, then schedule the nearest upcoming
// occurrence for each eligible liked show. Repeated calls with unchanged
// inputs leave exactly one pending reminder per eligible show. Concurrent
// callers are collapsed into a single pass.
func (n *Notifier) RescheduleShowReminders(ctx context.Context, now time.Time) error {
	_, err, _ := n.group.Do("reschedule-show-reminders", func() (interface{}, error) {
		return nil, n.reschedule(ctx, now)
	})
	return err
}

func (n *Notifier) reschedule(ctx context.Context, now time.Time) error {
	settings, err := n.settings.Load(ctx)
	if err != nil {
		return err
	}
	if !settings.UpcomingShows {
		log.Ctx(ctx).Debug().Msg("upcoming-show notifications disabled, nothing to schedule")
		return nil
	}

	likedShows, err := n.favorites.List(ctx)
	if err != nil {
		return err
	}

	var eligible []likedShowForReminder
	for _, s := range likedShows {
		if s.NotifyEnabled() {
			eligible = append(eligible, likedShowForReminder{s.ID, s.Name, s.Host, s.Time, s.Days})
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	n.cancelShowReminders(ctx)

	for _, show := range eligible {
		if err := n.scheduleNext(ctx, now, show); err != nil {
			log.Ctx(ctx).Warn().Msgf("failed to schedule reminder (show = %s): %+v", show.Name, err)
		}
	}
	return nil
}

type likedShowForReminder struct {
	ID   string
	Name string
	Host string
	Time string
	Days string
}

// cancelShowReminders clears pending show reminders, leaving tune-in and
// media-playback reminders alone. Best effort: a failed enumeration or
// cancel does not stop the pass, at the cost of a possible stale duplicate.
func (n *Notifier) cancelShowReminders(ctx context.Context) {
	pending, err := n.delivery.ListPending(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Msgf("failed to enumerate pending reminders, scheduling anyway: %+v", err)
		return
	}

	for _, p := range pending {
		if p.Reminder.ShowID == "" {
			continue
		}
		if p.Category == reminder.CategoryMediaPlayback || p.Category == reminder.CategoryTuneIn {
			continue
		}
		if err := n.delivery.Cancel(ctx, p.Handle); err != nil {
			log.Ctx(ctx).Warn().Msgf("failed to cancel reminder (handle = %s): %+v", p.Handle, err)
		}
	}
}

func (n *Notifier) scheduleNext(ctx context.Context, now time.Time, show likedShowForReminder) error {
	window, err := schedule.ParseWindow(show.Time)
	if err != nil {
		return err
	}
	days, err := schedule.ParseDays(show.Days)
	if err != nil {
		return err
	}

	fireAt, ok := nextReminderTime(now, window.Start, days)
	if !ok {
		log.Ctx(ctx).Debug().Msgf("no occurrence within horizon (show = %s)", show.Name)
		return nil
	}

	rem := reminder.Reminder{
		Title:  fmt.Sprintf("%s starts soon!", show.Name),
		Body:   fmt.Sprintf("Tune in to Radio 47 in 15 minutes for %s with %s", show.Name, show.Host),
		ShowID: show.ID,
	}
	_, err = n.delivery.Schedule(ctx, fireAt, rem, reminder.CategoryUpcomingShows)
	if err != nil {
		return errors.Wrap(errutil.ErrDelivery, err.Error())
	}
	log.Ctx(ctx).Debug().Msgf("scheduled reminder (show = %s, fire_at = %s)", show.Name, fireAt)
	return nil
}

// nextReminderTime finds the nearest occurrence across the show's weekdays
// and returns its reminder time (reminderLead before air). An occurrence
// whose reminder time already passed today rolls over to the same weekday
// next week. Returns false when nothing lands strictly inside the horizon.
func nextReminderTime(now time.Time, startMinute int, days []schedule.Weekday) (time.Time, bool) {
	today := schedule.WeekdayFromTime(now)

	var best time.Time
	for _, day := range days {
		daysAhead := (int(day) - int(today) + 7) % 7
		fireAt := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
			AddDate(0, 0, daysAhead).
			Add(time.Duration(startMinute)*time.Minute - reminderLead)
		if daysAhead == 0 && fireAt.Before(now) {
			fireAt = fireAt.AddDate(0, 0, 7)
		}
		if best.IsZero() || fireAt.Before(best) {
			best = fireAt
		}
	}

	if best.IsZero() {
		return time.Time{}, false
	}
	until := best.Sub(now)
	if until <= 0 || until >= scheduleHorizon {
		return time.Time{}, false
	}
	return best, true
}

// EnsureTuneInReminder schedules the single 6-hours-out tune-in nudge when
// none is pending. It never repeats and is never touched by the show
// reminder pass.
func (n *Notifier) EnsureTuneInReminder(ctx context.Context, now time.Time) error {
	pending, err := n.delivery.ListPending(ctx)
	if err != nil {
		return errors.Wrap(errutil.ErrDelivery, err.Error())
	}
	for _, p := range pending {
		if p.Reminder.Type == reminder.TypePeriodic {
			log.Ctx(ctx).Debug().Msg("tune-in reminder already scheduled")
			return nil
		}
	}

	current := n.table.Current(now)
	rem := reminder.Reminder{
		Title: "Tune in to Radio 47!",
		Body:  fmt.Sprintf("Now playing: %q with %s. Listening makes your day better!", current.Name, current.Host),
		Type:  reminder.TypePeriodic,
	}
	_, err = n.delivery.Schedule(ctx, now.Add(tuneInAfter), rem, reminder.CategoryTuneIn)
	if err != nil {
		return errors.Wrap(errutil.ErrDelivery, err.Error())
	}
	log.Ctx(ctx).Info().Msg("scheduled tune-in reminder")
	return nil
}

// UpdatePlaybackNotification publishes the immediate media-control
// notification carrying the show currently on air.
func (n *Notifier) UpdatePlaybackNotification(ctx context.Context, now time.Time) error {
	current := n.table.Current(now)
	rem := reminder.Reminder{
		Title: current.Name,
		Body:  fmt.Sprintf("with %s", current.Host),
		Type:  reminder.TypeMediaControl,
	}
	_, err := n.delivery.Schedule(ctx, now, rem, reminder.CategoryMediaPlayback)
	if err != nil {
		return errors.Wrap(errutil.ErrDelivery, err.Error())
	}
	return nil
}
