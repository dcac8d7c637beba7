package reminder

import "time"

// Category is the delivery channel a reminder belongs to. Show-reminder
// rescheduling must never touch the tune-in or media-playback lifecycles.
type Category string

const (
	CategoryUpcomingShows = Category("upcoming-shows")
	CategoryTuneIn        = Category("tune-in")
	CategoryMediaPlayback = Category("media-playback")
)

func (c Category) String() string {
	return string(c)
}

// Type tags special reminder payloads.
type Type string

const (
	// the single recurring-style tune-in nudge
	TypePeriodic = Type("periodic")

	// the persistent media-control notification
	TypeMediaControl = Type("media-control")
)

// Reminder is the payload handed to the delivery service.
type Reminder struct {
	Title string
	Body  string

	// ShowID ties a show reminder back to its LikedShow for cancellation
	// matching. Empty for tune-in and media-playback reminders.
	ShowID string

	Type Type
}

// Pending is a reminder the delivery service has accepted but not yet fired.
type Pending struct {
	Handle   string
	Category Category
	FireAt   time.Time
	Reminder Reminder
}
