package likedshow

import (
	"time"

	"github.com/radio47ke/companion/domain/model/schedule"
)

// LikedShow is a user-favorited show. Days and Time are kept in their display
// form because they round-trip through persistence and the account API.
type LikedShow struct {
	ID    string
	Name  string
	Host  string
	Time  string
	Days  string
	Image string

	// epoch millis of when the show was favorited
	LikedAt int64

	// nil means "enabled by default"
	NotificationsEnabled *bool
}

// NotifyEnabled resolves the tri-state flag: only an explicit false disables.
func (s LikedShow) NotifyEnabled() bool {
	return s.NotificationsEnabled == nil || *s.NotificationsEnabled
}

// FromResolved builds a new liked show with notifications enabled.
func FromResolved(r schedule.Resolved, likedAt time.Time) LikedShow {
	enabled := true
	return LikedShow{
		ID:                   r.ID,
		Name:                 r.Name,
		Host:                 r.Host,
		Time:                 r.Time,
		Days:                 r.Days,
		Image:                r.Image,
		LikedAt:              likedAt.UnixMilli(),
		NotificationsEnabled: &enabled,
	}
}

// NotificationSettings is the per-installation global toggle record.
type NotificationSettings struct {
	UpcomingShows bool
	NewContent    bool
	SpecialEvents bool
}

func DefaultSettings() NotificationSettings {
	return NotificationSettings{
		UpcomingShows: true,
		NewContent:    true,
		SpecialEvents: true,
	}
}
