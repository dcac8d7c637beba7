//go:generate mockgen -source=$GOFILE -destination ../../testdata/mock/domain/$GOPACKAGE/$GOFILE
package repository

import (
	"context"
	"time"

	"github.com/radio47ke/companion/domain/model/likedshow"
	"github.com/radio47ke/companion/domain/model/reminder"
)

type FavoritesStore interface {
	List(ctx context.Context) ([]likedshow.LikedShow, error)
	Upsert(ctx context.Context, show likedshow.LikedShow) error
	Remove(ctx context.Context, id string) error
}

type SettingsStore interface {
	// Load returns the stored settings, creating the defaults-on record on
	// first access.
	Load(ctx context.Context) (likedshow.NotificationSettings, error)
	Save(ctx context.Context, settings likedshow.NotificationSettings) error
}

type DeliveryService interface {
	ListPending(ctx context.Context) ([]reminder.Pending, error)

	// Cancel is idempotent; cancelling an unknown handle is not an error.
	Cancel(ctx context.Context, handle string) error

	Schedule(ctx context.Context, fireAt time.Time, rem reminder.Reminder, category reminder.Category) (string, error)
}
