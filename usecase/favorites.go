package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/radio47ke/companion/domain/model/likedshow"
	"github.com/radio47ke/companion/domain/repository"
	"github.com/radio47ke/companion/internal/errutil"
	"github.com/pkg/errors"
)

// Favorites reconciles the local liked-show store with an optional remote
// account-scoped store. Local storage is authoritative; every remote call is
// best effort so favoriting always succeeds from the user's point of view.
type Favorites struct {
	local  repository.FavoritesStore
	remote repository.FavoritesStore
}

// NewFavorites builds the favorites usecase. remote may be nil when the user
// has no account session.
func NewFavorites(local repository.FavoritesStore, remote repository.FavoritesStore) *Favorites {
	return &Favorites{
		local:  local,
		remote: remote,
	}
}

// Merge reconciles a local and a remote liked-show list: union of ids,
// remote notification flag wins on overlap, remote-only entries are added.
// Local entries the remote does not know about stay as they are.
func Merge(local []likedshow.LikedShow, remote []likedshow.LikedShow) []likedshow.LikedShow {
	merged := make([]likedshow.LikedShow, len(local))
	copy(merged, local)

	index := make(map[string]int, len(local))
	for i, s := range local {
		index[s.ID] = i
	}

	for _, remoteShow := range remote {
		if i, ok := index[remoteShow.ID]; ok {
			merged[i].NotificationsEnabled = remoteShow.NotificationsEnabled
		} else {
			merged = append(merged, remoteShow)
		}
	}
	return merged
}

// List returns the user's liked shows. When a remote store is configured the
// result is the merged view, written back to local storage so a later offline
// read sees the same list. Remote failure degrades to the local list.
func (f *Favorites) List(ctx context.Context) ([]likedshow.LikedShow, error) {
	localShows, err := f.local.List(ctx)
	if err != nil {
		return nil, err
	}

	if f.remote == nil {
		return localShows, nil
	}

	remoteShows, err := f.remote.List(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Msgf("failed to fetch remote liked shows, using local only: %+v", err)
		return localShows, nil
	}
	if len(remoteShows) == 0 {
		return localShows, nil
	}

	merged := Merge(localShows, remoteShows)
	for _, show := range merged {
		if err := f.local.Upsert(ctx, show); err != nil {
			log.Ctx(ctx).Warn().Msgf("failed to write back merged show (id = %s): %+v", show.ID, err)
		}
	}
	return merged, nil
}

// ToggleLike likes the show when it is not liked and unlikes it otherwise,
// returning the new liked state. The remote store is synced best effort.
func (f *Favorites) ToggleLike(ctx context.Context, show likedshow.LikedShow, now time.Time) (bool, error) {
	likedShows, err := f.List(ctx)
	if err != nil {
		return false, err
	}

	liked := false
	for _, s := range likedShows {
		if s.ID == show.ID {
			liked = true
			break
		}
	}

	if liked {
		if err := f.local.Remove(ctx, show.ID); err != nil {
			return false, err
		}
		f.remoteRemove(ctx, show.ID)
		return false, nil
	}

	if show.LikedAt == 0 {
		show.LikedAt = now.UnixMilli()
	}
	if show.NotificationsEnabled == nil {
		enabled := true
		show.NotificationsEnabled = &enabled
	}
	if err := f.local.Upsert(ctx, show); err != nil {
		return false, err
	}
	f.remoteUpsert(ctx, show)
	return true, nil
}

// IsLiked reports whether the show identified by its direct name-time id is
// in the liked list.
func (f *Favorites) IsLiked(ctx context.Context, name string, timeLabel string) (bool, error) {
	likedShows, err := f.List(ctx)
	if err != nil {
		return false, err
	}
	id := name + "-" + timeLabel
	for _, s := range likedShows {
		if s.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// ToggleNotifications flips the per-show notification flag and returns the
// new value.
func (f *Favorites) ToggleNotifications(ctx context.Context, id string) (bool, error) {
	likedShows, err := f.List(ctx)
	if err != nil {
		return false, err
	}

	for _, s := range likedShows {
		if s.ID != id {
			continue
		}
		enabled := !s.NotifyEnabled()
		s.NotificationsEnabled = &enabled
		if err := f.local.Upsert(ctx, s); err != nil {
			return false, err
		}
		f.remoteUpsert(ctx, s)
		return enabled, nil
	}
	return false, errors.Wrapf(errutil.ErrShowNotFound, "no liked show with id %q", id)
}

func (f *Favorites) remoteUpsert(ctx context.Context, show likedshow.LikedShow) {
	if f.remote == nil {
		return
	}
	if err := f.remote.Upsert(ctx, show); err != nil {
		log.Ctx(ctx).Warn().Msgf("failed to sync liked show to account (id = %s): %+v", show.ID, err)
	}
}

func (f *Favorites) remoteRemove(ctx context.Context, id string) {
	if f.remote == nil {
		return
	}
	if err := f.remote.Remove(ctx, id); err != nil {
		log.Ctx(ctx).Warn().Msgf("failed to remove liked show from account (id = %s): %+v", id, err)
	}
}

// Settings wraps the global notification settings with the same
// local-authoritative, remote-best-effort policy as Favorites.
type Settings struct {
	local  repository.SettingsStore
	remote repository.SettingsStore
}

func NewSettings(local repository.SettingsStore, remote repository.SettingsStore) *Settings {
	return &Settings{
		local:  local,
		remote: remote,
	}
}

func (s *Settings) Load(ctx context.Context) (likedshow.NotificationSettings, error) {
	return s.local.Load(ctx)
}

func (s *Settings) Update(ctx context.Context, settings likedshow.NotificationSettings) error {
	if err := s.local.Save(ctx, settings); err != nil {
		return err
	}
	if s.remote != nil {
		if err := s.remote.Save(ctx, settings); err != nil {
			log.Ctx(ctx).Warn().Msgf("failed to sync notification settings to account: %+v", err)
		}
	}
	return nil
}
