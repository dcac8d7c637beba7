package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/radio47ke/companion/domain/model/likedshow"
	"github.com/radio47ke/companion/domain/repository"
	"github.com/radio47ke/companion/internal/errutil"
)

type likedShowSqlite struct {
	ID                   string         `db:"id"`
	Name                 string         `db:"name"`
	Host                 string         `db:"host"`
	Time                 string         `db:"time"`
	Days                 string         `db:"days"`
	Image                sql.NullString `db:"image"`
	LikedAt              int64          `db:"liked_at"`
	NotificationsEnabled sql.NullBool   `db:"notifications_enabled"`
}

func likedShowSqliteToModel(row likedShowSqlite) likedshow.LikedShow {
	var notificationsEnabled *bool
	if row.NotificationsEnabled.Valid {
		enabled := row.NotificationsEnabled.Bool
		notificationsEnabled = &enabled
	}

	return likedshow.LikedShow{
		ID:                   row.ID,
		Name:                 row.Name,
		Host:                 row.Host,
		Time:                 row.Time,
		Days:                 row.Days,
		Image:                row.Image.String, // empty string is fine
		LikedAt:              row.LikedAt,
		NotificationsEnabled: notificationsEnabled,
	}
}

func modelToLikedShowSqlite(show likedshow.LikedShow) likedShowSqlite {
	var image sql.NullString
	if show.Image != "" {
		image.Valid = true
		image.String = show.Image
	}

	var notificationsEnabled sql.NullBool
	if show.NotificationsEnabled != nil {
		notificationsEnabled.Valid = true
		notificationsEnabled.Bool = *show.NotificationsEnabled
	}

	return likedShowSqlite{
		ID:                   show.ID,
		Name:                 show.Name,
		Host:                 show.Host,
		Time:                 show.Time,
		Days:                 show.Days,
		Image:                image,
		LikedAt:              show.LikedAt,
		NotificationsEnabled: notificationsEnabled,
	}
}

func NewDB(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseOpen, err.Error())
	}
	return db, nil
}

// table creation
func Setup(db *sqlx.DB) error {
	_, err := db.Exec(`create table if not exists liked_shows (
		id text primary key,
		name text not null,
		host text not null,
		time text not null,
		days text not null,
		image text,
		liked_at integer not null,
		notifications_enabled integer,
		created_at timestamp not null default (datetime('now', 'localtime')),
		updated_at timestamp not null default (datetime('now', 'localtime'))
	);`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	_, err = db.Exec(`CREATE TRIGGER if not exists trigger_liked_shows_updated_at AFTER UPDATE ON liked_shows
		BEGIN
			UPDATE liked_shows SET updated_at = DATETIME('now', 'localtime') WHERE rowid == NEW.rowid;
		END;
		`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	_, err = db.Exec(`create table if not exists notification_settings (
		id integer primary key check (id = 1),
		upcoming_shows integer not null,
		new_content integer not null,
		special_events integer not null,
		updated_at timestamp not null default (datetime('now', 'localtime'))
	);`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	return nil
}

type favoritesClient struct {
	DB *sqlx.DB
}

func NewFavorites(db *sqlx.DB) repository.FavoritesStore {
	return &favoritesClient{
		DB: db,
	}
}

func (c *favoritesClient) List(ctx context.Context) ([]likedshow.LikedShow, error) {
	var rows []likedShowSqlite
	err := c.DB.SelectContext(ctx, &rows,
		`select id, name, host, time, days, image, liked_at, notifications_enabled from liked_shows order by liked_at`)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	var shows []likedshow.LikedShow
	for _, row := range rows {
		shows = append(shows, likedShowSqliteToModel(row))
	}
	return shows, nil
}

func (c *favoritesClient) Upsert(ctx context.Context, show likedshow.LikedShow) error {
	row := modelToLikedShowSqlite(show)
	_, err := c.DB.NamedExecContext(ctx,
		`insert into liked_shows (id, name, host, time, days, image, liked_at, notifications_enabled)
		values
		(:id, :name, :host, :time, :days, :image, :liked_at, :notifications_enabled)
		on conflict (id) do update set
			name = excluded.name,
			host = excluded.host,
			time = excluded.time,
			days = excluded.days,
			image = excluded.image,
			liked_at = excluded.liked_at,
			notifications_enabled = excluded.notifications_enabled`,
		row)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return nil
}

func (c *favoritesClient) Remove(ctx context.Context, id string) error {
	_, err := c.DB.ExecContext(ctx, `delete from liked_shows where id = ?`, id)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return nil
}

type settingsSqlite struct {
	UpcomingShows bool `db:"upcoming_shows"`
	NewContent    bool `db:"new_content"`
	SpecialEvents bool `db:"special_events"`
}

type settingsClient struct {
	DB *sqlx.DB
}

func NewSettings(db *sqlx.DB) repository.SettingsStore {
	return &settingsClient{
		DB: db,
	}
}

// Load returns the stored settings. On first access the defaults-on record
// is created and returned.
func (c *settingsClient) Load(ctx context.Context) (likedshow.NotificationSettings, error) {
	var rows []settingsSqlite
	err := c.DB.SelectContext(ctx, &rows,
		`select upcoming_shows, new_content, special_events from notification_settings where id = 1`)
	if err != nil {
		return likedshow.NotificationSettings{}, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	if len(rows) == 0 {
		settings := likedshow.DefaultSettings()
		if err := c.Save(ctx, settings); err != nil {
			return likedshow.NotificationSettings{}, err
		}
		return settings, nil
	}

	return likedshow.NotificationSettings{
		UpcomingShows: rows[0].UpcomingShows,
		NewContent:    rows[0].NewContent,
		SpecialEvents: rows[0].SpecialEvents,
	}, nil
}

func (c *settingsClient) Save(ctx context.Context, settings likedshow.NotificationSettings) error {
	_, err := c.DB.NamedExecContext(ctx,
		`insert into notification_settings (id, upcoming_shows, new_content, special_events)
		values
		(1, :upcoming_shows, :new_content, :special_events)
		on conflict (id) do update set
			upcoming_shows = excluded.upcoming_shows,
			new_content = excluded.new_content,
			special_events = excluded.special_events`,
		settingsSqlite{
			UpcomingShows: settings.UpcomingShows,
			NewContent:    settings.NewContent,
			SpecialEvents: settings.SpecialEvents,
		})
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return nil
}
