package accountapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/radio47ke/companion/domain/model/likedshow"
	"github.com/radio47ke/companion/internal/errutil"
)

// Client talks to the hosted account database's REST surface. Liked shows
// and notification settings live in account-scoped tables; the caller treats
// every operation as best effort next to the authoritative local store.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	token      string
}

func New(baseURL string, token string) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrInternal, err.Error())
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    parsed,
		token:      token,
	}, nil
}

type likedShowRow struct {
	ShowName string `json:"show_name"`
	ShowHost string `json:"show_host"`
	ShowTime string `json:"show_time"`
	ShowDays string `json:"show_days"`

	NotificationsEnabled *bool `json:"notifications_enabled"`

	// RFC3339
	CreatedAt string `json:"created_at"`
}

func likedShowRowToModel(row likedShowRow) likedshow.LikedShow {
	var likedAt int64
	createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
	if err == nil {
		likedAt = createdAt.UnixMilli()
	}

	return likedshow.LikedShow{
		ID:                   row.ShowName + "-" + row.ShowTime,
		Name:                 row.ShowName,
		Host:                 row.ShowHost,
		Time:                 row.ShowTime,
		Days:                 row.ShowDays,
		Image:                "default.png",
		LikedAt:              likedAt,
		NotificationsEnabled: row.NotificationsEnabled,
	}
}

func modelToLikedShowRow(show likedshow.LikedShow) likedShowRow {
	return likedShowRow{
		ShowName:             show.Name,
		ShowHost:             show.Host,
		ShowTime:             show.Time,
		ShowDays:             show.Days,
		NotificationsEnabled: show.NotificationsEnabled,
		CreatedAt:            time.UnixMilli(show.LikedAt).UTC().Format(time.RFC3339),
	}
}

func (c *Client) List(ctx context.Context) ([]likedshow.LikedShow, error) {
	res, err := c.do(ctx, http.MethodGet, "/liked_shows", nil, nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var rows []likedShowRow
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return nil, errors.Wrap(errutil.ErrJSONDecode, err.Error())
	}

	var shows []likedshow.LikedShow
	for _, row := range rows {
		shows = append(shows, likedShowRowToModel(row))
	}
	log.Ctx(ctx).Debug().Msgf("fetched liked shows from account (len = %d)", len(shows))
	return shows, nil
}

func (c *Client) Upsert(ctx context.Context, show likedshow.LikedShow) error {
	body, err := json.Marshal(modelToLikedShowRow(show))
	if err != nil {
		return errors.Wrap(errutil.ErrInternal, err.Error())
	}

	res, err := c.do(ctx, http.MethodPost, "/liked_shows", nil, body)
	if err != nil {
		return err
	}
	res.Body.Close()
	return nil
}

func (c *Client) Remove(ctx context.Context, id string) error {
	res, err := c.do(ctx, http.MethodDelete, "/liked_shows", url.Values{"id": []string{id}}, nil)
	if err != nil {
		return err
	}
	res.Body.Close()
	return nil
}

type settingsRow struct {
	UpcomingShows bool `json:"upcoming_shows"`
	NewContent    bool `json:"new_content"`
	SpecialEvents bool `json:"special_events"`
}

func (c *Client) Load(ctx context.Context) (likedshow.NotificationSettings, error) {
	res, err := c.do(ctx, http.MethodGet, "/notification_settings", nil, nil)
	if err != nil {
		return likedshow.NotificationSettings{}, err
	}
	defer res.Body.Close()

	var row settingsRow
	if err := json.NewDecoder(res.Body).Decode(&row); err != nil {
		return likedshow.NotificationSettings{}, errors.Wrap(errutil.ErrJSONDecode, err.Error())
	}
	return likedshow.NotificationSettings{
		UpcomingShows: row.UpcomingShows,
		NewContent:    row.NewContent,
		SpecialEvents: row.SpecialEvents,
	}, nil
}

func (c *Client) Save(ctx context.Context, settings likedshow.NotificationSettings) error {
	body, err := json.Marshal(settingsRow{
		UpcomingShows: settings.UpcomingShows,
		NewContent:    settings.NewContent,
		SpecialEvents: settings.SpecialEvents,
	})
	if err != nil {
		return errors.Wrap(errutil.ErrInternal, err.Error())
	}

	res, err := c.do(ctx, http.MethodPut, "/notification_settings", nil, body)
	if err != nil {
		return err
	}
	res.Body.Close()
	return nil
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body []byte) (*http.Response, error) {
	target := *c.baseURL
	target.Path = target.Path + path
	if query != nil {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrInternal, err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrHTTPRequest, err.Error())
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		res.Body.Close()
		return nil, errors.Wrapf(errutil.ErrAccountAPINotOK, "http status code is %d", res.StatusCode)
	}
	return res, nil
}
