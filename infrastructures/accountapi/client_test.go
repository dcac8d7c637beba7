package accountapi

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/radio47ke/companion/domain/model/likedshow"
	"github.com/radio47ke/companion/internal/errutil"
	"github.com/radio47ke/companion/internal/testutil"
	"gopkg.in/dnaeon/go-vcr.v3/recorder"
)

func newTestClient(t *testing.T, cassette string) *Client {
	t.Helper()

	baseURL, err := url.Parse("https://account.radio47.example")
	if err != nil {
		t.Fatal(err)
	}

	rec, err := recorder.New(cassette)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { rec.Stop() })

	rec.SetReplayableInteractions(true)

	return &Client{
		httpClient: rec.GetDefaultClient(),
		baseURL:    baseURL,
		token:      "test-token",
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func TestClient_List(t *testing.T) {
	tests := []struct {
		name    string
		want    []likedshow.LikedShow
		wantErr error
	}{
		{
			name: "fetches liked shows",
			want: []likedshow.LikedShow{
				{
					ID:      "Maskani-15:00 - 19:00",
					Name:    "Maskani",
					Host:    "Manucho Mweni na Shiko Kihika",
					Time:    "15:00 - 19:00",
					Days:    "Weekdays",
					Image:   "default.png",
					LikedAt: 1672650000000,
				},
				{
					ID:                   "Chemba-19:00 - 22:00",
					Name:                 "Chemba",
					Host:                 "Dr Ofweneke na Dj Tabu",
					Time:                 "19:00 - 22:00",
					Days:                 "Weekdays",
					Image:                "default.png",
					LikedAt:              1672655400000,
					NotificationsEnabled: boolPtr(false),
				},
			},
			wantErr: nil,
		},
		{
			name:    "server error",
			want:    nil,
			wantErr: errutil.ErrAccountAPINotOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, fmt.Sprintf("../../testdata/infrastructure/accountapi/List/%s", tt.name))

			got, err := c.List(context.Background())
			if !testutil.ErrorsAs(err, tt.wantErr) {
				t.Errorf("Client.List() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClient_Upsert(t *testing.T) {
	c := newTestClient(t, "../../testdata/infrastructure/accountapi/Upsert/ok")

	err := c.Upsert(context.Background(), likedshow.LikedShow{
		ID:      "Maskani-15:00 - 19:00",
		Name:    "Maskani",
		Host:    "Manucho Mweni na Shiko Kihika",
		Time:    "15:00 - 19:00",
		Days:    "Weekdays",
		LikedAt: 1672650000000,
	})
	if err != nil {
		t.Errorf("Client.Upsert() error = %v", err)
	}
}

func TestClient_Remove(t *testing.T) {
	c := newTestClient(t, "../../testdata/infrastructure/accountapi/Remove/ok")

	err := c.Remove(context.Background(), "Maskani-15:00 - 19:00")
	if err != nil {
		t.Errorf("Client.Remove() error = %v", err)
	}
}

func TestClient_Load(t *testing.T) {
	c := newTestClient(t, "../../testdata/infrastructure/accountapi/Load/ok")

	got, err := c.Load(context.Background())
	if err != nil {
		t.Errorf("Client.Load() error = %v", err)
		return
	}
	want := likedshow.NotificationSettings{
		UpcomingShows: true,
		NewContent:    false,
		SpecialEvents: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_Save(t *testing.T) {
	c := newTestClient(t, "../../testdata/infrastructure/accountapi/Save/ok")

	err := c.Save(context.Background(), likedshow.NotificationSettings{
		UpcomingShows: false,
		NewContent:    true,
		SpecialEvents: true,
	})
	if err != nil {
		t.Errorf("Client.Save() error = %v", err)
	}
}
