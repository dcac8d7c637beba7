package localnotify

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/radio47ke/companion/domain/model/reminder"
)

func TestService_ScheduleAndListPending(t *testing.T) {
	s := New(nil)
	defer s.Stop()

	later := time.Now().Add(1 * time.Hour)
	sooner := time.Now().Add(30 * time.Minute)

	laterHandle, err := s.Schedule(context.Background(), later, reminder.Reminder{
		Title:  "Chemba starts soon!",
		Body:   "Tune in to Radio 47 in 15 minutes for Chemba with Dr Ofweneke na Dj Tabu",
		ShowID: "Chemba-19:00 - 22:00",
	}, reminder.CategoryUpcomingShows)
	if err != nil {
		t.Fatal(err)
	}
	soonerHandle, err := s.Schedule(context.Background(), sooner, reminder.Reminder{
		Title:  "Maskani starts soon!",
		Body:   "Tune in to Radio 47 in 15 minutes for Maskani with Manucho Mweni na Shiko Kihika",
		ShowID: "Maskani-15:00 - 19:00",
	}, reminder.CategoryUpcomingShows)
	if err != nil {
		t.Fatal(err)
	}
	if laterHandle == soonerHandle {
		t.Fatalf("handles must be unique: %s", laterHandle)
	}

	got, err := s.ListPending(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []reminder.Pending{
		{
			Handle:   soonerHandle,
			Category: reminder.CategoryUpcomingShows,
			FireAt:   sooner,
			Reminder: reminder.Reminder{
				Title:  "Maskani starts soon!",
				Body:   "Tune in to Radio 47 in 15 minutes for Maskani with Manucho Mweni na Shiko Kihika",
				ShowID: "Maskani-15:00 - 19:00",
			},
		},
		{
			Handle:   laterHandle,
			Category: reminder.CategoryUpcomingShows,
			FireAt:   later,
			Reminder: reminder.Reminder{
				Title:  "Chemba starts soon!",
				Body:   "Tune in to Radio 47 in 15 minutes for Chemba with Dr Ofweneke na Dj Tabu",
				ShowID: "Chemba-19:00 - 22:00",
			},
		},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestService_Cancel(t *testing.T) {
	s := New(nil)
	defer s.Stop()

	handle, err := s.Schedule(context.Background(), time.Now().Add(1*time.Hour), reminder.Reminder{
		Title:  "Maskani starts soon!",
		ShowID: "Maskani-15:00 - 19:00",
	}, reminder.CategoryUpcomingShows)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Cancel(context.Background(), handle); err != nil {
		t.Fatal(err)
	}
	// a second cancel and a cancel of an unknown handle are both no-ops
	if err := s.Cancel(context.Background(), handle); err != nil {
		t.Fatal(err)
	}
	if err := s.Cancel(context.Background(), "no-such-handle"); err != nil {
		t.Fatal(err)
	}

	got, err := s.ListPending(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("want no pending reminders, got %d", len(got))
	}
}

func TestService_FireDelivers(t *testing.T) {
	fired := make(chan reminder.Pending, 1)
	s := New(func(p reminder.Pending) {
		fired <- p
	})
	defer s.Stop()

	// a fire time in the past fires immediately
	handle, err := s.Schedule(context.Background(), time.Now().Add(-1*time.Minute), reminder.Reminder{
		Title: "Now playing",
		Type:  reminder.TypePeriodic,
	}, reminder.CategoryTuneIn)
	if err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-fired:
		if p.Handle != handle {
			t.Errorf("fired handle = %s, want %s", p.Handle, handle)
		}
		if p.Reminder.Title != "Now playing" {
			t.Errorf("fired title = %s, want Now playing", p.Reminder.Title)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("reminder did not fire")
	}

	got, err := s.ListPending(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("fired reminder must leave the pending table, got %d entries", len(got))
	}
}
