package playback

import "sync"

// Snapshot is a point-in-time view of the playback state.
type Snapshot struct {
	AudioPlaying bool
	Muted        bool
	Live         bool
}

// State holds the shared playback flags behind a defined read/subscribe
// contract instead of a package-level variable, so the audio/live-stream
// interaction stays testable.
type State struct {
	mu   sync.RWMutex
	snap Snapshot
	subs []func(Snapshot)
}

func NewState() *State {
	return &State{}
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Live reports whether a live video stream is active. Audio playback must
// not be started while this is true.
func (s *State) Live() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Live
}

func (s *State) SetAudioPlaying(playing bool) {
	s.update(func(snap *Snapshot) { snap.AudioPlaying = playing })
}

func (s *State) SetMuted(muted bool) {
	s.update(func(snap *Snapshot) { snap.Muted = muted })
}

// SetLive marks a live video stream active. Audio is paused to avoid the two
// streams colliding.
func (s *State) SetLive(live bool) {
	s.update(func(snap *Snapshot) {
		snap.Live = live
		if live {
			snap.AudioPlaying = false
		}
	})
}

// Subscribe registers fn to run after every state change. Callbacks run
// outside the lock, in registration order.
func (s *State) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *State) update(mutate func(*Snapshot)) {
	s.mu.Lock()
	before := s.snap
	mutate(&s.snap)
	after := s.snap
	subs := s.subs
	s.mu.Unlock()

	if before == after {
		return
	}
	for _, fn := range subs {
		fn(after)
	}
}
