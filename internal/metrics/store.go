// Package metrics records per-menu render timings.
package metrics

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Render is the accumulated timing for one skin:menu key.
type Render struct {
	Key      string        `json:"key" yaml:"key"`
	Last     time.Duration `json:"last" yaml:"last"`
	Total    time.Duration `json:"total" yaml:"total"`
	Count    int           `json:"count" yaml:"count"`
	LastSeen time.Time     `json:"last_seen" yaml:"last_seen"`
}

// Average is Total divided by Count, or zero before the first record.
func (r Render) Average() time.Duration {
	if r.Count == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Count)
}

// Store accumulates render timings. A nil *Store discards records, so
// callers that do not care about metrics can pass nil.
type Store struct {
	mu      sync.Mutex
	renders map[string]*Render
	now     func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{renders: make(map[string]*Render), now: time.Now}
}

// Key builds the "skin:menu" key used by the presenter.
func Key(skinID, menuID string) string {
	return skinID + ":" + menuID
}

// Record adds one render of key taking d.
func (s *Store) Record(key string, d time.Duration) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.renders[key]
	if !ok {
		r = &Render{Key: key}
		s.renders[key] = r
	}
	r.Last = d
	r.Total += d
	r.Count++
	r.LastSeen = s.now()
}

// Get returns a copy of the timing for key.
func (s *Store) Get(key string) (Render, bool) {
	if s == nil {
		return Render{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.renders[key]
	if !ok {
		return Render{}, false
	}
	return *r, true
}

// Snapshot returns a copy of every timing, sorted by key.
func (s *Store) Snapshot() []Render {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Render, 0, len(s.renders))
	for _, r := range s.renders {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Reset clears all timings.
func (s *Store) Reset() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.renders = make(map[string]*Render)
}

// FormatDuration formats a render time for display (e.g. 1234µs → "1.2ms").
func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
}
