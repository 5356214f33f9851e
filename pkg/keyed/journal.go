package keyed

import (
	"sync"
	"time"
)

// Entry is one recorded notification.
type Entry struct {
	Service string
	Event   Event
	Key     string
	At      time.Time
}

// Journal is an in-memory record of every notification emitted by the
// stores attached to it, in emission order per service.
type Journal struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

func NewJournal() *Journal {
	return &Journal{
		entries: make(map[string][]Entry),
	}
}

func (j *Journal) Record(service string, event Event, key string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries[service] = append(j.entries[service], Entry{
		Service: service,
		Event:   event,
		Key:     key,
		At:      time.Now(),
	})
}

// Entries returns the notifications a service emitted, oldest first.
func (j *Journal) Entries(service string) []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	src := j.entries[service]
	out := make([]Entry, len(src))
	copy(out, src)
	return out
}

// Count returns how many notifications of one event type a service
// emitted.
func (j *Journal) Count(service string, event Event) int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var n int
	for _, e := range j.entries[service] {
		if e.Event == event {
			n++
		}
	}
	return n
}

// Services lists the service names seen so far.
func (j *Journal) Services() []string {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]string, 0, len(j.entries))
	for name := range j.entries {
		out = append(out, name)
	}
	return out
}
