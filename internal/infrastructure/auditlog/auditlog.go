// Package auditlog keeps the in-memory operation log shown to the admin.
//
// Entries live only for the lifetime of the process.
package auditlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultCapacity is the number of entries retained.
const DefaultCapacity = 100

// TimeLayout renders timestamps like the zh-TW locale with a 24h clock.
const TimeLayout = "2006/1/2 15:04:05"

// Log is a fixed-size ring of formatted entries. The newest entry is first
// in List; once full, each Append overwrites the oldest.
type Log struct {
	mu      sync.Mutex
	entries []string
	next    int // slot the next Append writes
	size    int

	loc *time.Location
	now func() time.Time
	log zerolog.Logger
}

// Option configures a Log.
type Option func(*Log)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// WithLocation sets the zone timestamps are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(l *Log) {
		if loc != nil {
			l.loc = loc
		}
	}
}

// New returns an empty log holding at most capacity entries. Every entry is
// also written to log at info level.
func New(capacity int, log zerolog.Logger, opts ...Option) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	l := &Log{
		entries: make([]string, capacity),
		loc:     time.Local,
		now:     time.Now,
		log:     log,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append records message as "[timestamp] message".
func (l *Log) Append(message string) {
	entry := "[" + l.now().In(l.loc).Format(TimeLayout) + "] " + message

	l.mu.Lock()
	l.entries[l.next] = entry
	l.next = (l.next + 1) % len(l.entries)
	if l.size < len(l.entries) {
		l.size++
	}
	l.mu.Unlock()

	l.log.Info().Str("audit", message).Msg(entry)
}

// List returns a copy of the entries, most recent first.
func (l *Log) List() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, l.size)
	for i := range out {
		idx := (l.next - 1 - i + len(l.entries)) % len(l.entries)
		out[i] = l.entries[idx]
	}
	return out
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}
