// internal/listquery/debounce.go
package listquery

import (
	"net/url"
	"sync"
	"time"
)

const (
	SearchDelay = 500 * time.Millisecond
	RangeDelay  = 600 * time.Millisecond
)

// Debouncer commits the latest pushed value once input has been quiet for
// the delay. Nothing is committed after Stop.
type Debouncer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	commit  func(T)
	timer   *time.Timer
	pending T
	gen     uint64
	stopped bool
}

func NewDebouncer[T any](delay time.Duration, commit func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, commit: commit}
}

func (d *Debouncer[T]) Push(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.pending = value
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.timer = nil
	d.mu.Unlock()

	d.commit(value)
}

// Stop drops any pending value.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

type Range struct {
	Min string
	Max string
}

// DebounceSearch commits the search term to the state and reports the new
// query. A term equal to the current one is ignored.
func (s *State) DebounceSearch(delay time.Duration, onChange func(url.Values)) *Debouncer[string] {
	return NewDebouncer(delay, func(q string) {
		if q == s.Get(KeySearch) {
			return
		}
		s.SetSearch(q)
		onChange(s.Values())
	})
}

func (s *State) DebounceRange(delay time.Duration, minKey, maxKey string, onChange func(url.Values)) *Debouncer[Range] {
	return NewDebouncer(delay, func(r Range) {
		if r.Min == s.Get(minKey) && r.Max == s.Get(maxKey) {
			return
		}
		s.SetRange(minKey, maxKey, r.Min, r.Max)
		onChange(s.Values())
	})
}
