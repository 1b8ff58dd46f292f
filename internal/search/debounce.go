package search

import (
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// minQueryLen is the shortest query worth resolving. Single characters
// match half the catalog and waste geocoder requests.
const minQueryLen = 2

// Debouncer coalesces keystrokes into search requests. Each accepted input
// restarts an idle timer; only when the user pauses does the fire callback
// run, tagged with a monotonically increasing request id so late responses
// can be recognized and dropped.
type Debouncer struct {
	clock clockwork.Clock
	idle  time.Duration
	fire  func(id uint64, query string)
	clear func()

	mu      sync.Mutex
	timer   clockwork.Timer
	pending string
	lastID  uint64
}

// NewDebouncer creates a debouncer. fire runs after idle elapses with no
// further input; clear runs when the query drops below the minimum length.
func NewDebouncer(clock clockwork.Clock, idle time.Duration, fire func(id uint64, query string), clear func()) *Debouncer {
	return &Debouncer{
		clock: clock,
		idle:  idle,
		fire:  fire,
		clear: clear,
	}
}

// Input feeds the current text box contents into the debouncer.
func (d *Debouncer) Input(text string) {
	query := strings.TrimSpace(text)

	d.mu.Lock()
	if len(query) < minQueryLen {
		if d.timer != nil {
			d.timer.Stop()
		}
		d.pending = ""
		d.mu.Unlock()
		if d.clear != nil {
			d.clear()
		}
		return
	}

	d.pending = query
	if d.timer == nil {
		d.timer = d.clock.AfterFunc(d.idle, d.expire)
	} else {
		d.timer.Reset(d.idle)
	}
	d.mu.Unlock()
}

// Latest returns the id of the most recently fired request. Zero means
// nothing has fired yet.
func (d *Debouncer) Latest() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.lastID
}

func (d *Debouncer) expire() {
	d.mu.Lock()
	query := d.pending
	if query == "" {
		d.mu.Unlock()
		return
	}
	d.lastID++
	id := d.lastID
	d.mu.Unlock()

	d.fire(id, query)
}
