// Package flicker implements the ~10 Hz flicker scheduler: on every tick it
// posts a TickEvent into the terminal's event queue and returns, touching no
// world or screen state itself. The main loop's PollEvent/switch picks the
// event up like any tcell.EventKey or tcell.EventResize and performs the
// actual relight+redraw there, so a tick and a turn never mutate the same
// floor concurrently — there is exactly one goroutine that ever touches
// world state.
package flicker

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Interval is the flicker tick rate. ~10 Hz is inferred from a 100ms
// interval in the source material, not a hard contract, so it lives here as
// one named constant to retune.
const Interval = 100 * time.Millisecond

// TickEvent is posted once per Interval. Its only purpose is to wake the
// main loop's PollEvent; it carries no payload.
type TickEvent struct {
	t time.Time
}

// NewTickEvent returns a TickEvent timestamped now.
func NewTickEvent() *TickEvent {
	return &TickEvent{t: time.Now()}
}

// When satisfies tcell.Event.
func (e *TickEvent) When() time.Time {
	return e.t
}

// Poster is the subset of term.Screen the scheduler needs to hand a tick
// back to the main loop.
type Poster interface {
	PostEvent(ev tcell.Event) error
}

// Scheduler posts a TickEvent on every Interval. It holds no reference to
// the world or the screen's draw surface, only the means to post.
type Scheduler struct {
	post Poster
	stop chan struct{}
}

// New returns a scheduler that posts a TickEvent to post on every tick.
func New(post Poster) *Scheduler {
	return &Scheduler{post: post, stop: make(chan struct{})}
}

// Run blocks, ticking at Interval until Stop is called. Callers run it in
// its own goroutine.
func (s *Scheduler) Run() {
	ticker := time.NewTicker(Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick posts a TickEvent. PostEvent drops the event and returns an error
// once the queue is full rather than blocking, which is fine: a dropped
// tick just means one fewer flicker frame, never a stale relight.
func (s *Scheduler) tick() {
	_ = s.post.PostEvent(NewTickEvent())
}

// Stop terminates Run.
func (s *Scheduler) Stop() {
	close(s.stop)
}
