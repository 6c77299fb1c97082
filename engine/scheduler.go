package engine

import (
	"time"
)

// Task is deferred work run on the event loop goroutine
type Task func()

// Scheduler defers tasks to a later turn of the event loop
type Scheduler interface {
	Schedule(delay time.Duration, task Task)

	// Clear drops every queued task
	Clear()
}

type scheduledTask struct {
	due  time.Time
	task Task
}

// FrameScheduler runs a task on the first frame at or after its delay has elapsed
// A task therefore waits for its delay and then for the next frame, like a timer that hands off to a frame callback
// Not safe for concurrent use; Schedule and RunFrame are both called from the event loop goroutine
type FrameScheduler struct {
	clock   Clock
	pending []scheduledTask
}

// NewFrameScheduler creates a scheduler reading time from clock
func NewFrameScheduler(clock Clock) *FrameScheduler {
	return &FrameScheduler{clock: clock}
}

// Schedule queues task to run no earlier than delay from now
func (s *FrameScheduler) Schedule(delay time.Duration, task Task) {
	s.pending = append(s.pending, scheduledTask{
		due:  s.clock.Now().Add(delay),
		task: task,
	})
}

// RunFrame runs every due task in scheduling order and returns how many ran
// Tasks scheduled while the frame runs wait for a later frame
func (s *FrameScheduler) RunFrame() int {
	if len(s.pending) == 0 {
		return 0
	}

	now := s.clock.Now()
	var due []scheduledTask
	kept := s.pending[:0]
	for _, st := range s.pending {
		if st.due.After(now) {
			kept = append(kept, st)
		} else {
			due = append(due, st)
		}
	}
	clear(s.pending[len(kept):])
	s.pending = kept

	for _, st := range due {
		st.task()
	}
	return len(due)
}

// Pending returns the number of queued tasks
func (s *FrameScheduler) Pending() int {
	return len(s.pending)
}

// Clear drops every queued task
func (s *FrameScheduler) Clear() {
	clear(s.pending)
	s.pending = s.pending[:0]
}
