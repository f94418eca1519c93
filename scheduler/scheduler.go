// Package scheduler runs deferred and repeating callbacks on the simulation
// clock. Everything happens on the game loop goroutine: callbacks fire from
// Advance, which the timers system calls at the start of every tick.
package scheduler

import "container/heap"

// Callback receives the timer that fired. Calling Stop on it from inside the
// callback cancels any further repeats.
type Callback func(t *Timer)

// Timer is a handle to a scheduled callback.
type Timer struct {
	due      float64
	interval float64
	repeat   bool
	seq      uint64
	index    int // position in the heap, -1 when not queued
	stopped  bool
	context  any
	fn       Callback
	owner    *Scheduler
}

// Stop cancels all future firings. Stopping twice, or stopping a timer that
// already fired for the last time, is a no-op.
func (t *Timer) Stop() {
	if t == nil || t.stopped {
		return
	}
	t.stopped = true
	if t.index >= 0 && t.owner != nil {
		heap.Remove(&t.owner.queue, t.index)
	}
}

// Stopped reports whether the timer was cancelled or finished its last firing.
func (t *Timer) Stopped() bool {
	return t == nil || t.stopped
}

// Context returns the value passed to Schedule.
func (t *Timer) Context() any {
	return t.context
}

// Scheduler returns the scheduler the timer was created on, so a callback can
// schedule follow-up work.
func (t *Timer) Scheduler() *Scheduler {
	return t.owner
}

// ContextAs returns the timer context converted to T.
func ContextAs[T any](t *Timer) (T, bool) {
	v, ok := t.context.(T)
	return v, ok
}

// Scheduler owns the pending timers and the simulation time they are measured in.
type Scheduler struct {
	now   float64
	seq   uint64
	queue timerQueue
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the accumulated simulation time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Pending returns the number of queued timers.
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}

// Schedule queues fn to run delay seconds from now. A repeating timer keeps
// firing every delay seconds until stopped.
func (s *Scheduler) Schedule(delay float64, repeat bool, context any, fn Callback) *Timer {
	if delay < 0 {
		delay = 0
	}
	t := &Timer{
		due:      s.now + delay,
		interval: delay,
		repeat:   repeat,
		context:  context,
		fn:       fn,
		owner:    s,
		index:    -1,
	}
	s.push(t)
	return t
}

// Advance moves the clock forward by dt and fires every timer that came due,
// earliest first and in schedule order on ties. A repeating timer fires at
// most once per call. It returns the number of callbacks run.
func (s *Scheduler) Advance(dt float64) int {
	s.now += dt

	fired := 0
	var rearm []*Timer
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.due > s.now {
			break
		}
		heap.Pop(&s.queue)

		if !next.repeat {
			next.stopped = true
		}
		if next.fn != nil {
			next.fn(next)
		}
		fired++

		if next.repeat && !next.stopped {
			rearm = append(rearm, next)
		}
	}

	for _, t := range rearm {
		if t.stopped {
			continue
		}
		t.due += t.interval
		if t.due <= s.now {
			t.due = s.now + t.interval
		}
		s.push(t)
	}
	return fired
}

// Clear stops every pending timer.
func (s *Scheduler) Clear() {
	for s.queue.Len() > 0 {
		t := heap.Pop(&s.queue).(*Timer)
		t.stopped = true
	}
}

func (s *Scheduler) push(t *Timer) {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.queue, t)
}

type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
