package balloonpump

import "time"

// Task is a repeating callback owned by a Scheduler.
type Task struct {
	id       uint32
	interval time.Duration
	due      time.Duration
	fn       func() bool
	stopped  bool
}

// Cancel stops the task. It will not fire again, even if already due in the
// current Advance call.
func (t *Task) Cancel() {
	if t != nil {
		t.stopped = true
	}
}

// Stopped reports whether the task was cancelled or returned false.
func (t *Task) Stopped() bool {
	return t.stopped
}

// Scheduler runs repeating tasks against virtual time. There is no goroutine:
// tasks only fire inside Advance, in due-time order, ties broken by
// registration order.
type Scheduler struct {
	now    time.Duration
	tasks  []*Task
	nextID uint32
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every registers fn to run once per interval, first at now+interval. fn
// returns false to stop repeating.
func (s *Scheduler) Every(interval time.Duration, fn func() bool) *Task {
	if interval <= 0 {
		panic("balloonpump: scheduler interval must be positive")
	}
	s.nextID++
	t := &Task{
		id:       s.nextID,
		interval: interval,
		due:      s.now + interval,
		fn:       fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d, firing every task that falls due.
// Tasks registered by a callback are eligible in the same call.
func (s *Scheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.due
		if !t.fn() {
			t.stopped = true
		}
		t.due += t.interval
	}
	s.now = target
	s.compact()
}

// nextDue returns the earliest live task due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *Task {
	var best *Task
	for _, t := range s.tasks {
		if t.stopped || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

// compact drops stopped tasks, keeping registration order.
func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
