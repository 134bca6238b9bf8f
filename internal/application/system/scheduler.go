package system

import "sort"

// Scheduler runs named jobs on a shared tick counter.
// All periodic work of a match goes through one scheduler, advanced once
// per frame, so jobs never run concurrently or out of order.
type Scheduler struct {
	tick uint64
	jobs map[string]*job
	seq  int
}

type job struct {
	name   string
	period uint64
	next   uint64
	once   bool
	order  int
	fn     func()
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{jobs: make(map[string]*job)}
}

// Every registers fn to run every period ticks, first on the next Tick.
// Registering a name that is already scheduled is a no-op and returns false.
func (s *Scheduler) Every(name string, period int, fn func()) bool {
	return s.add(name, period, false, fn)
}

// After registers fn to run once, delay ticks from now.
// Registering a name that is already scheduled is a no-op and returns false.
func (s *Scheduler) After(name string, delay int, fn func()) bool {
	return s.add(name, delay, true, fn)
}

func (s *Scheduler) add(name string, period int, once bool, fn func()) bool {
	if _, ok := s.jobs[name]; ok {
		return false
	}
	if period < 1 {
		period = 1
	}
	s.seq++
	j := &job{
		name:   name,
		period: uint64(period),
		once:   once,
		order:  s.seq,
		fn:     fn,
	}
	if once {
		j.next = s.tick + uint64(period)
	} else {
		j.next = s.tick + 1
	}
	s.jobs[name] = j
	return true
}

// Cancel removes a job. Unknown names are ignored.
func (s *Scheduler) Cancel(name string) {
	delete(s.jobs, name)
}

// Running returns true if a job with that name is scheduled
func (s *Scheduler) Running(name string) bool {
	_, ok := s.jobs[name]
	return ok
}

// Stop cancels every job
func (s *Scheduler) Stop() {
	s.jobs = make(map[string]*job)
}

// Len returns the number of scheduled jobs
func (s *Scheduler) Len() int {
	return len(s.jobs)
}

// Tick advances the clock and runs due jobs in registration order.
// Jobs cancelled by an earlier job in the same tick do not run.
func (s *Scheduler) Tick() {
	s.tick++

	due := make([]*job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if j.next <= s.tick {
			due = append(due, j)
		}
	}
	sort.Slice(due, func(a, b int) bool { return due[a].order < due[b].order })

	for _, j := range due {
		if s.jobs[j.name] != j {
			continue
		}
		if j.once {
			delete(s.jobs, j.name)
		} else {
			j.next = s.tick + j.period
		}
		j.fn()
	}
}
