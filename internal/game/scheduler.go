package game

// Scheduler runs periodic jobs off a single monotonic tick counter. A job with
// period n fires on every tick where tick%n == 0. Disarming stops everything at once.
type Scheduler struct {
	tick  uint64
	armed bool
	jobs  []job
}

type job struct {
	every uint64
	run   func()
}

// Every registers fn to run once every n ticks (n < 1 is treated as 1)
func (s *Scheduler) Every(n int, fn func()) {
	if n < 1 {
		n = 1
	}
	s.jobs = append(s.jobs, job{every: uint64(n), run: fn})
}

// Arm resets the tick counter and enables jobs
func (s *Scheduler) Arm() {
	s.tick = 0
	s.armed = true
}

// Disarm stops all jobs. Safe to call from inside a job: jobs later in the
// same tick are skipped.
func (s *Scheduler) Disarm() {
	s.armed = false
}

// Armed reports whether Step will run jobs
func (s *Scheduler) Armed() bool {
	return s.armed
}

// Tick returns the number of ticks since the last Arm
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// Step advances one tick and runs the jobs that are due, in registration order.
// It returns false without advancing when disarmed.
func (s *Scheduler) Step() bool {
	if !s.armed {
		return false
	}
	s.tick++
	for _, j := range s.jobs {
		if !s.armed {
			break
		}
		if s.tick%j.every == 0 {
			j.run()
		}
	}
	return true
}
