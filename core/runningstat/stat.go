// Package runningstat implements Knuth and Welford's method for computing the standard deviation.
package runningstat

// RunningStat collects statistics and allows computing min, max, mean, and variance.
// Algorithm comes from https://www.johndcook.com/blog/standard_deviation/ .
// The zero value is ready to use.
type RunningStat struct {
	n        uint64
	m1, m2   float64
	min, max uint64
}

// Push adds an input.
func (s *RunningStat) Push(x uint64) {
	s.n++
	if s.n == 1 {
		s.m1, s.m2 = float64(x), 0
		s.min, s.max = x, x
		return
	}

	if x < s.min {
		s.min = x
	}
	if x > s.max {
		s.max = x
	}
	delta := float64(x) - s.m1
	s.m1 += delta / float64(s.n)
	s.m2 += delta * (float64(x) - s.m1)
}

// Read returns current counters as Snapshot.
func (s RunningStat) Read() Snapshot {
	return newSnapshot(s.n, s.m1, s.m2, s.min, s.max)
}
