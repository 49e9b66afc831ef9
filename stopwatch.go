package main

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Watch accumulates wall-clock time per named phase of a run, so a
// slow solve can be blamed on parsing, checking or searching. The REPL
// keeps adding to it across puzzles until asked to reset.
var Watch = NewStopwatch()

type Stopwatch struct {
	totals map[string]time.Duration
	starts map[string]time.Time
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{
		totals: make(map[string]time.Duration),
		starts: make(map[string]time.Time),
	}
}

func (s *Stopwatch) Start(bucket string) {
	s.starts[bucket] = time.Now()
}

// Stop adds the time since the matching Start to the bucket. A Stop
// without a Start is ignored.
func (s *Stopwatch) Stop(bucket string) {
	start, ok := s.starts[bucket]
	if !ok {
		return
	}
	s.totals[bucket] += time.Since(start)
	delete(s.starts, bucket)
}

func (s *Stopwatch) Reset() {
	s.totals = make(map[string]time.Duration)
	s.starts = make(map[string]time.Time)
}

// Results lists the buckets in name order, one per line, in seconds.
func (s *Stopwatch) Results() string {
	names := make([]string, 0, len(s.totals))
	for name := range s.totals {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %.4f\n", name, s.totals[name].Seconds())
	}
	return b.String()
}
