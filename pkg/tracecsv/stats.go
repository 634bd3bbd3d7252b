// Per-operation statistics over a reconstructed trace tree.
// Summarises span counts, message counts, and duration distributions.
package tracecsv

import (
	"sort"
	"time"
)

// OpStats accumulates statistics for one operation name.
type OpStats struct {
	Operation string
	SpanCount int
	MsgCount  int
	Durations []time.Duration
}

// Min returns the shortest observed span duration.
func (s *OpStats) Min() time.Duration {
	min := s.Durations[0]
	for _, d := range s.Durations[1:] {
		if d < min {
			min = d
		}
	}
	return min
}

// Max returns the longest observed span duration.
func (s *OpStats) Max() time.Duration {
	max := s.Durations[0]
	for _, d := range s.Durations[1:] {
		if d > max {
			max = d
		}
	}
	return max
}

// Mean returns the mean span duration.
func (s *OpStats) Mean() time.Duration {
	var total time.Duration
	for _, d := range s.Durations {
		total += d
	}
	return total / time.Duration(len(s.Durations))
}

// CollectStats walks the tree and accumulates per-operation statistics,
// returned sorted by operation name for deterministic output.
func CollectStats(root *TraceNode) []*OpStats {
	byOp := make(map[string]*OpStats)
	var walk func(n *TraceNode)
	walk = func(n *TraceNode) {
		s, ok := byOp[n.Operation]
		if !ok {
			s = &OpStats{Operation: n.Operation}
			byOp[n.Operation] = s
		}
		s.SpanCount++
		s.MsgCount += len(n.Messages)
		s.Durations = append(s.Durations, n.Duration)
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)

	stats := make([]*OpStats, 0, len(byOp))
	for _, s := range byOp {
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Operation < stats[j].Operation })
	return stats
}
