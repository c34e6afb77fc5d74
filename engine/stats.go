package engine

import (
	"fmt"
	"io"
	"time"
)

// Stats collects counters for one search.
type Stats struct {
	Nodes      uint64 // moves played, root moves included
	Leaves     uint64 // nodes scored by material at full depth
	Mates      uint64
	Stalemates uint64
	Cutoffs    uint64 // frames closed before their last move
	Elapsed    time.Duration
}

// NodesPerSecond returns the search speed, or 0 for an instant search.
func (st Stats) NodesPerSecond() uint64 {
	if st.Elapsed <= 0 {
		return 0
	}
	return uint64(float64(st.Nodes) / st.Elapsed.Seconds())
}

// Dump writes the counters in a human readable form.
func (st Stats) Dump(w io.Writer) {
	fmt.Fprintln(w, "Search statistics:")
	fmt.Fprintf(w, "  Nodes: %d\n", st.Nodes)
	fmt.Fprintf(w, "  Leaves: %d\n", st.Leaves)
	fmt.Fprintf(w, "  Mates: %d\n", st.Mates)
	fmt.Fprintf(w, "  Stalemates: %d\n", st.Stalemates)
	fmt.Fprintf(w, "  Cutoffs: %d\n", st.Cutoffs)
	fmt.Fprintf(w, "  Elapsed: %s\n", st.Elapsed)
	fmt.Fprintf(w, "  NPS: %d\n", st.NodesPerSecond())
}
