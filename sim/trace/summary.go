package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents     int
	KindCounts      map[string]int // event kind → number processed
	FirstClock      int64
	LastClock       int64
	Monotonic       bool // clock never decreased between consecutive records
	PeakReception   int  // longest reception line seen
	PeakTeller      int  // longest teller line seen
	DistinctClients int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields, Monotonic=true).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		KindCounts: make(map[string]int),
		Monotonic:  true,
	}
	if st == nil || len(st.Events) == 0 {
		return summary
	}

	clients := make(map[int64]bool)
	summary.TotalEvents = len(st.Events)
	summary.FirstClock = st.Events[0].Clock
	prev := st.Events[0].Clock
	for _, e := range st.Events {
		summary.KindCounts[e.Kind]++
		if e.Clock < prev {
			summary.Monotonic = false
		}
		prev = e.Clock
		if e.ClientID != 0 {
			clients[e.ClientID] = true
		}
		if n := len(e.ReceptionWaiting); n > summary.PeakReception {
			summary.PeakReception = n
		}
		if n := len(e.TellerWaiting); n > summary.PeakTeller {
			summary.PeakTeller = n
		}
	}
	summary.LastClock = prev
	summary.DistinctClients = len(clients)

	return summary
}
