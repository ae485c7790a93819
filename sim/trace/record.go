// Package trace provides event-trace recording for inspecting a simulation run.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// EventRecord captures a single processed event and the station state right after it.
type EventRecord struct {
	Clock            int64
	Kind             string
	ClientID         int64 // 0 when no client was involved
	ReceptionServing int64 // client ID at the reception server, 0 if idle
	ReceptionWaiting []int64
	TellerServing    int64 // client ID at the teller server, 0 if idle
	TellerWaiting    []int64
}
