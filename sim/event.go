package sim

// EventKind tags the four station transitions the engine dispatches on.
type EventKind int

const (
	// ReceptionArrival creates a client and schedules the next arrival.
	ReceptionArrival EventKind = iota
	// ReceptionDeparture moves the reception client into the transit slot.
	ReceptionDeparture
	// TellerArrival takes the transit client to the teller station.
	TellerArrival
	// TellerDeparture completes a client's visit and records statistics.
	TellerDeparture
)

var eventKindNames = map[EventKind]string{
	ReceptionArrival:   "ReceptionArrival",
	ReceptionDeparture: "ReceptionDeparture",
	TellerArrival:      "TellerArrival",
	TellerDeparture:    "TellerDeparture",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Event is a scheduled station transition. It carries only its timestamp,
// its kind, and the client it concerns (nil for ReceptionArrival, whose
// client does not exist until the event is processed).
type Event struct {
	Time   int64 // Simulation time at which the event fires (in ticks)
	Kind   EventKind
	Client *Client

	seq uint64 // insertion order, assigned by EventQueue.Push
}
