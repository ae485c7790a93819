// Package sim provides the discrete-event simulation engine for a two-stage bank:
// a reception desk feeding a teller desk, each a single server with an unbounded FIFO line.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - client.go: the immutable Client created at reception arrival
//   - event.go: the four event kinds (ReceptionArrival, ReceptionDeparture, TellerArrival, TellerDeparture)
//   - simulator.go: the event loop and the transition run for each event kind
//
// # Time
//
// The clock is an int64 tick count. Inter-arrival gaps are drawn from an exponential
// distribution and truncated to whole ticks; service time is the client's transaction
// count times Config.ServiceTimePerTransaction. Run(horizon) covers [clock, horizon):
// the first event at or after the horizon stays pending.
//
// # Determinism
//
// All randomness flows through one injected RandomSource. Events with equal timestamps
// are processed in the order they were scheduled, so a seeded source replays exactly.
package sim
