package sim

import (
	"fmt"
	"math"
)

// StationSnapshot reports per-station figures at the end of a run.
type StationSnapshot struct {
	Name          string  `yaml:"name" json:"name"`
	ClientsServed int     `yaml:"clients_served" json:"clients_served"`
	PeakWaiting   int     `yaml:"peak_waiting" json:"peak_waiting"`
	Waiting       int     `yaml:"waiting" json:"waiting"`
	Utilization   float64 `yaml:"utilization" json:"utilization"` // busy time of finished services / clock
}

// Snapshot is a read-only report of a simulation, taken after Run returns.
// AverageTimeInSystem and the percentiles are NaN when no client was served.
type Snapshot struct {
	ClientsServed         int     `yaml:"clients_served" json:"clients_served"`
	TransactionsCompleted int     `yaml:"transactions_completed" json:"transactions_completed"`
	AverageTimeInSystem   float64 `yaml:"average_time_in_system" json:"average_time_in_system"`
	P50TimeInSystem       float64 `yaml:"p50_time_in_system" json:"p50_time_in_system"`
	P90TimeInSystem       float64 `yaml:"p90_time_in_system" json:"p90_time_in_system"`
	P99TimeInSystem       float64 `yaml:"p99_time_in_system" json:"p99_time_in_system"`

	ClientsArrived  int64 `yaml:"clients_arrived" json:"clients_arrived"`
	InSystem        int   `yaml:"in_system" json:"in_system"`
	Clock           int64 `yaml:"clock" json:"clock"`
	EventsProcessed int   `yaml:"events_processed" json:"events_processed"`

	Reception StationSnapshot `yaml:"reception" json:"reception"`
	Teller    StationSnapshot `yaml:"teller" json:"teller"`
}

// Snapshot returns the statistics accumulated so far.
func (sim *Simulator) Snapshot() Snapshot {
	avg, _ := sim.Stats.AverageTimeInSystem() // NaN when nothing served
	return Snapshot{
		ClientsServed:         sim.Stats.ClientsServed,
		TransactionsCompleted: sim.Stats.TransactionsCompleted,
		AverageTimeInSystem:   avg,
		P50TimeInSystem:       sim.Stats.Percentile(0.50),
		P90TimeInSystem:       sim.Stats.Percentile(0.90),
		P99TimeInSystem:       sim.Stats.Percentile(0.99),
		ClientsArrived:        sim.ClientsArrived,
		InSystem:              sim.InSystem(),
		Clock:                 sim.Clock,
		EventsProcessed:       sim.EventsProcessed,
		Reception:             stationSnapshot(sim.Reception, sim.Clock),
		Teller:                stationSnapshot(sim.Teller, sim.Clock),
	}
}

func stationSnapshot(s *Station, clock int64) StationSnapshot {
	util := 0.0
	if clock > 0 {
		util = float64(s.BusyTime) / float64(clock)
	}
	return StationSnapshot{
		Name:          s.Name,
		ClientsServed: s.ClientsServed,
		PeakWaiting:   s.PeakWaiting,
		Waiting:       s.Waiting.Len(),
		Utilization:   util,
	}
}

// Print displays the snapshot at the end of the simulation.
func (s Snapshot) Print() {
	fmt.Println("=== Simulation Statistics ===")
	fmt.Printf("Clients Arrived        : %d\n", s.ClientsArrived)
	fmt.Printf("Clients Served         : %d\n", s.ClientsServed)
	fmt.Printf("Transactions Completed : %d\n", s.TransactionsCompleted)
	fmt.Printf("Still In System        : %d\n", s.InSystem)
	if math.IsNaN(s.AverageTimeInSystem) {
		fmt.Println("Average Time In System : n/a (no clients served)")
		return
	}
	fmt.Printf("Average Time In System : %.2f ticks\n", s.AverageTimeInSystem)
	fmt.Printf("P50 / P90 / P99        : %.0f / %.0f / %.0f ticks\n", s.P50TimeInSystem, s.P90TimeInSystem, s.P99TimeInSystem)
	for _, st := range []StationSnapshot{s.Reception, s.Teller} {
		fmt.Printf("%-10s served=%d peak line=%d utilization=%.2f\n", st.Name, st.ClientsServed, st.PeakWaiting, st.Utilization)
	}
}
