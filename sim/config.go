package sim

import (
	"fmt"
	"math"
)

// Default model parameters, in ticks.
const (
	DefaultArrivalMean               = 120.0 // mean gap between client arrivals
	DefaultServiceTimePerTransaction = 60    // server time per transaction
	DefaultMinTransactions           = 1
	DefaultMaxTransactions           = 100
)

// Config groups the bank model parameters. The simulation horizon is
// passed to Simulator.Run rather than stored here.
type Config struct {
	ArrivalMean               float64 // mean of the exponential inter-arrival gap (finite, > 0)
	ServiceTimePerTransaction int64   // ticks a station spends per transaction (≥ 0)
	MinTransactions           int     // lower bound of the per-client transaction draw (≥ 1)
	MaxTransactions           int     // upper bound of the per-client transaction draw (≥ MinTransactions)
}

// DefaultConfig returns the parameters of the reference bank model.
func DefaultConfig() Config {
	return Config{
		ArrivalMean:               DefaultArrivalMean,
		ServiceTimePerTransaction: DefaultServiceTimePerTransaction,
		MinTransactions:           DefaultMinTransactions,
		MaxTransactions:           DefaultMaxTransactions,
	}
}

// Validate reports the first invalid field, if any.
func (c Config) Validate() error {
	if !(c.ArrivalMean > 0) || math.IsInf(c.ArrivalMean, 0) {
		return fmt.Errorf("arrival mean must be finite and > 0, got %v", c.ArrivalMean)
	}
	if c.ServiceTimePerTransaction < 0 {
		return fmt.Errorf("service time per transaction must be >= 0, got %d", c.ServiceTimePerTransaction)
	}
	if c.MinTransactions < 1 {
		return fmt.Errorf("min transactions must be >= 1, got %d", c.MinTransactions)
	}
	if c.MaxTransactions < c.MinTransactions {
		return fmt.Errorf("max transactions (%d) must be >= min transactions (%d)", c.MaxTransactions, c.MinTransactions)
	}
	return nil
}
