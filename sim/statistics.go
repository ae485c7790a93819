// Tracks per-client completion statistics recorded at teller departure.

package sim

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrNoData is returned when an average is requested before any client was served.
var ErrNoData = errors.New("no clients served")

// Statistics aggregates completed client visits.
// All counters only grow, and only at teller departure.
type Statistics struct {
	ClientsServed         int   // Number of clients that left the teller
	TransactionsCompleted int   // Sum of transactions over served clients
	TotalSystemTime       int64 // Sum of (departure - arrival) over served clients

	SystemTimes []int64 // time-in-system per served client, in completion order
}

// NewStatistics creates an empty accumulator.
func NewStatistics() *Statistics {
	return &Statistics{SystemTimes: make([]int64, 0)}
}

// RecordCompletion accounts for one client leaving the bank.
func (s *Statistics) RecordCompletion(transactions int, timeInSystem int64) {
	if timeInSystem < 0 {
		panic("RecordCompletion: negative time in system")
	}
	s.ClientsServed++
	s.TransactionsCompleted += transactions
	s.TotalSystemTime += timeInSystem
	s.SystemTimes = append(s.SystemTimes, timeInSystem)
}

// AverageTimeInSystem returns the mean time-in-system over served clients,
// or ErrNoData if none were served.
func (s *Statistics) AverageTimeInSystem() (float64, error) {
	if s.ClientsServed == 0 {
		return math.NaN(), ErrNoData
	}
	return float64(s.TotalSystemTime) / float64(s.ClientsServed), nil
}

// Percentile returns the p-th quantile (0 < p ≤ 1) of time-in-system using
// the empirical CDF, or NaN if no client was served.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.SystemTimes) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.SystemTimes))
	for i, v := range s.SystemTimes {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}
