package sim

import (
	"errors"
	"math"
	"testing"
)

func TestStatistics_RecordCompletion_Accumulates(t *testing.T) {
	// GIVEN an empty accumulator
	s := NewStatistics()

	// WHEN two clients complete
	s.RecordCompletion(5, 600)
	s.RecordCompletion(1, 200)

	// THEN counters add up and the average is total time / clients
	if s.ClientsServed != 2 {
		t.Errorf("ClientsServed = %d, want 2", s.ClientsServed)
	}
	if s.TransactionsCompleted != 6 {
		t.Errorf("TransactionsCompleted = %d, want 6", s.TransactionsCompleted)
	}
	if s.TotalSystemTime != 800 {
		t.Errorf("TotalSystemTime = %d, want 800", s.TotalSystemTime)
	}
	avg, err := s.AverageTimeInSystem()
	if err != nil {
		t.Fatalf("AverageTimeInSystem: unexpected error %v", err)
	}
	if avg != 400 {
		t.Errorf("AverageTimeInSystem = %v, want 400", avg)
	}
}

func TestStatistics_AverageTimeInSystem_NoData(t *testing.T) {
	s := NewStatistics()
	avg, err := s.AverageTimeInSystem()
	if !errors.Is(err, ErrNoData) {
		t.Errorf("err = %v, want ErrNoData", err)
	}
	if !math.IsNaN(avg) {
		t.Errorf("avg = %v, want NaN", avg)
	}
	if !math.IsNaN(s.Percentile(0.5)) {
		t.Error("Percentile with no data: want NaN")
	}
}

func TestStatistics_Percentile(t *testing.T) {
	s := NewStatistics()
	for _, v := range []int64{500, 100, 400, 200, 300} {
		s.RecordCompletion(1, v)
	}

	tests := []struct {
		p    float64
		want float64
	}{
		{0.2, 100},
		{0.5, 300},
		{0.9, 500},
		{1.0, 500},
	}
	for _, tt := range tests {
		if got := s.Percentile(tt.p); got != tt.want {
			t.Errorf("Percentile(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	// samples keep completion order
	if s.SystemTimes[0] != 500 {
		t.Errorf("SystemTimes[0] = %d, want 500 (completion order)", s.SystemTimes[0])
	}
}

func TestStatistics_RecordCompletion_NegativeTimePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on negative time in system")
		}
	}()
	NewStatistics().RecordCompletion(1, -1)
}
