package sim

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
)

// RandomSource is the single uniform source the engine draws from.
// Float64 must return a value in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Exponential draws from an exponential distribution with the given mean
// by inverse transform: -mean * ln(u).
func Exponential(src RandomSource, mean float64) float64 {
	u := src.Float64()
	if u <= 0 {
		u = math.SmallestNonzeroFloat64 // keep ln(u) finite
	}
	return -mean * math.Log(u)
}

// UniformInt draws an integer uniformly from [lo, hi] inclusive.
func UniformInt(src RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	v := lo + int(src.Float64()*float64(hi-lo+1))
	if v > hi {
		return hi
	}
	return v
}

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce identical statistics.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

// SubsystemArrivals is the RNG subsystem feeding a single simulation run.
// Uses the master seed directly so --seed maps one-to-one onto a run.
const SubsystemArrivals = "arrivals"

// SubsystemReplication returns the subsystem name for replication N.
func SubsystemReplication(id int) string {
	return fmt.Sprintf("replication_%d", id)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemArrivals: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemArrivals {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
