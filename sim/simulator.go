// sim/simulator.go
package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/bank-sim/bank-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, station state, and the event loop.
// All mutable state is owned here and only changed by the handlers below;
// events carry no references back to the Simulator.
type Simulator struct {
	Clock int64
	Cfg   Config

	// EventQueue has all pending events; exactly one event is in flight while a handler runs.
	EventQueue *EventQueue
	Reception  *Station
	Teller     *Station
	// Transit holds the client between ReceptionDeparture and the matching TellerArrival.
	Transit *Client
	Stats   *Statistics

	EventsProcessed int
	ClientsArrived  int64

	rng     RandomSource
	started bool
	trace   *trace.SimulationTrace
}

// NewSimulator creates a simulator at clock 0 with idle stations.
func NewSimulator(cfg Config, rng RandomSource) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if rng == nil {
		return nil, errors.New("random source must not be nil")
	}
	return &Simulator{
		Clock:      0,
		Cfg:        cfg,
		EventQueue: NewEventQueue(),
		Reception:  NewStation("reception"),
		Teller:     NewStation("teller"),
		Stats:      NewStatistics(),
		rng:        rng,
	}, nil
}

// EnableTrace starts recording every processed event.
func (sim *Simulator) EnableTrace(cfg trace.TraceConfig) {
	if !cfg.Enabled() {
		sim.trace = nil
		return
	}
	sim.trace = trace.NewSimulationTrace(cfg)
}

// Trace returns the recorded event trace, or nil if tracing is off.
func (sim *Simulator) Trace() *trace.SimulationTrace {
	return sim.trace
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	if ev.Time < sim.Clock {
		panic(fmt.Sprintf("Schedule: %s at %d is before clock %d", ev.Kind, ev.Time, sim.Clock))
	}
	sim.EventQueue.Push(ev)
}

// Run processes events in timestamp order while the next event is earlier than horizon.
// The first call seeds the arrival stream; later calls resume where the previous one stopped.
// The event that reaches the horizon is left pending and not processed.
func (sim *Simulator) Run(horizon int64) error {
	if !sim.started {
		sim.started = true
		sim.scheduleNextArrival()
	}
	logrus.Infof("[tick %07d] Simulation started, horizon=%d", sim.Clock, horizon)

	for {
		next, ok := sim.EventQueue.Peek()
		if !ok {
			return fmt.Errorf("run stopped at tick %d: %w", sim.Clock, ErrEmptyQueue)
		}
		if next.Time >= horizon {
			break
		}
		ev, err := sim.EventQueue.Pop()
		if err != nil {
			return fmt.Errorf("run stopped at tick %d: %w", sim.Clock, err)
		}
		sim.process(ev)
	}

	logrus.Infof("[tick %07d] Simulation ended, %d clients served", sim.Clock, sim.Stats.ClientsServed)
	return nil
}

// process advances the clock to ev and dispatches it to its transition.
func (sim *Simulator) process(ev Event) {
	if ev.Time < sim.Clock {
		panic(fmt.Sprintf("process: %s at %d is before clock %d", ev.Kind, ev.Time, sim.Clock))
	}
	sim.Clock = ev.Time
	logrus.Debugf("[tick %07d] Executing %s", sim.Clock, ev.Kind)

	var client *Client
	switch ev.Kind {
	case ReceptionArrival:
		client = sim.onReceptionArrival()
	case ReceptionDeparture:
		client = sim.onReceptionDeparture(ev)
	case TellerArrival:
		client = sim.onTellerArrival(ev)
	case TellerDeparture:
		client = sim.onTellerDeparture(ev)
	default:
		panic(fmt.Sprintf("process: unknown event kind %d", ev.Kind))
	}
	sim.EventsProcessed++
	sim.record(ev.Kind, client)
}

// onReceptionArrival creates a client, admits it to reception, and
// schedules the next arrival regardless of queue state.
func (sim *Simulator) onReceptionArrival() *Client {
	sim.ClientsArrived++
	client := newClient(sim.ClientsArrived, sim.Clock, sim.Cfg, sim.rng)
	logrus.Debugf("<< Arrival: %v", client)

	if sim.Reception.Admit(client) {
		sim.scheduleDeparture(ReceptionDeparture, client)
	}
	sim.scheduleNextArrival()
	return client
}

// onReceptionDeparture moves the finished client into transit towards the
// teller and starts the next waiting client, if any.
func (sim *Simulator) onReceptionDeparture(ev Event) *Client {
	if sim.Transit != nil {
		panic(fmt.Sprintf("onReceptionDeparture: transit slot already holds client %d", sim.Transit.ID))
	}
	client := sim.Reception.Release(ev.Client, sim.Cfg.ServiceTimePerTransaction)
	sim.Transit = client
	sim.Schedule(Event{Time: sim.Clock, Kind: TellerArrival, Client: client})

	if next := sim.Reception.StartNext(); next != nil {
		sim.scheduleDeparture(ReceptionDeparture, next)
	}
	logrus.Debugf("   reception line: %v", sim.Reception.Waiting)
	return client
}

// onTellerArrival takes the client out of transit and admits it to the teller.
func (sim *Simulator) onTellerArrival(ev Event) *Client {
	client := sim.Transit
	if client == nil {
		panic("onTellerArrival: transit slot is empty")
	}
	if ev.Client != nil && ev.Client != client {
		panic(fmt.Sprintf("onTellerArrival: event for client %d but transit holds client %d", ev.Client.ID, client.ID))
	}
	sim.Transit = nil

	if sim.Teller.Admit(client) {
		sim.scheduleDeparture(TellerDeparture, client)
	}
	return client
}

// onTellerDeparture records the finished visit and starts the next waiting client, if any.
func (sim *Simulator) onTellerDeparture(ev Event) *Client {
	client := sim.Teller.Release(ev.Client, sim.Cfg.ServiceTimePerTransaction)
	sim.Stats.RecordCompletion(client.Transactions, sim.Clock-client.ArrivalTime)
	logrus.Debugf(">> Departure: client %d after %d ticks in system", client.ID, sim.Clock-client.ArrivalTime)

	if next := sim.Teller.StartNext(); next != nil {
		sim.scheduleDeparture(TellerDeparture, next)
	}
	return client
}

// scheduleDeparture schedules kind for a client that just entered service.
func (sim *Simulator) scheduleDeparture(kind EventKind, client *Client) {
	sim.Schedule(Event{
		Time:   addTicks(sim.Clock, client.ServiceTime(sim.Cfg.ServiceTimePerTransaction)),
		Kind:   kind,
		Client: client,
	})
}

// scheduleNextArrival draws the next inter-arrival gap, truncated to whole ticks.
// Gaps too large for int64 saturate at math.MaxInt64.
func (sim *Simulator) scheduleNextArrival() {
	var gap int64 = math.MaxInt64
	if g := Exponential(sim.rng, sim.Cfg.ArrivalMean); g < math.MaxInt64 {
		gap = int64(g)
	}
	sim.Schedule(Event{Time: addTicks(sim.Clock, gap), Kind: ReceptionArrival})
}

// addTicks returns now+d, saturating at math.MaxInt64. d must be >= 0.
func addTicks(now, d int64) int64 {
	if d > math.MaxInt64-now {
		return math.MaxInt64
	}
	return now + d
}

// InSystem returns the number of clients that arrived but have not left the teller.
func (sim *Simulator) InSystem() int {
	n := sim.Reception.InSystem() + sim.Teller.InSystem()
	if sim.Transit != nil {
		n++
	}
	return n
}

func (sim *Simulator) record(kind EventKind, client *Client) {
	if sim.trace == nil {
		return
	}
	rec := trace.EventRecord{
		Clock:            sim.Clock,
		Kind:             kind.String(),
		ReceptionServing: clientID(sim.Reception.InService),
		ReceptionWaiting: waitingIDs(sim.Reception.Waiting),
		TellerServing:    clientID(sim.Teller.InService),
		TellerWaiting:    waitingIDs(sim.Teller.Waiting),
	}
	if client != nil {
		rec.ClientID = client.ID
	}
	sim.trace.RecordEvent(rec)
}

func clientID(c *Client) int64 {
	if c == nil {
		return 0
	}
	return c.ID
}

func waitingIDs(wq *WaitQueue) []int64 {
	ids := make([]int64, 0, wq.Len())
	for _, c := range wq.Items() {
		ids = append(ids, c.ID)
	}
	return ids
}
