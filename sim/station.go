package sim

import "fmt"

// Station is a single-server service point with an unbounded FIFO line.
// A client is in Waiting only while InService is occupied.
type Station struct {
	Name      string
	InService *Client    // client at the server, nil when idle
	Waiting   *WaitQueue // clients waiting for the server

	PeakWaiting   int   // longest line observed
	BusyTime      int64 // total service time of clients that finished here
	ClientsServed int   // number of clients that finished service here
}

// NewStation creates an idle station with an empty line.
func NewStation(name string) *Station {
	return &Station{Name: name, Waiting: &WaitQueue{}}
}

// Busy reports whether the server holds a client.
func (s *Station) Busy() bool {
	return s.InService != nil
}

// Admit puts c at the server if it is idle and reports true;
// otherwise c joins the back of the line and Admit reports false.
func (s *Station) Admit(c *Client) bool {
	if c == nil {
		panic(fmt.Sprintf("%s.Admit: client must not be nil", s.Name))
	}
	if s.InService == nil {
		s.InService = c
		return true
	}
	s.Waiting.Enqueue(c)
	if n := s.Waiting.Len(); n > s.PeakWaiting {
		s.PeakWaiting = n
	}
	return false
}

// Release empties the server and returns the client that was in service.
// want must be the client the departure was scheduled for.
func (s *Station) Release(want *Client, perTransaction int64) *Client {
	c := s.InService
	if c == nil {
		panic(fmt.Sprintf("%s.Release: no client in service", s.Name))
	}
	if want != nil && c != want {
		panic(fmt.Sprintf("%s.Release: departure scheduled for client %d but client %d is in service", s.Name, want.ID, c.ID))
	}
	s.InService = nil
	s.BusyTime = addTicks(s.BusyTime, c.ServiceTime(perTransaction))
	s.ClientsServed++
	return c
}

// StartNext moves the head of the line to an idle server and returns it.
// Returns nil if the line is empty.
func (s *Station) StartNext() *Client {
	if s.InService != nil {
		panic(fmt.Sprintf("%s.StartNext: server already holds client %d", s.Name, s.InService.ID))
	}
	c := s.Waiting.Dequeue()
	s.InService = c
	return c
}

// InSystem returns how many clients the station currently holds.
func (s *Station) InSystem() int {
	n := s.Waiting.Len()
	if s.InService != nil {
		n++
	}
	return n
}
