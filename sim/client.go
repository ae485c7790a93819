// Defines the Client struct that models a single bank customer in the simulation.

package sim

import (
	"fmt"
	"math"
)

// Client is created at reception arrival and never modified afterwards.
// Exactly one structure holds a client at a time: a station's server,
// a station's waiting line, or the transit slot between stations.
type Client struct {
	ID           int64 // Sequential identifier, 1-based, in arrival order
	ArrivalTime  int64 // Tick at which the client arrived at reception
	Transactions int   // Number of transactions, fixed for the client's lifetime
}

// newClient draws the transaction count for a client arriving at now.
func newClient(id, now int64, cfg Config, src RandomSource) *Client {
	return &Client{
		ID:           id,
		ArrivalTime:  now,
		Transactions: UniformInt(src, cfg.MinTransactions, cfg.MaxTransactions),
	}
}

// ServiceTime returns how long a station needs to serve the client,
// saturating at math.MaxInt64.
func (c *Client) ServiceTime(perTransaction int64) int64 {
	n := int64(c.Transactions)
	if n > 0 && perTransaction > math.MaxInt64/n {
		return math.MaxInt64
	}
	return n * perTransaction
}

// This function is called when printing the client (e.g. in WaitQueue.String and the arrival log).
func (c *Client) String() string {
	return fmt.Sprintf("Client: (ID: %d, Arrival: %d, Transactions: %d)", c.ID, c.ArrivalTime, c.Transactions)
}
