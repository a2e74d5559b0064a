package testutils

import "sync/atomic"

type Counter interface {
	// Increments the counter by 1 and returns the latest value of the counter
	Increment() int
	// Get the current value of the counter
	Get() int
}

type counter struct {
	value atomic.Int64
}

// NewCounter creates a Counter which is initialised as 0. It is safe for
// concurrent use, so stubs invoked from several goroutines can share one.
func NewCounter() Counter {
	return &counter{}
}

// Increments the counter by 1 and returns the latest value of the counter
func (m *counter) Increment() int {
	return int(m.value.Add(1))
}

// Get the current value of the counter
func (m *counter) Get() int {
	return int(m.value.Load())
}
