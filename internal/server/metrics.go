package server

import "sync/atomic"

// Metrics tracks request counters using atomic operations for lock-free
// concurrency.
type Metrics struct {
	quotes atomic.Int64
	links  atomic.Int64
	errors atomic.Int64
}

// RecordQuote records a composed quote body.
func (m *Metrics) RecordQuote() {
	m.quotes.Add(1)
}

// RecordLink records a built narrow link.
func (m *Metrics) RecordLink() {
	m.links.Add(1)
}

// RecordError records a rejected or failed request.
func (m *Metrics) RecordError() {
	m.errors.Add(1)
}

// Snapshot returns a consistent point-in-time view of the counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Quotes: m.quotes.Load(),
		Links:  m.links.Load(),
		Errors: m.errors.Load(),
	}
}

// MetricsSnapshot is a serializable point-in-time metrics view.
type MetricsSnapshot struct {
	Quotes int64 `json:"quotes"`
	Links  int64 `json:"links"`
	Errors int64 `json:"errors"`
}
