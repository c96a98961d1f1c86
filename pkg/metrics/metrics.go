// Package metrics is a small in-process collector for the document
// pipeline: generation counters per template, composition latencies and
// output sizes. It backs the /metrics endpoint and the dashboard badges.
package metrics

import (
	"sync"
	"time"
)

// keep at most this many recent observations per series.
const windowSize = 100

// Collector accumulates counters and sliding-window observations.
// Safe for concurrent use.
type Collector struct {
	mu        sync.RWMutex
	counters  map[string]map[string]int64
	latencies map[string][]time.Duration
	sizes     map[string][]float64
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		counters:  make(map[string]map[string]int64),
		latencies: make(map[string][]time.Duration),
		sizes:     make(map[string][]float64),
	}
}

// IncrementCounter bumps a counter, keyed by a secondary label such as the
// template id. An empty label is stored under "total".
func (c *Collector) IncrementCounter(name, label string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if label == "" {
		label = "total"
	}
	if _, ok := c.counters[name]; !ok {
		c.counters[name] = make(map[string]int64)
	}
	c.counters[name][label]++
}

// ObserveLatency records one duration for a series.
func (c *Collector) ObserveLatency(name string, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := append(c.latencies[name], d)
	if len(s) > windowSize {
		s = s[len(s)-windowSize:]
	}
	c.latencies[name] = s
}

// ObserveSize records one output size in bytes for a series.
func (c *Collector) ObserveSize(name string, size float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := append(c.sizes[name], size)
	if len(s) > windowSize {
		s = s[len(s)-windowSize:]
	}
	c.sizes[name] = s
}

// Counters returns a copy of all counters.
func (c *Collector) Counters() map[string]map[string]int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]map[string]int64, len(c.counters))
	for name, labels := range c.counters {
		out[name] = make(map[string]int64, len(labels))
		for label, v := range labels {
			out[name][label] = v
		}
	}
	return out
}

// Latencies returns the average latency per series in milliseconds.
func (c *Collector) Latencies() map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]float64, len(c.latencies))
	for name, durations := range c.latencies {
		if len(durations) == 0 {
			continue
		}
		var sum time.Duration
		for _, d := range durations {
			sum += d
		}
		out[name] = float64(sum) / float64(len(durations)) / float64(time.Millisecond)
	}
	return out
}

// Sizes returns the average and max output size per series in bytes.
func (c *Collector) Sizes() map[string]map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]map[string]float64, len(c.sizes))
	for name, obs := range c.sizes {
		if len(obs) == 0 {
			continue
		}
		var sum, max float64
		for _, v := range obs {
			sum += v
			if v > max {
				max = v
			}
		}
		out[name] = map[string]float64{
			"avg_bytes": sum / float64(len(obs)),
			"max_bytes": max,
		}
	}
	return out
}
