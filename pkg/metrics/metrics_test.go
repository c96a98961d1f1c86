package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIncrementCounter(t *testing.T) {
	c := NewCollector()
	c.IncrementCounter("documents_generated", "org-chart")
	c.IncrementCounter("documents_generated", "org-chart")
	c.IncrementCounter("documents_generated", "waste-log")
	c.IncrementCounter("documents_shared", "")

	counters := c.Counters()
	assert.Equal(t, int64(2), counters["documents_generated"]["org-chart"])
	assert.Equal(t, int64(1), counters["documents_generated"]["waste-log"])
	assert.Equal(t, int64(1), counters["documents_shared"]["total"])
}

func TestLatencyAverage(t *testing.T) {
	c := NewCollector()
	c.ObserveLatency("generate", 10*time.Millisecond)
	c.ObserveLatency("generate", 30*time.Millisecond)

	assert.InDelta(t, 20.0, c.Latencies()["generate"], 0.001)
}

func TestSizeWindow(t *testing.T) {
	c := NewCollector()
	// The first observation falls out of the window once it fills up.
	c.ObserveSize("pdf_bytes", 1e9)
	for i := 0; i < windowSize; i++ {
		c.ObserveSize("pdf_bytes", 100)
	}

	sizes := c.Sizes()["pdf_bytes"]
	assert.Equal(t, 100.0, sizes["avg_bytes"])
	assert.Equal(t, 100.0, sizes["max_bytes"])
}

func TestConcurrentAccess(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.IncrementCounter("documents_generated", "org-chart")
				c.ObserveLatency("generate", time.Millisecond)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(800), c.Counters()["documents_generated"]["org-chart"])
}
