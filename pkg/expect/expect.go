// Package expect derives the set of metric keys a target snapshot must
// contain. The target registers five metrics per (metric index, thread
// index) pair plus a handful of statically named ones; the key set is
// fully determined by how many worker threads the target runs and how
// many metrics each of them creates.
package expect

import "fmt"

// Kind suffixes of the five metrics every worker thread registers
// per metric index, in registration order.
var generatedSuffixes = []string{"uint", "int", "float", "sum_int", "rate_sum_int"}

// FixedKeys are the statically named metrics the target registers once
// at startup. They appear in every snapshot regardless of configuration.
var FixedKeys = []string{
	"TestNum1",
	"TestNum2",
	"TestNum3",
	"TestNumRate",
	"TestStr",
	"TestBool",
	"TestFloat",
	"TestSum",
}

const (
	// DefaultThreads is the number of worker threads the target runs.
	DefaultThreads = 2
	// DefaultMetricsPerThread is the number of generated metric indices
	// each worker thread registers.
	DefaultMetricsPerThread = 1000
)

// Config describes the target's metric-generation shape. The same value
// must drive both expectation generation and any fixture that produces
// target output, so the two can never drift apart.
type Config struct {
	Threads          int
	MetricsPerThread int
}

// DefaultConfig returns the shape the shipped target binary is built with.
func DefaultConfig() Config {
	return Config{
		Threads:          DefaultThreads,
		MetricsPerThread: DefaultMetricsPerThread,
	}
}

// Keys returns every metric key a passing snapshot must contain:
// the generated "TestMetric{m}_{t}_{kind}" names followed by FixedKeys.
// The slice is rebuilt on every call; it is never cached between runs.
func (c Config) Keys() []string {
	keys := make([]string, 0, c.Count())
	for t := 0; t < c.Threads; t++ {
		for m := 0; m < c.MetricsPerThread; m++ {
			for _, suffix := range generatedSuffixes {
				keys = append(keys, fmt.Sprintf("TestMetric%d_%d_%s", m, t, suffix))
			}
		}
	}
	keys = append(keys, FixedKeys...)
	return keys
}

// Count returns the exact number of keys a passing snapshot must have.
func (c Config) Count() int {
	return c.Threads*c.MetricsPerThread*len(generatedSuffixes) + len(FixedKeys)
}
