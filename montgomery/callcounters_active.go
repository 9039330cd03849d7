//go:build callcounters

package montgomery

import (
	"testing"

	"github.com/jasl/ring-xous/internal/callcounters"
)

// This file is part of the montgomery package. See the documentation of montgomery.go for general remarks.

// This file is only compiled if tags=callcounters is set, otherwise callcounters_inactive.go is used.

// CallCountersActive tells whether this build counts calls to Reduce, Multiply and the multiply-accumulate rounds.
// It is set by the callcounters build tag.
const CallCountersActive = true

// IncrementCallCounter counts one call under id (and its parents). Without the callcounters build tag, it does nothing.
func IncrementCallCounter(id callcounters.Id) {
	id.Increment()
}

// BenchmarkWithCallCounters stops the timer of b and reports every non-zero counter, divided by b.N, as a custom "<id>/op" metric.
// Without the callcounters build tag, it does nothing.
func BenchmarkWithCallCounters(b *testing.B) {
	b.StopTimer()
	reports := callcounters.ReportCallCounters(true, false)
	for _, item := range reports {
		b.ReportMetric(float64(item.Calls)/float64(b.N), item.Tag+"/op")
	}
}
