//go:build !callcounters

package montgomery

// This file is part of the montgomery package. See the documentation of montgomery.go for general remarks.

// Dummy versions of the functions in callcounters_active.go. The calls compile to nothing.

import (
	"testing"

	"github.com/jasl/ring-xous/internal/callcounters"
)

// CallCountersActive tells whether this build counts calls to Reduce, Multiply and the multiply-accumulate rounds.
// It is set by the callcounters build tag.
const CallCountersActive = false

// IncrementCallCounter counts one call under id (and its parents). Without the callcounters build tag, it does nothing.
func IncrementCallCounter(id callcounters.Id) {
}

// BenchmarkWithCallCounters stops the timer of b and reports every non-zero counter, divided by b.N, as a custom "<id>/op" metric.
// Without the callcounters build tag, it does nothing.
func BenchmarkWithCallCounters(b *testing.B) {
}
