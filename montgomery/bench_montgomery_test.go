package montgomery

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/jasl/ring-xous/internal/callcounters"
	"github.com/jasl/ring-xous/montgomery/limbs"
)

// benchmark functions write to DumpXXX variables, which prevents the compiler from optimizing the computation away.
var (
	DumpLimbs64 []uint64
	DumpError   error
)

// benchSizes are the limb counts we benchmark with, i.e. 1024, 2048 and 4096-bit moduli with 64-bit limbs.
var benchSizes = []int{16, 32, 64}

func prepareBenchmarkMontgomery(b *testing.B) {
	b.Cleanup(func() { postProcessBenchmarkMontgomery(b) })
	callcounters.ResetAllCounters()
	b.ResetTimer()
}

// postProcessBenchmarkMontgomery makes sure call counters are included in the benchmark if the current build includes them.
// It should be called at the end of each sub-benchmark (preferably using b.Cleanup(...) )
func postProcessBenchmarkMontgomery(b *testing.B) {
	BenchmarkWithCallCounters(b)
}

func benchmarkMultiply(b *testing.B, engine *Engine[uint64], numLimbs int) {
	rng := rand.New(rand.NewSource(300))
	tc := getTestCases[uint64](numLimbs, 4)[3]
	_, a := tc.random(rng)
	_, x := tc.random(rng)
	prepareBenchmarkMontgomery(b)
	for i := 0; i < b.N; i++ {
		DumpError = engine.Multiply(x, x, a, tc.n, tc.n0)
	}
	DumpLimbs64 = x
}

func BenchmarkMultiply(b *testing.B) {
	engines := []struct {
		name   string
		engine *Engine[uint64]
	}{
		{"Reference", NewEngine[uint64](limbs.MulAddLimb[uint64])},
		{"Unrolled", NewEngine[uint64](limbs.MulAddLimbUnrolled[uint64])},
		{"Default", NewEngine[uint64](nil)},
	}
	for _, e := range engines {
		for _, numLimbs := range benchSizes {
			b.Run(fmt.Sprintf("%v/%v-bit", e.name, 64*numLimbs), func(b *testing.B) {
				benchmarkMultiply(b, e.engine, numLimbs)
			})
		}
	}
}

func BenchmarkReduce(b *testing.B) {
	for _, numLimbs := range benchSizes {
		b.Run(fmt.Sprintf("%v-bit", 64*numLimbs), func(b *testing.B) {
			rng := rand.New(rand.NewSource(301))
			tc := getTestCases[uint64](numLimbs, 4)[3]
			_, x := tc.random(rng)
			acc := make([]uint64, 2*numLimbs)
			r := make([]uint64, numLimbs)
			prepareBenchmarkMontgomery(b)
			for i := 0; i < b.N; i++ {
				copy(acc, x) // Reduce zeroes the accumulator
				DumpError = Reduce(r, acc, tc.n, tc.n0)
			}
			DumpLimbs64 = r
		})
	}
}
