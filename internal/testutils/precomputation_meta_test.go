package testutils

import (
	"math/rand"
	"sync"
	"testing"
)

func TestPrecomputedCachePrefixProperty(t *testing.T) {
	cache := MakePrecomputedCache(DefaultCreateRandFromSeed, func(rng *rand.Rand, _ int64) uint64 { return rng.Uint64() }, nil)
	short := cache.GetElements(1, 10)
	long := cache.GetElements(1, 100)
	FatalUnless(t, len(short) == 10 && len(long) == 100, "GetElements returned wrong number of elements")
	for i := range short {
		FatalUnless(t, short[i] == long[i], "cached lists under the same key are not prefixes of each other at index %v", i)
	}
	other := cache.GetElements(2, 10)
	differs := false
	for i := range other {
		if other[i] != short[i] {
			differs = true
		}
	}
	FatalUnless(t, differs, "different seeds gave identical samples")
	FatalUnless(t, len(cache.GetElements(3, 0)) == 0, "GetElements(_, 0) is non-empty")
}

func TestPrecomputedCacheCopies(t *testing.T) {
	cache := MakePrecomputedCache(DefaultCreateRandFromSeed,
		func(rng *rand.Rand, _ int64) []uint32 { return []uint32{rng.Uint32(), rng.Uint32()} },
		func(in []uint32) []uint32 { return append([]uint32(nil), in...) })
	first := cache.GetElements(5, 3)
	saved := first[0][0]
	first[0][0] = ^saved
	second := cache.GetElements(5, 3)
	FatalUnless(t, second[0][0] == saved, "modifying a retrieved element changed the cache")
}

func TestPrecomputedCachePrepopulate(t *testing.T) {
	cache := MakePrecomputedCache(DefaultCreateRandFromSeed, func(rng *rand.Rand, _ int64) int { return 100 + rng.Intn(10) }, nil)
	cache.PrepopulateCache(7, []int{1, 2, 3})
	got := cache.GetElements(7, 5)
	FatalUnless(t, got[0] == 1 && got[1] == 2 && got[2] == 3, "prepopulated entries not returned")
	FatalUnless(t, got[3] >= 100 && got[4] >= 100, "cache not extended after prepopulated prefix")
	FatalUnless(t, CheckPanic(func() { cache.PrepopulateCache(7, nil) }), "prepopulating an existing key did not panic")
}

func TestPrecomputedCacheConcurrent(t *testing.T) {
	cache := MakePrecomputedCache(DefaultCreateRandFromSeed, func(rng *rand.Rand, _ int64) uint64 { return rng.Uint64() }, nil)
	var wg sync.WaitGroup
	results := make([][]uint64, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.GetElements(11, 50+10*i)
		}(i)
	}
	wg.Wait()
	for i := 1; i < 8; i++ {
		for j := range results[0] {
			FatalUnless(t, results[0][j] == results[i][j], "concurrent GetElements disagree")
		}
	}
}
