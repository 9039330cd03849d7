package testutils

import (
	"fmt"
	"math/rand"
	"sync"
)

// This file defines a PrecomputedCache used by tests and benchmarks.
//
// A PrecomputedCache is, from the user's point of view, a map KeyType -> []ElementType of pseudo-random samples.
// The key typically holds an rng seed plus some shape information (such as a limb count).
// Asking for the first n elements under a key k and later for the first m elements under the same k gives
// copies of lists where one is a prefix of the other. Creating samples (e.g. odd moduli together with their
// Montgomery constant) is not free, so we extend the per-key list only when needed.
//
// The cache is safe for concurrent use by parallel (sub-)tests.

// precomputedCachePage holds the cached list for a single key.
type precomputedCachePage[KeyType comparable, ElementType any] struct {
	rng      *rand.Rand // state used to extend elements.
	elements []ElementType
	key      KeyType
	mutex    sync.Mutex
}

// PrecomputedCache stores, for each key of type KeyType, a precomputed list of ElementType.
type PrecomputedCache[KeyType comparable, ElementType any] struct {
	tableMutex sync.Mutex
	pages      map[KeyType]*precomputedCachePage[KeyType, ElementType] // once created, a page pointer never changes.
	seedFun    func(KeyType) *rand.Rand
	createFun  func(*rand.Rand, KeyType) ElementType
	copyFun    func(ElementType) ElementType
}

// MakePrecomputedCache creates a ready-to-use [PrecomputedCache].
//
// seedFun creates the rng for a key, createFun samples one element and copyFun (deep-)copies an element.
// seedFun and createFun must be non-nil. A nil copyFun means elements are copied by assignment,
// which is wrong for element types containing slices.
func MakePrecomputedCache[KeyType comparable, ElementType any](seedFun func(KeyType) *rand.Rand, createFun func(*rand.Rand, KeyType) ElementType, copyFun func(ElementType) ElementType) *PrecomputedCache[KeyType, ElementType] {
	if seedFun == nil || createFun == nil {
		panic("ring-xous / testutils: MakePrecomputedCache called with nil seed or creation function")
	}
	if copyFun == nil {
		copyFun = func(in ElementType) ElementType { return in }
	}
	return &PrecomputedCache[KeyType, ElementType]{
		pages:     make(map[KeyType]*precomputedCachePage[KeyType, ElementType]),
		seedFun:   seedFun,
		createFun: createFun,
		copyFun:   copyFun,
	}
}

// PrepopulateCache stores the given entries as the prefix of the list under key.
// This only works if the key was never used before; we panic otherwise.
func (pc *PrecomputedCache[KeyType, ElementType]) PrepopulateCache(key KeyType, entries []ElementType) {
	pc.tableMutex.Lock()
	defer pc.tableMutex.Unlock()
	if _, ok := pc.pages[key]; ok {
		panic(fmt.Errorf("ring-xous / testutils: trying to populate cache under key %v, which already exists", key))
	}
	page := &precomputedCachePage[KeyType, ElementType]{key: key, rng: pc.seedFun(key)}
	for _, entry := range entries {
		page.elements = append(page.elements, pc.copyFun(entry))
	}
	pc.pages[key] = page
}

// GetElements returns copies of the first amount many elements stored under key, extending the list if needed.
func (pc *PrecomputedCache[KeyType, ElementType]) GetElements(key KeyType, amount int) (ret []ElementType) {
	ret = make([]ElementType, amount)
	if amount == 0 {
		return
	}

	pc.tableMutex.Lock()
	page, ok := pc.pages[key]
	if !ok {
		page = &precomputedCachePage[KeyType, ElementType]{key: key, rng: pc.seedFun(key)}
		pc.pages[key] = page
	}
	pc.tableMutex.Unlock()

	page.mutex.Lock()
	defer page.mutex.Unlock()
	for len(page.elements) < amount {
		page.elements = append(page.elements, pc.createFun(page.rng, page.key))
	}
	for i := 0; i < amount; i++ {
		ret[i] = pc.copyFun(page.elements[i])
	}
	return
}

// DefaultCreateRandFromSeed is a default seed function for caches keyed directly by an int64 seed.
func DefaultCreateRandFromSeed(key int64) *rand.Rand {
	return rand.New(rand.NewSource(key))
}
