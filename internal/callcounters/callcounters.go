// Package callcounters contains profiling counters that record how often certain functions are called.
//
// Counters are only incremented by code built with the callcounters build tag; in regular builds the
// packages using them compile the increments to no-ops. Benchmarks then report the counts per operation
// as custom metrics, e.g. how many multiply-accumulate rounds a Montgomery multiplication of a given size needs.
package callcounters

/*
Usage example:

	var _ = CreateNewCallCounter("MulAddLimb", "multiply-accumulate", "Arithmetic")
	var _ = CreateNewCallCounter("Arithmetic", "", "")

	func mulAdd(...) {
		IncrementCallCounter("MulAddLimb")
		...
	}

The calls to CreateNewCallCounter may come in any order; a counter may refer to a parent that is created later.
Incrementing a counter also increments all its (transitive) parents.
*/

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Id is the string used by callers to refer to a call counter. It should contain no whitespace,
// because it ends up as part of a benchmark metric name.
type Id string

// CallCounter is a single named counter, organized in a tree for reporting.
type CallCounter struct {
	id          Id
	displayName string       // defaults to id
	parent      *CallCounter // nil for roots
	count       atomic.Int64
	initialized bool // false for placeholder entries that were only referred to as a parent so far.
}

// CCReport is one entry of the output of [ReportCallCounters].
type CCReport struct {
	Tag   string // Id or display name, depending on the request
	Calls int
	Depth int // distance to the root of the counter tree
}

var (
	registryMutex sync.RWMutex
	callCounters  = make(map[Id]*CallCounter)
)

func getOrCreate(id Id) *CallCounter {
	cc, ok := callCounters[id]
	if !ok {
		cc = &CallCounter{id: id}
		callCounters[id] = cc
	}
	return cc
}

// CreateNewCallCounter registers a counter with the given id. displayName == "" means the id is displayed.
// parentId == "" creates a root. Creating the same id twice panics.
func CreateNewCallCounter(id Id, displayName string, parentId Id) *CallCounter {
	if id == "" {
		panic("callcounters: trying to create a call counter with empty id")
	}
	registryMutex.Lock()
	defer registryMutex.Unlock()
	cc := getOrCreate(id)
	if cc.initialized {
		panic("callcounters: call counter " + string(id) + " created twice")
	}
	cc.initialized = true
	if displayName == "" {
		cc.displayName = string(id)
	} else {
		cc.displayName = displayName
	}
	if parentId != "" {
		cc.parent = getOrCreate(parentId)
		for p := cc.parent; p != nil; p = p.parent {
			if p == cc {
				panic("callcounters: cyclic parent relation involving " + string(id))
			}
		}
	}
	return cc
}

// Exists checks whether a call counter with the given id was created.
func (id Id) Exists() bool {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	cc, ok := callCounters[id]
	return ok && cc.initialized
}

// Increment adds 1 to the counter and all its ancestors. Incrementing an unknown id panics.
func (id Id) Increment() {
	registryMutex.RLock()
	cc, ok := callCounters[id]
	registryMutex.RUnlock()
	if !ok || !cc.initialized {
		panic("callcounters: incrementing unknown call counter " + string(id))
	}
	for ; cc != nil; cc = cc.parent {
		cc.count.Add(1)
	}
}

// Get returns the current value of the counter and whether the counter exists.
func (id Id) Get() (ret int, ok bool) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	cc, ok := callCounters[id]
	if !ok || !cc.initialized {
		return 0, false
	}
	return int(cc.count.Load()), true
}

// ResetAllCounters sets all counters to zero.
func ResetAllCounters() {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	for _, cc := range callCounters {
		cc.count.Store(0)
	}
}

// ReportCallCounters lists all created counters, parents before their children and siblings sorted by id.
// If onlyPositive is set, counters with a value of 0 are omitted.
func ReportCallCounters(onlyPositive bool, useDisplayName bool) (ret []CCReport) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	children := make(map[*CallCounter][]*CallCounter)
	var roots []*CallCounter
	for _, cc := range callCounters {
		if !cc.initialized {
			continue
		}
		if cc.parent == nil || !cc.parent.initialized {
			roots = append(roots, cc)
		} else {
			children[cc.parent] = append(children[cc.parent], cc)
		}
	}
	byId := func(list []*CallCounter) {
		sort.Slice(list, func(i, j int) bool { return list[i].id < list[j].id })
	}
	var walk func(cc *CallCounter, depth int)
	walk = func(cc *CallCounter, depth int) {
		calls := int(cc.count.Load())
		if !onlyPositive || calls > 0 {
			tag := string(cc.id)
			if useDisplayName {
				tag = cc.displayName
			}
			ret = append(ret, CCReport{Tag: tag, Calls: calls, Depth: depth})
		}
		list := children[cc]
		byId(list)
		for _, child := range list {
			walk(child, depth+1)
		}
	}
	byId(roots)
	for _, root := range roots {
		walk(root, 0)
	}
	return
}
