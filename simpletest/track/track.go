package track

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/LerianStudio/lib-simpletest/simpletest/runtime"
)

// Counter holds live and total instance counts for one tracked type.
//
// Counts are atomic and strictly partitioned by type identity: counters for
// unrelated types never interfere. A live count can go negative if a caller
// decrements without a matching increment; that is a caller lifecycle bug
// and the count is reported as-is, never clamped.
type Counter struct {
	typeName string
	live     atomic.Int64
	total    atomic.Int64
}

// Created records a new live instance. Call it for every construction,
// including copies: a copy is a genuine new live instance, not a transfer.
func (counter *Counter) Created() {
	counter.live.Add(1)
	counter.total.Add(1)

	recordLiveGauge(context.Background(), counter.typeName, counter.live.Load())
}

// Destroyed records that an instance is no longer live.
func (counter *Counter) Destroyed() {
	counter.live.Add(-1)

	recordLiveGauge(context.Background(), counter.typeName, counter.live.Load())
}

// Live returns the current number of undestroyed instances.
func (counter *Counter) Live() int64 {
	return counter.live.Load()
}

// Total returns the number of instances ever created.
func (counter *Counter) Total() int64 {
	return counter.total.Load()
}

// TypeName returns the tracked type's name as reported in the summary.
func (counter *Counter) TypeName() string {
	return counter.typeName
}

// Summarize writes this type's end-of-program report to w. A remaining live
// count above zero gets an explicit "(NOT zero!)" marker.
func (counter *Counter) Summarize(w io.Writer) {
	live := counter.live.Load()

	fmt.Fprintf(w, "The remaining number of objects of type %s at the end of the program is %d", counter.typeName, live)

	if live > 0 {
		fmt.Fprint(w, " (NOT zero!)")
	}

	fmt.Fprintf(w, "\nThe total number of objects created was %d\n", counter.total.Load())
}

var (
	registryMu       sync.Mutex
	registryByType   = map[reflect.Type]*Counter{}
	registryOrder    []*Counter
	registryHookOnce sync.Once
)

// Of returns the counter for type T, creating it on first use. The counter
// lives for the rest of the process regardless of how many tracked
// instances exist. First use of the package registers a shutdown finalizer
// that prints every tracked type's summary to stdout.
func Of[T any]() *Counter {
	typ := reflect.TypeOf((*T)(nil)).Elem()

	registryMu.Lock()
	defer registryMu.Unlock()

	if counter, ok := registryByType[typ]; ok {
		return counter
	}

	counter := &Counter{typeName: typ.String()}
	registryByType[typ] = counter
	registryOrder = append(registryOrder, counter)

	registryHookOnce.Do(func() {
		runtime.OnShutdown("track_summary", func() {
			SummarizeAll(os.Stdout)
		})
	})

	return counter
}

// Created is shorthand for Of[T]().Created(). Place it in constructors and
// copy sites of the tracked type.
func Created[T any]() {
	Of[T]().Created()
}

// Destroyed is shorthand for Of[T]().Destroyed(). Place it in Close or
// whatever teardown the tracked type has.
func Destroyed[T any]() {
	Of[T]().Destroyed()
}

// SummarizeAll writes each tracked type's summary to w, in reverse order of
// first use, mirroring singleton teardown order.
func SummarizeAll(w io.Writer) {
	registryMu.Lock()
	counters := make([]*Counter, len(registryOrder))
	copy(counters, registryOrder)
	registryMu.Unlock()

	for i := len(counters) - 1; i >= 0; i-- {
		counters[i].Summarize(w)
	}
}
