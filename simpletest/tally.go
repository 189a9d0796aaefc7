package simpletest

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/LerianStudio/lib-simpletest/simpletest/log"
	"github.com/LerianStudio/lib-simpletest/simpletest/runtime"
)

// summarySeparator precedes the end-of-run summary block.
const summarySeparator = "--------------------------------------"

// Tally accumulates pass/fail counts for every check over the life of the
// process and prints the human-readable trace as checks run.
//
// Counters are atomic and each output message is written as a single
// critical section, so concurrent checks from worker goroutines never lose
// updates or interleave characters within one line. Counters only grow;
// there is no reset.
type Tally struct {
	out         io.Writer
	logger      log.Logger
	mu          sync.Mutex
	total       atomic.Int64
	failed      atomic.Int64
	summaryOnce sync.Once
}

// TallyOption configures a Tally.
type TallyOption func(*Tally)

// WithWriter directs the check trace and summary to w instead of stdout.
func WithWriter(w io.Writer) TallyOption {
	return func(tally *Tally) {
		if w != nil {
			tally.out = w
		}
	}
}

// WithLogger attaches a diagnostics logger. Check outcomes are still printed
// to the writer; the logger only carries debug-level echoes and telemetry
// plumbing errors.
func WithLogger(logger log.Logger) TallyOption {
	return func(tally *Tally) {
		if logger != nil {
			tally.logger = logger
		}
	}
}

// NewTally creates an explicitly owned Tally. Most callers want the
// process-wide Default instead; explicit tallies are for embedding and
// tests.
func NewTally(opts ...TallyOption) *Tally {
	tally := &Tally{
		out:    os.Stdout,
		logger: log.NewNop(),
	}

	for _, opt := range opts {
		opt(tally)
	}

	return tally
}

var (
	defaultTally     *Tally
	defaultTallyOnce sync.Once
)

// Default returns the process-wide tally, creating it on first use.
// Creation registers the summary as a shutdown finalizer so that it fires
// exactly once during normal teardown (runtime.Shutdown, runtime.Exit, or
// suite.Main), after all other use.
func Default() *Tally {
	defaultTallyOnce.Do(func() {
		defaultTally = NewTally()
		runtime.OnShutdown("tally_summary", defaultTally.Summarize)
	})

	return defaultTally
}

// Check compares expected against actual, immediately prints the outcome
// line, and updates the counters. It returns true when the values are
// considered equal and never returns an error: a failed comparison is a
// recorded outcome, not a fault.
func (tally *Tally) Check(ctx context.Context, expected, actual any) bool {
	if ctx == nil {
		ctx = context.Background()
	}

	passed := isEqual(expected, actual)

	tally.total.Add(1)

	if !passed {
		tally.failed.Add(1)
	}

	var line string
	if passed {
		line = fmt.Sprintf("Test successful! Expected value == actual value (=%s)\n", renderValue(expected))
	} else {
		line = fmt.Sprintf("Error in test: expected value %s, but actual value was %s\n",
			renderValue(expected), renderValue(actual))
	}

	tally.emit(line)

	recordCheckObservability(ctx, passed, renderValue(expected), renderValue(actual))

	if tally.logger.Enabled(log.LevelDebug) {
		tally.logger.Log(ctx, log.LevelDebug, "check executed",
			log.Bool("passed", passed),
			log.String("expected", renderValue(expected)),
			log.String("actual", renderValue(actual)),
		)
	}

	return passed
}

// emit writes one complete message under the output lock. The lock scope is
// strictly the write; no counter mutation happens inside it.
func (tally *Tally) emit(message string) {
	tally.mu.Lock()
	defer tally.mu.Unlock()

	fmt.Fprint(tally.out, message)
}

// Executed returns the number of checks recorded so far.
func (tally *Tally) Executed() int64 {
	return tally.total.Load()
}

// Failed returns the number of failed checks recorded so far. Callers that
// want a nonzero process exit code on failure inspect this and decide for
// themselves; see suite.Main.
func (tally *Tally) Failed() int64 {
	return tally.failed.Load()
}

// Summarize prints the summary block. Only the first call emits output;
// later calls are no-ops, so a finalizer plus a manual call cannot
// double-print.
func (tally *Tally) Summarize() {
	tally.summaryOnce.Do(func() {
		tally.mu.Lock()
		defer tally.mu.Unlock()

		fmt.Fprintf(tally.out, "\n%s\n", summarySeparator)
		fmt.Fprintln(tally.out, "Test summary:")
		fmt.Fprintf(tally.out, "Executed tests: %d\n", tally.total.Load())
		fmt.Fprintf(tally.out, "Failed tests: %d\n", tally.failed.Load())
	})
}
