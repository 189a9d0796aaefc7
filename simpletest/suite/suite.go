package suite

import (
	"context"
	"sync"

	"github.com/LerianStudio/lib-simpletest/simpletest"
	"github.com/LerianStudio/lib-simpletest/simpletest/log"
	"github.com/LerianStudio/lib-simpletest/simpletest/runtime"
	"github.com/google/uuid"
)

// Block is a named body of checks queued for execution ahead of the main
// program body. The ID correlates a block's log lines across a run.
type Block struct {
	ID   uuid.UUID
	Name string
	fn   func()
}

var (
	registryMu sync.Mutex
	blocks     []Block
	logger     log.Logger = log.NewNop()
)

// SetLogger configures the logger used for block execution diagnostics.
// Pass nil to silence them.
func SetLogger(l log.Logger) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if l == nil {
		l = log.NewNop()
	}

	logger = l
}

// Register queues a named block of checks. Call it from ordinary
// initialization code (package init functions or early main); blocks run in
// insertion order, which is the only ordering guarantee. Blocks registered
// from init functions of different packages run in whatever order the
// runtime initialized those packages.
func Register(name string, fn func()) {
	if fn == nil {
		return
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	blocks = append(blocks, Block{ID: uuid.New(), Name: name, fn: fn})
}

// Run executes every registered block once, in insertion order. A panicking
// block is recovered, logged, and counted as one failed check; the
// remaining blocks still run.
func Run(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	registryMu.Lock()
	queued := make([]Block, len(blocks))
	copy(queued, blocks)
	blockLogger := logger
	registryMu.Unlock()

	for _, block := range queued {
		blockLogger.Log(ctx, log.LevelDebug, "running block",
			log.String("block", block.Name),
			log.String("block_id", block.ID.String()),
		)

		runBlock(ctx, blockLogger, block)
	}
}

func runBlock(ctx context.Context, blockLogger log.Logger, block Block) {
	defer func() {
		if recovered := recover(); recovered != nil {
			runtime.HandlePanicValue(ctx, blockLogger, recovered, "suite", "block_"+block.Name)

			// A block that blew up did not finish its checks; surface that
			// in the tally rather than only in the log.
			simpletest.Default().Check(ctx, "block "+block.Name+" completed", "panic")
		}
	}()

	block.fn()
}

// Reset discards all registered blocks. Intended for tests.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()

	blocks = nil
}

// Main is a convenience entry point: it runs every registered block, then
// the main body, then fires all shutdown finalizers (printing the tally and
// instance summaries) and exits the process, nonzero when any check failed.
//
//	func main() {
//	    suite.Register("arithmetic", func() {
//	        simpletest.Check(1+1, 2)
//	    })
//
//	    suite.Main(func() {
//	        simpletest.Check(version(), "1.7")
//	    })
//	}
func Main(body func()) {
	ctx := context.Background()

	Run(ctx)

	if body != nil {
		body()
	}

	code := 0
	if simpletest.Default().Failed() > 0 {
		code = 1
	}

	runtime.Exit(code)
}
