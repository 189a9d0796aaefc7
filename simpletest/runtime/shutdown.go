package runtime

import (
	"context"
	"os"
	"sync"

	"github.com/LerianStudio/lib-simpletest/simpletest/log"
)

// Go has no static-destructor equivalent, so process-lifetime singletons
// (the check tally, instance-count registries) register finalizers here and
// rely on the program driving Shutdown during normal teardown, either
// directly, via Exit, or through suite.Main. Nothing fires on a fatal
// signal or forced kill.

// hook is a named finalizer registered for process teardown.
type hook struct {
	name string
	fn   func()
}

// Finalizers is an ordered registry of teardown functions. The zero value
// is ready to use. Most callers use the package-level functions, which
// operate on the process-wide registry.
type Finalizers struct {
	mu     sync.Mutex
	hooks  []hook
	done   bool
	once   sync.Once
	logger log.Logger
}

// SetLogger configures an optional logger for shutdown diagnostics.
// Pass nil to disable.
func (f *Finalizers) SetLogger(logger log.Logger) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.logger = logger
}

// OnShutdown registers a finalizer to run during Shutdown. Hooks run in
// reverse registration order, mirroring reverse order of first use for
// lazily created singletons. Registering after Shutdown has run is a no-op.
func (f *Finalizers) OnShutdown(name string, fn func()) {
	if fn == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.done {
		return
	}

	f.hooks = append(f.hooks, hook{name: name, fn: fn})
}

// Shutdown runs all registered finalizers exactly once, last-registered
// first. A panicking hook is recovered and logged so the remaining hooks
// still run. Safe to call from multiple goroutines; all callers block
// until the first call completes.
func (f *Finalizers) Shutdown() {
	f.once.Do(f.runHooks)
}

func (f *Finalizers) runHooks() {
	f.mu.Lock()
	hooks := make([]hook, len(f.hooks))
	copy(hooks, f.hooks)
	logger := f.logger
	f.done = true
	f.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		h := hooks[i]

		func() {
			defer func() {
				if recovered := recover(); recovered != nil {
					HandlePanicValue(context.Background(), logger, recovered, "runtime", "shutdown_"+h.name)
				}
			}()

			h.fn()
		}()
	}
}

// defaultFinalizers is the process-wide registry.
var defaultFinalizers Finalizers

// SetShutdownLogger configures the logger for the process-wide registry.
func SetShutdownLogger(logger log.Logger) {
	defaultFinalizers.SetLogger(logger)
}

// OnShutdown registers a finalizer with the process-wide registry.
func OnShutdown(name string, fn func()) {
	defaultFinalizers.OnShutdown(name, fn)
}

// Shutdown runs the process-wide finalizers exactly once.
func Shutdown() {
	defaultFinalizers.Shutdown()
}

// Exit runs all process-wide finalizers and terminates the process with the
// given code. Deferred functions elsewhere do not run, same as os.Exit.
func Exit(code int) {
	Shutdown()
	os.Exit(code)
}
