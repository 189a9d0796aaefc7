// Package suite replaces auto-run test blocks with an explicit registry of
// named closures.
//
// Blocks are registered during ordinary initialization and executed once,
// in insertion order, before the main body runs — no reliance on implicit
// pre-main execution order across modules:
//
//	func init() {
//	    suite.Register("parser", func() {
//	        simpletest.Check(parse("1"), 1)
//	    })
//	}
//
//	func main() {
//	    suite.Main(nil)
//	}
//
// Main drives the whole lifecycle: run blocks, run the optional body, fire
// shutdown finalizers (check summary, instance-count reports), and exit
// with a nonzero code when any check failed.
package suite
