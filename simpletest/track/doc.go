// Package track counts live and total instances of arbitrary types for
// leak and lifetime auditing.
//
// Tracking is opt-in through explicit lifecycle hooks keyed by type
// identity; there is no inheritance or wrapper requirement. A type opts in
// by calling the hooks at its construction and teardown sites:
//
//	type Widget struct{ /* ... */ }
//
//	func NewWidget() *Widget {
//	    track.Created[Widget]()
//	    return &Widget{}
//	}
//
//	func (w *Widget) Close() {
//	    track.Destroyed[Widget]()
//	}
//
// Copies count too: each copy is a new live instance from the tracker's
// perspective, so value types that get duplicated should call
// track.Created at the copy site as well.
//
// Counters are created lazily on first use, one per distinct type, and
// live for the whole process. At normal process teardown (see
// simpletest/runtime) each tracked type prints a report:
//
//	The remaining number of objects of type track_test.Widget at the end of the program is 2 (NOT zero!)
//	The total number of objects created was 3
//
// The "(NOT zero!)" marker appears whenever instances remain live. A
// negative live count means the caller decremented without a matching
// increment; it is reported as-is rather than hidden.
package track
