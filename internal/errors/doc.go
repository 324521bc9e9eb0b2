// Package errors provides structured fault values for vrec.
//
// The reconciler performs no validation or recovery of its own. When a
// render pass hits a condition it cannot continue from (an unknown element
// kind, a component whose rendered output has no live node, a provider
// with several children), it panics with a *Fault. Hosts that recover the
// panic can inspect the code and print a readable report:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        if f, ok := errors.AsFault(r); ok {
//	            fmt.Fprint(os.Stderr, f.Format())
//	            return
//	        }
//	        panic(r)
//	    }
//	}()
//
// # Error Codes
//
// Each fault carries a registered code (e.g., "R002") that maps to a
// category, a short message and a longer explanation:
//
//	R001-R099  reconciliation faults raised by the runtime
//	C001-C099  configuration errors
//	S001-S099  snapshot store errors
//
// Codes that are not registered still produce a usable Fault with the
// message "Unknown error".
package errors
