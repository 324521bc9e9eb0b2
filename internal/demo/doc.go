// Package demo is a small application built on vrec. It is rendered by
// the CLI and the devserver and uses every component kind: a class
// counter reading a context, a reducer-driven keyed todo list with a
// memoized badge, a forward-ref input and a clock driven by effects and
// loop timers.
//
// A Session mounts the app into a memory surface and drives it:
//
//	s := demo.NewSession(demo.WithKeyedChildren())
//	defer s.Close()
//	s.Dispatch("inc", "click")
//	s.Settle()
//	fmt.Println(s.HTML())
package demo
