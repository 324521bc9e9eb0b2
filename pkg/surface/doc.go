// Package surface defines the live rendering surface that vrec mutates and
// ships an in-memory implementation of it.
//
// The reconciler never touches native widgets directly. It talks to a
// Surface: create a node, set a property or a style entry, change text,
// insert, append, remove and replace children, and ask for a node's parent.
// Anything that can do those things (a DOM bridge, a terminal UI, a native
// widget toolkit) can be driven by vrec.
//
// # Memory Surface
//
// Memory keeps a plain tree of *MemNode values. It is what tests, the CLI
// and the devtools server render into:
//
//	mem := surface.NewMemory()
//	root := mem.NewContainer("body")
//	vrec.Render(app, root, mem)
//	fmt.Println(surface.HTML(root))
//
// # Recording
//
// Recorder wraps any Surface and counts every mutation by operation. It is
// how tests check that diffing a tree against itself performs no structural
// mutations.
package surface
