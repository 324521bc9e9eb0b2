// Package vdom provides the element model for vrec.
//
// An Element is a plain, immutable description of one node to render: a
// kind, the component or tag it refers to, its props, and an optional key
// and ref. Element trees are rebuilt from scratch on every render pass and
// handed to the reconciler in package vrec, which diffs them against the
// previously rendered tree and mutates the live surface.
//
// # Core Types
//
// Element is the description. VKind is the closed set of element kinds
// the reconciler understands. Props holds configuration, including the
// normalized "children" entry. Ref is an output-capture box filled in by
// the reconciler with a live node or a component instance.
//
// # Element API
//
// CreateElement is the low-level constructor:
//
//	CreateElement("div", Props{"class": "card"},
//	    CreateElement("h1", nil, "Title"),
//	    "Content",
//	)
//
// The builder functions wrap it with a variadic, attribute-first style:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// # Children
//
// A single child is stored as-is under Props["children"]; two or more are
// stored as an ordered []*Element. Strings and numbers are wrapped into
// text elements. Use Children to read them back as a slice.
package vdom
