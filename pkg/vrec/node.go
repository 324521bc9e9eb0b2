package vrec

import (
	"github.com/vango-dev/vrec/pkg/surface"
	"github.com/vango-dev/vrec/pkg/vdom"
)

// node is the rendered record of one element. A record kept across passes
// always has the same kind and type; a change of either produces a new
// record.
type node struct {
	elem *vdom.Element

	// live is the surface node of host and text records.
	live surface.Node

	// rendered is the output record of composite records.
	rendered *node

	// children are the child records of host records, aligned with the
	// element's children. Holes stay nil.
	children []*node

	instance  Component  // class records
	hooks     *Hooks     // function and forward-ref records
	prevProps vdom.Props // memo records

	unmounted bool
}

// anchor returns the surface node standing for the record: its own live
// node, or the first live node down its rendered chain.
func (n *node) anchor() surface.Node {
	for cur := n; cur != nil; cur = cur.rendered {
		if cur.live != nil {
			return cur.live
		}
	}
	return nil
}

// placeholderProp marks the empty text element standing in for nil output.
const placeholderProp = "__placeholder"

// placeholder stands in for a component that rendered nothing so every
// composite record keeps a live anchor.
func placeholder() *vdom.Element {
	el := vdom.NewText("")
	el.Props[placeholderProp] = true
	return el
}

func isPlaceholder(el *vdom.Element) bool {
	return el != nil && el.Kind == vdom.KindText && el.Props[placeholderProp] == true
}
