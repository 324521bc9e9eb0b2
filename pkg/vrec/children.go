package vrec

import (
	"github.com/vango-dev/vrec/pkg/surface"
	"github.com/vango-dev/vrec/pkg/vdom"
)

// reconcileChildren reconciles the children of a host node and returns
// the new child records, aligned with next.
func (r *Root) reconcileChildren(parent surface.Node, old []*node, next []*vdom.Element) []*node {
	if r.keyed {
		return r.reconcileKeyed(parent, old, next)
	}

	out := make([]*node, len(next))
	for i, end := 0, max(len(old), len(next)); i < end; i++ {
		var o *node
		if i < len(old) {
			o = old[i]
		}
		var e *vdom.Element
		if i < len(next) {
			e = next[i]
		}
		n := r.reconcile(parent, o, e, nextSurviving(old, i))
		if i < len(next) {
			out[i] = n
		}
	}
	return out
}

// nextSurviving returns the live node of the first old sibling after i
// that is still mounted.
func nextSurviving(old []*node, i int) surface.Node {
	for j := i + 1; j < len(old); j++ {
		if o := old[j]; o != nil && !o.unmounted {
			return o.anchor()
		}
	}
	return nil
}

// reconcileKeyed matches children by key, falling back to position for
// unkeyed children, and moves live nodes to follow the new order. Matched
// children whose old positions are increasing stay in place; everything
// else is inserted before its next sibling, working right to left.
func (r *Root) reconcileKeyed(parent surface.Node, old []*node, next []*vdom.Element) []*node {
	byKey := make(map[string]int, len(old))
	for j, o := range old {
		if o != nil && o.elem.Key != "" {
			byKey[o.elem.Key] = j
		}
	}

	used := make([]bool, len(old))
	matched := make([]int, len(next))
	for i, e := range next {
		matched[i] = -1
		if e == nil {
			continue
		}
		if e.Key != "" {
			if j, ok := byKey[e.Key]; ok && !used[j] && vdom.SameType(old[j].elem, e) {
				matched[i] = j
				used[j] = true
			}
			continue
		}
		if i < len(old) && !used[i] && old[i] != nil && old[i].elem.Key == "" && vdom.SameType(old[i].elem, e) {
			matched[i] = i
			used[i] = true
		}
	}

	for j, o := range old {
		if o != nil && !used[j] {
			r.reconcile(parent, o, nil, nil)
		}
	}

	mark := len(r.didMount)
	out := make([]*node, len(next))
	stable := make([]bool, len(next))
	last := -1
	for i, e := range next {
		if e == nil {
			continue
		}
		if j := matched[i]; j >= 0 {
			out[i] = r.reconcile(parent, old[j], e, nil)
			if j > last {
				stable[i] = true
				last = j
			}
			continue
		}
		out[i] = r.mount(e)
	}

	var anchor surface.Node
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == nil {
			continue
		}
		live := r.liveOf(out[i], "move")
		if !stable[i] {
			r.insert(parent, live, anchor)
		}
		anchor = live
	}

	r.flushDidMount(mark)
	return out
}
