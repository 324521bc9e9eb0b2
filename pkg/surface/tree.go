package surface

import "sort"

// Tree is a JSON-friendly copy of a MemNode subtree.
type Tree struct {
	ID       int            `json:"id" yaml:"id"`
	Tag      string         `json:"tag,omitempty" yaml:"tag,omitempty"`
	Text     *string        `json:"text,omitempty" yaml:"text,omitempty"`
	Attrs    map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Style    map[string]any `json:"style,omitempty" yaml:"style,omitempty"`
	Children []*Tree        `json:"children,omitempty" yaml:"children,omitempty"`
}

// Snapshot copies n into a Tree. Function-valued attributes are replaced by
// a "func" marker so the result always encodes.
func Snapshot(n *MemNode) *Tree {
	if n == nil {
		return nil
	}
	t := &Tree{ID: n.ID}
	if n.IsText {
		text := n.Text
		t.Text = &text
		return t
	}
	t.Tag = n.Tag
	if len(n.Attrs) > 0 {
		t.Attrs = make(map[string]any, len(n.Attrs))
		for k, v := range n.Attrs {
			if isFunc(v) {
				v = "func"
			}
			t.Attrs[k] = v
		}
	}
	if len(n.Style) > 0 {
		t.Style = make(map[string]any, len(n.Style))
		for k, v := range n.Style {
			t.Style[k] = v
		}
	}
	for _, c := range n.Children {
		t.Children = append(t.Children, Snapshot(c))
	}
	return t
}

// Count returns the number of nodes in the tree.
func (t *Tree) Count() int {
	if t == nil {
		return 0
	}
	n := 1
	for _, c := range t.Children {
		n += c.Count()
	}
	return n
}

// AttrNames returns the attribute names in sorted order.
func (t *Tree) AttrNames() []string {
	names := make([]string, 0, len(t.Attrs))
	for k := range t.Attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
