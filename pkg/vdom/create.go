package vdom

import (
	"fmt"
	"strconv"
)

// Reserved prop names.
const (
	PropChildren = "children"
	PropContent  = "content"
	PropKey      = "key"
	PropRef      = "ref"
	PropStyle    = "style"
	PropValue    = "value"
)

// internalProps are bookkeeping keys stripped from every config.
var internalProps = []string{"__source", "__self"}

// CreateElement creates an Element.
//
// typ is a tag string for host elements or a Type descriptor for
// components. config is copied, never mutated; "key" and "ref" are moved
// out of it onto the Element. Children are normalized into
// Props["children"]: one child is stored as-is, several as []*Element.
// Strings and numbers become text elements. When no children are passed,
// a "children" entry already present in config is kept.
func CreateElement(typ any, config Props, children ...any) *Element {
	el := &Element{Props: make(Props, len(config)+1)}

	switch t := typ.(type) {
	case string:
		el.Kind = KindHost
		el.Tag = t
	case Type:
		el.Kind = t.Kind()
		el.Type = t
	default:
		// Left for the reconciler to fault on; construction is pure.
		el.Kind = VKind(255)
	}

	for k, v := range config {
		el.Props[k] = v
	}
	for _, k := range internalProps {
		delete(el.Props, k)
	}

	if k, ok := el.Props[PropKey]; ok {
		el.Key = keyString(k)
		delete(el.Props, PropKey)
	}
	if r, ok := el.Props[PropRef]; ok {
		if ref, ok := r.(*Ref); ok {
			el.Ref = ref
		}
		delete(el.Props, PropRef)
	}

	switch len(children) {
	case 0:
		if c, ok := el.Props[PropChildren]; ok {
			el.Props[PropChildren] = wrapChild(c)
		}
	case 1:
		if c := wrapChild(children[0]); c != nil {
			el.Props[PropChildren] = c
		}
	default:
		list := make([]*Element, 0, len(children))
		for _, c := range children {
			list = appendChild(list, c)
		}
		el.Props[PropChildren] = list
	}

	return el
}

// NewText creates a text element with the given content.
func NewText(content string) *Element {
	return &Element{
		Kind:  KindText,
		Props: Props{PropContent: content},
	}
}

// wrapChild converts primitive children into text elements and leaves
// everything else (elements, element slices, render functions) alone.
func wrapChild(c any) any {
	if s, ok := primitiveText(c); ok {
		return NewText(s)
	}
	switch v := c.(type) {
	case nil:
		return nil
	case *Element:
		if v == nil {
			return nil
		}
		return v
	case []any:
		list := make([]*Element, 0, len(v))
		for _, item := range v {
			list = appendChild(list, item)
		}
		return list
	}
	return c
}

// appendChild flattens c into list. Nil entries are kept as holes so that
// positional reconciliation stays aligned across conditional children.
func appendChild(list []*Element, c any) []*Element {
	if s, ok := primitiveText(c); ok {
		return append(list, NewText(s))
	}
	switch v := c.(type) {
	case nil:
		return append(list, nil)
	case *Element:
		return append(list, v)
	case []*Element:
		return append(list, v...)
	case []any:
		for _, item := range v {
			list = appendChild(list, item)
		}
	}
	return list
}

// primitiveText reports whether c is a string or number and returns its text.
func primitiveText(c any) (string, bool) {
	switch v := c.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}

func keyString(k any) string {
	switch v := k.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	if s, ok := primitiveText(k); ok {
		return s
	}
	return fmt.Sprint(k)
}

// Children returns the children of props as a slice. A single child
// becomes a one-element slice; missing children return nil.
func Children(p Props) []*Element {
	switch v := p.Get(PropChildren).(type) {
	case *Element:
		return []*Element{v}
	case []*Element:
		return v
	}
	return nil
}

// OnlyChild returns the single element child of props. ok is false when
// there are zero or several children.
func OnlyChild(p Props) (*Element, bool) {
	switch v := p.Get(PropChildren).(type) {
	case *Element:
		return v, v != nil
	case []*Element:
		if len(v) == 1 && v[0] != nil {
			return v[0], true
		}
	}
	return nil, false
}
