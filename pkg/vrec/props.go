package vrec

import (
	"github.com/vango-dev/vrec/pkg/surface"
	"github.com/vango-dev/vrec/pkg/vdom"
)

// skipProps never reach the surface.
var skipProps = map[string]bool{
	vdom.PropChildren: true,
	vdom.PropKey:      true,
	vdom.PropRef:      true,
}

// patchProps applies the difference between old and next to live. Style
// maps are patched entry by entry and event props are routed to the event
// table. Unchanged values are skipped; removed keys are cleared.
func (r *Root) patchProps(live surface.Node, old, next vdom.Props) {
	for name, value := range next {
		if skipProps[name] {
			continue
		}
		prev, had := old[name]
		switch {
		case name == vdom.PropStyle && (styleMap(value) != nil || styleMap(prev) != nil):
			r.patchStyle(live, styleMap(prev), styleMap(value))
		case isHandlerProp(name, value):
			if !had || !vdom.Same(prev, value) {
				r.events.register(live, name, value)
			}
		default:
			if !had || !vdom.Same(prev, value) {
				r.surface.SetProperty(live, name, value)
			}
		}
	}

	for name, prev := range old {
		if skipProps[name] {
			continue
		}
		if _, ok := next[name]; ok {
			continue
		}
		switch {
		case name == vdom.PropStyle && styleMap(prev) != nil:
			r.patchStyle(live, styleMap(prev), nil)
		case isHandlerProp(name, prev):
			r.events.register(live, name, nil)
		default:
			r.surface.SetProperty(live, name, nil)
		}
	}
}

func (r *Root) patchStyle(live surface.Node, old, next map[string]any) {
	for name, value := range next {
		if prev, ok := old[name]; ok && vdom.Same(prev, value) {
			continue
		}
		r.surface.SetStyle(live, name, value)
	}
	for name := range old {
		if _, ok := next[name]; !ok {
			r.surface.SetStyle(live, name, nil)
		}
	}
}

func styleMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case vdom.Props:
		return m
	}
	return nil
}

// isHandlerProp reports whether the prop is routed to the event table: an
// on-prefixed name holding a function.
func isHandlerProp(name string, value any) bool {
	if !vdom.IsEventProp(name) {
		return false
	}
	switch value.(type) {
	case func(), func(*Event):
		return true
	}
	return isFunc(value)
}
