package vdom

// VKind is the element kind discriminator.
type VKind uint8

const (
	KindHost       VKind = iota // <div>, <button>, etc.
	KindText                    // Text content
	KindFunc                    // Function component
	KindClass                   // Class component
	KindForwardRef              // Function component receiving the element's ref
	KindMemo                    // Memoized function component
	KindProvider                // Context provider
	KindConsumer                // Context consumer
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindHost:
		return "Host"
	case KindText:
		return "Text"
	case KindFunc:
		return "Func"
	case KindClass:
		return "Class"
	case KindForwardRef:
		return "ForwardRef"
	case KindMemo:
		return "Memo"
	case KindProvider:
		return "Provider"
	case KindConsumer:
		return "Consumer"
	default:
		return "Unknown"
	}
}

// IsComposite reports whether elements of this kind expand into another
// element tree instead of producing a surface node of their own.
func (k VKind) IsComposite() bool {
	return k >= KindFunc && k <= KindConsumer
}

// Type is implemented by component and wrapper descriptors.
// Descriptors are compared by identity, so implementations should be
// pointer types created once and reused across renders.
type Type interface {
	Kind() VKind
	Name() string
}

// Element is an immutable description of a node to render.
type Element struct {
	Kind  VKind  // Element kind
	Tag   string // Tag name for KindHost
	Type  Type   // Descriptor for composite kinds
	Props Props  // Configuration, including "children"
	Key   string // Identity hint for keyed reconciliation
	Ref   *Ref   // Output capture target
}

// Props holds element configuration.
type Props map[string]any

// Get returns the value for key, or nil.
func (p Props) Get(key string) any {
	if p == nil {
		return nil
	}
	return p[key]
}

// String returns the value for key if it is a string.
func (p Props) String(key string) string {
	s, _ := p.Get(key).(string)
	return s
}

// Clone returns a shallow copy of p. A nil Props clones to an empty map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Name returns a readable name for the element, used in logs and faults.
func (e *Element) Name() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindHost:
		return e.Tag
	case KindText:
		return "#text"
	}
	if e.Type != nil {
		return e.Type.Name()
	}
	return e.Kind.String()
}

// Content returns the text of a KindText element.
func (e *Element) Content() string {
	if e == nil {
		return ""
	}
	return e.Props.String(PropContent)
}

// SameType reports whether two elements describe the same kind of node:
// the same VKind and, for host elements, the same tag, otherwise the same
// descriptor. The reconciler patches same-typed elements and replaces the rest.
func SameType(a, b *Element) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindHost:
		return a.Tag == b.Tag
	case KindText:
		return true
	default:
		return a.Type == b.Type
	}
}

// Ref is an output-capture box. The reconciler stores the live surface node
// of a host element, or the instance of a class component, in Current.
type Ref struct {
	Current any
}

// CreateRef returns an empty Ref.
func CreateRef() *Ref {
	return &Ref{}
}
