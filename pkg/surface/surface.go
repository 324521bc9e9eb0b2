package surface

// Node is an opaque live node owned by a Surface. Implementations must use
// comparable values (usually pointers) because the runtime keys event
// handler tables by node.
type Node any

// Surface is the live rendering surface mutated by the reconciler.
type Surface interface {
	// CreateNode creates an element node for tag.
	CreateNode(tag string) Node

	// CreateText creates a text node.
	CreateText(text string) Node

	// SetProperty sets a property on an element node. A nil value clears it.
	SetProperty(node Node, name string, value any)

	// SetStyle sets a single style entry. A nil value clears it.
	SetStyle(node Node, name string, value any)

	// SetText replaces the content of a text node.
	SetText(node Node, text string)

	// InsertBefore inserts node into parent before ref. A nil ref appends.
	// A node that already has a parent is moved.
	InsertBefore(parent, node, ref Node)

	// AppendChild appends node to parent.
	AppendChild(parent, node Node)

	// RemoveChild detaches node from parent.
	RemoveChild(parent, node Node)

	// ReplaceChild puts newNode in oldNode's place under parent.
	ReplaceChild(parent, newNode, oldNode Node)

	// ParentNode returns node's parent, or nil if it is detached.
	ParentNode(node Node) Node
}

// Op identifies a surface operation.
type Op uint8

const (
	OpCreateNode Op = iota + 1
	OpCreateText
	OpSetProperty
	OpSetStyle
	OpSetText
	OpInsertBefore
	OpAppendChild
	OpRemoveChild
	OpReplaceChild
)

// String returns the string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpCreateNode:
		return "CreateNode"
	case OpCreateText:
		return "CreateText"
	case OpSetProperty:
		return "SetProperty"
	case OpSetStyle:
		return "SetStyle"
	case OpSetText:
		return "SetText"
	case OpInsertBefore:
		return "InsertBefore"
	case OpAppendChild:
		return "AppendChild"
	case OpRemoveChild:
		return "RemoveChild"
	case OpReplaceChild:
		return "ReplaceChild"
	default:
		return "Unknown"
	}
}

// IsStructural reports whether the op changes the shape of the tree.
func (op Op) IsStructural() bool {
	switch op {
	case OpInsertBefore, OpAppendChild, OpRemoveChild, OpReplaceChild:
		return true
	}
	return false
}
