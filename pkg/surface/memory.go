package surface

import (
	"fmt"
	"sync"
)

// MemNode is a node in a Memory surface.
type MemNode struct {
	ID       int
	Tag      string // Empty for text nodes
	Text     string // Text node content
	IsText   bool
	Attrs    map[string]any
	Style    map[string]any
	Parent   *MemNode
	Children []*MemNode
}

// String returns a short description of the node.
func (n *MemNode) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsText {
		return fmt.Sprintf("#text(%q)", n.Text)
	}
	return fmt.Sprintf("<%s#%d>", n.Tag, n.ID)
}

// TextContent returns the concatenated text of n and its descendants.
func (n *MemNode) TextContent() string {
	if n == nil {
		return ""
	}
	if n.IsText {
		return n.Text
	}
	var out string
	for _, c := range n.Children {
		out += c.TextContent()
	}
	return out
}

// Find returns the first descendant (or n itself), pre-order, for which
// match returns true.
func (n *MemNode) Find(match func(*MemNode) bool) *MemNode {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindTag returns the first element with the given tag.
func (n *MemNode) FindTag(tag string) *MemNode {
	return n.Find(func(m *MemNode) bool { return !m.IsText && m.Tag == tag })
}

// FindAttr returns the first element whose attribute name equals value.
func (n *MemNode) FindAttr(name string, value any) *MemNode {
	return n.Find(func(m *MemNode) bool {
		v, ok := m.Attrs[name]
		return ok && v == value
	})
}

func (n *MemNode) indexOf(child *MemNode) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *MemNode) detach(child *MemNode) {
	if i := n.indexOf(child); i >= 0 {
		n.Children = append(n.Children[:i], n.Children[i+1:]...)
	}
	child.Parent = nil
}

// Memory is an in-memory Surface. Node IDs are stable for the lifetime of
// the surface so external tools can address nodes.
type Memory struct {
	mu     sync.RWMutex
	nextID int
	nodes  map[int]*MemNode
}

// NewMemory creates an empty Memory surface.
func NewMemory() *Memory {
	return &Memory{nodes: make(map[int]*MemNode)}
}

// NewContainer creates a detached element to render into.
func (m *Memory) NewContainer(tag string) *MemNode {
	return m.CreateNode(tag).(*MemNode)
}

// Lookup returns the node with the given ID.
func (m *Memory) Lookup(id int) (*MemNode, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.nodes[id]
	return n, ok
}

// Len returns the number of nodes ever created on the surface.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.nodes)
}

func (m *Memory) register(n *MemNode) *MemNode {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	n.ID = m.nextID
	m.nodes[n.ID] = n
	return n
}

// CreateNode implements Surface.
func (m *Memory) CreateNode(tag string) Node {
	return m.register(&MemNode{
		Tag:   tag,
		Attrs: make(map[string]any),
		Style: make(map[string]any),
	})
}

// CreateText implements Surface.
func (m *Memory) CreateText(text string) Node {
	return m.register(&MemNode{Text: text, IsText: true})
}

// SetProperty implements Surface.
func (m *Memory) SetProperty(node Node, name string, value any) {
	n := mustMem(node)
	if value == nil {
		delete(n.Attrs, name)
		return
	}
	n.Attrs[name] = value
}

// SetStyle implements Surface.
func (m *Memory) SetStyle(node Node, name string, value any) {
	n := mustMem(node)
	if value == nil {
		delete(n.Style, name)
		return
	}
	n.Style[name] = value
}

// SetText implements Surface.
func (m *Memory) SetText(node Node, text string) {
	mustMem(node).Text = text
}

// InsertBefore implements Surface.
func (m *Memory) InsertBefore(parent, node, ref Node) {
	p, n := mustMem(parent), mustMem(node)
	if n.Parent != nil {
		n.Parent.detach(n)
	}
	idx := -1
	if ref != nil {
		idx = p.indexOf(mustMem(ref))
	}
	n.Parent = p
	if idx < 0 {
		p.Children = append(p.Children, n)
		return
	}
	p.Children = append(p.Children, nil)
	copy(p.Children[idx+1:], p.Children[idx:])
	p.Children[idx] = n
}

// AppendChild implements Surface.
func (m *Memory) AppendChild(parent, node Node) {
	m.InsertBefore(parent, node, nil)
}

// RemoveChild implements Surface.
func (m *Memory) RemoveChild(parent, node Node) {
	mustMem(parent).detach(mustMem(node))
}

// ReplaceChild implements Surface.
func (m *Memory) ReplaceChild(parent, newNode, oldNode Node) {
	p, nn, on := mustMem(parent), mustMem(newNode), mustMem(oldNode)
	idx := p.indexOf(on)
	if idx < 0 {
		panic(fmt.Sprintf("surface: %v is not a child of %v", on, p))
	}
	if nn.Parent != nil {
		nn.Parent.detach(nn)
		idx = p.indexOf(on)
	}
	p.Children[idx] = nn
	nn.Parent = p
	on.Parent = nil
}

// ParentNode implements Surface.
func (m *Memory) ParentNode(node Node) Node {
	n := mustMem(node)
	if n.Parent == nil {
		return nil
	}
	return n.Parent
}

func mustMem(node Node) *MemNode {
	n, ok := node.(*MemNode)
	if !ok || n == nil {
		panic(fmt.Sprintf("surface: %T is not a memory node", node))
	}
	return n
}
