package surface

import (
	"testing"
)

func TestMemoryCreate(t *testing.T) {
	m := NewMemory()
	div := m.CreateNode("div").(*MemNode)
	txt := m.CreateText("hi").(*MemNode)

	if div.Tag != "div" || div.IsText {
		t.Errorf("CreateNode = %v, want element div", div)
	}
	if !txt.IsText || txt.Text != "hi" {
		t.Errorf("CreateText = %v, want text hi", txt)
	}
	if div.ID == txt.ID {
		t.Error("node IDs should be unique")
	}
	if got, ok := m.Lookup(txt.ID); !ok || got != txt {
		t.Errorf("Lookup(%d) = %v, %v", txt.ID, got, ok)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestMemoryProperties(t *testing.T) {
	m := NewMemory()
	n := m.NewContainer("input")

	m.SetProperty(n, "value", "x")
	m.SetStyle(n, "color", "red")
	if n.Attrs["value"] != "x" {
		t.Errorf("Attrs[value] = %v, want x", n.Attrs["value"])
	}
	if n.Style["color"] != "red" {
		t.Errorf("Style[color] = %v, want red", n.Style["color"])
	}

	m.SetProperty(n, "value", nil)
	m.SetStyle(n, "color", nil)
	if _, ok := n.Attrs["value"]; ok {
		t.Error("nil property should clear the attribute")
	}
	if _, ok := n.Style["color"]; ok {
		t.Error("nil style should clear the entry")
	}
}

func TestMemoryInsertBefore(t *testing.T) {
	m := NewMemory()
	root := m.NewContainer("ul")
	a := m.CreateText("a")
	b := m.CreateText("b")
	c := m.CreateText("c")

	m.AppendChild(root, a)
	m.AppendChild(root, c)
	m.InsertBefore(root, b, c)
	if got := root.TextContent(); got != "abc" {
		t.Fatalf("TextContent() = %q, want abc", got)
	}

	// Moving an attached node detaches it first.
	m.InsertBefore(root, c, a)
	if got := root.TextContent(); got != "cab" {
		t.Errorf("after move TextContent() = %q, want cab", got)
	}
	if len(root.Children) != 3 {
		t.Errorf("len(Children) = %d, want 3", len(root.Children))
	}
	if m.ParentNode(c) != Node(root) {
		t.Error("ParentNode(c) should be root")
	}
}

func TestMemoryRemoveAndReplace(t *testing.T) {
	m := NewMemory()
	root := m.NewContainer("div")
	a := m.CreateNode("a")
	b := m.CreateNode("b")
	m.AppendChild(root, a)

	m.ReplaceChild(root, b, a)
	if len(root.Children) != 1 || root.Children[0] != b.(*MemNode) {
		t.Fatalf("Children = %v, want [b]", root.Children)
	}
	if m.ParentNode(a) != nil {
		t.Error("replaced node should be detached")
	}

	m.RemoveChild(root, b)
	if len(root.Children) != 0 {
		t.Errorf("len(Children) = %d, want 0", len(root.Children))
	}
	if m.ParentNode(b) != nil {
		t.Error("removed node should be detached")
	}
}

func TestMemoryReplaceUnknownChildPanics(t *testing.T) {
	m := NewMemory()
	root := m.NewContainer("div")
	defer func() {
		if recover() == nil {
			t.Error("ReplaceChild with a foreign node should panic")
		}
	}()
	m.ReplaceChild(root, m.CreateNode("a"), m.CreateNode("b"))
}

func TestMemNodeFind(t *testing.T) {
	m := NewMemory()
	root := m.NewContainer("div")
	btn := m.CreateNode("button")
	m.SetProperty(btn, "id", "go")
	m.AppendChild(root, btn)

	if got := root.FindTag("button"); got != btn.(*MemNode) {
		t.Errorf("FindTag(button) = %v", got)
	}
	if got := root.FindAttr("id", "go"); got != btn.(*MemNode) {
		t.Errorf("FindAttr(id, go) = %v", got)
	}
	if got := root.FindTag("span"); got != nil {
		t.Errorf("FindTag(span) = %v, want nil", got)
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op         Op
		want       string
		structural bool
	}{
		{OpCreateNode, "CreateNode", false},
		{OpSetText, "SetText", false},
		{OpInsertBefore, "InsertBefore", true},
		{OpReplaceChild, "ReplaceChild", true},
		{Op(0), "Unknown", false},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.op.IsStructural(); got != tt.structural {
				t.Errorf("IsStructural() = %v, want %v", got, tt.structural)
			}
		})
	}
}
