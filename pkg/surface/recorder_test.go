package surface

import "testing"

func TestRecorder(t *testing.T) {
	m := NewMemory()
	r := NewRecorder(m)

	var seen []Op
	r.OnMutation(func(mu Mutation) { seen = append(seen, mu.Op) })

	root := m.NewContainer("div")
	child := r.CreateNode("span")
	r.SetProperty(child, "id", "x")
	r.AppendChild(root, child)
	r.SetStyle(child, "color", "red")
	r.RemoveChild(root, child)

	if got := r.Count(OpCreateNode); got != 1 {
		t.Errorf("Count(CreateNode) = %d, want 1", got)
	}
	if got := r.Structural(); got != 2 {
		t.Errorf("Structural() = %d, want 2", got)
	}
	if len(seen) != 5 {
		t.Errorf("hook saw %d mutations, want 5", len(seen))
	}
	if muts := r.Mutations(); muts[1].Name != "id" {
		t.Errorf("Mutations()[1].Name = %q, want id", muts[1].Name)
	}
	if r.ParentNode(child) != nil {
		t.Error("ParentNode should forward to the wrapped surface")
	}

	r.Reset()
	if len(r.Mutations()) != 0 {
		t.Error("Reset should clear the log")
	}
}

func TestObserve(t *testing.T) {
	m := NewMemory()
	counts := map[Op]int{}
	o := Observe(m, func(mu Mutation) { counts[mu.Op]++ })

	root := m.NewContainer("div")
	o.AppendChild(root, o.CreateText("x"))

	if counts[OpCreateText] != 1 || counts[OpAppendChild] != 1 {
		t.Errorf("counts = %v", counts)
	}
	if len(o.Mutations()) != 0 {
		t.Error("Observe should not keep a log")
	}
}
