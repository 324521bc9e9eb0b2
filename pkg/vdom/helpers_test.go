package vdom

import "testing"

func TestBuilderArguments(t *testing.T) {
	clicked := false
	handler := func() { clicked = true }

	el := Div(
		Class("card", "active"),
		ID("main"),
		nil,
		Key("row-1"),
		StyleProp("color", "red"),
		StyleProp("width", 10),
		OnClick(handler),
		H1(Text("Title")),
		"tail",
	)

	if el.Tag != "div" || el.Key != "row-1" {
		t.Fatalf("Tag/Key = %q/%q", el.Tag, el.Key)
	}
	if el.Props["class"] != "card active" {
		t.Errorf("class = %v", el.Props["class"])
	}
	style, ok := el.Props[PropStyle].(map[string]any)
	if !ok || style["color"] != "red" || style["width"] != 10 {
		t.Errorf("style = %#v, want merged style map", el.Props[PropStyle])
	}
	fn, ok := el.Props["onclick"].(func())
	if !ok {
		t.Fatalf("onclick = %T, want func()", el.Props["onclick"])
	}
	fn()
	if !clicked {
		t.Error("handler was not stored as given")
	}

	children := Children(el.Props)
	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(children))
	}
	if children[0].Tag != "h1" || children[1].Content() != "tail" {
		t.Errorf("children = %v, %v", children[0].Name(), children[1].Name())
	}
}

func TestBuilderPropsArgument(t *testing.T) {
	el := Span(Props{"title": "x", "data-n": 1})
	if el.Props["title"] != "x" || el.Props["data-n"] != 1 {
		t.Errorf("props = %v", el.Props)
	}
}

func TestBuilderChildSliceKeepsHoles(t *testing.T) {
	el := Ul([]*Element{Li(), nil, Li()})
	if got := len(Children(el.Props)); got != 3 {
		t.Errorf("len(children) = %d, want 3", got)
	}
}

func TestH(t *testing.T) {
	comp := &testType{kind: KindFunc, name: "Comp"}
	el := H(comp, Prop("count", 3), Text("child"))

	if el.Kind != KindFunc || el.Type != comp {
		t.Fatalf("Kind/Type = %v/%v", el.Kind, el.Type)
	}
	if el.Props["count"] != 3 {
		t.Errorf("count = %v, want 3", el.Props["count"])
	}
	if c, ok := OnlyChild(el.Props); !ok || c.Content() != "child" {
		t.Error("child was not normalized")
	}
}

func TestConditionals(t *testing.T) {
	a, b := Text("a"), Text("b")

	if If(true, a) != a || If(false, a) != nil {
		t.Error("If returned the wrong element")
	}
	if IfElse(true, a, b) != a || IfElse(false, a, b) != b {
		t.Error("IfElse returned the wrong element")
	}
	called := false
	if When(false, func() *Element { called = true; return a }) != nil || called {
		t.Error("When(false) should not call fn")
	}
	if When(true, func() *Element { return a }) != a {
		t.Error("When(true) should return fn's result")
	}
}

func TestRange(t *testing.T) {
	items := []string{"x", "y", "z"}
	els := Range(items, func(item string, i int) *Element {
		return Li(Key(i), Text(item))
	})
	if len(els) != 3 || els[2].Key != "2" {
		t.Errorf("Range produced %d elements, last key %q", len(els), els[len(els)-1].Key)
	}
}

func TestWalk(t *testing.T) {
	tree := Div(Ul(Li(Text("1")), Li(Text("2"))), P())

	var tags []string
	Walk(tree, func(el *Element) bool {
		tags = append(tags, el.Name())
		return el.Tag != "p"
	})

	want := []string{"div", "ul", "li", "#text", "li", "#text", "p"}
	if len(tags) != len(want) {
		t.Fatalf("visited %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("visit %d = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestIsEventProp(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"onclick", true},
		{"onClick", true},
		{"OnLoad", true},
		{"on", false},
		{"one", true},
		{"class", false},
	}
	for _, tt := range tests {
		if got := IsEventProp(tt.key); got != tt.want {
			t.Errorf("IsEventProp(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") || !IsVoidElement("input") {
		t.Error("br and input are void elements")
	}
	if IsVoidElement("div") {
		t.Error("div is not a void element")
	}
}
