package vdom

import "testing"

func TestCreateElementHost(t *testing.T) {
	el := CreateElement("div", Props{"class": "card"})

	if el.Kind != KindHost || el.Tag != "div" {
		t.Fatalf("Kind/Tag = %v/%q, want Host/div", el.Kind, el.Tag)
	}
	if el.Props["class"] != "card" {
		t.Errorf("class = %v, want card", el.Props["class"])
	}
	if _, ok := el.Props[PropChildren]; ok {
		t.Error("element without children should not get a children prop")
	}
}

func TestCreateElementDoesNotMutateConfig(t *testing.T) {
	ref := CreateRef()
	config := Props{"key": "k1", "ref": ref, "__source": "file.go", "id": "x"}

	el := CreateElement("span", config, "hello")

	if len(config) != 4 {
		t.Errorf("config was mutated: %v", config)
	}
	if el.Key != "k1" {
		t.Errorf("Key = %q, want k1", el.Key)
	}
	if el.Ref != ref {
		t.Error("Ref was not extracted")
	}
	for _, k := range []string{"key", "ref", "__source"} {
		if _, ok := el.Props[k]; ok {
			t.Errorf("prop %q should be stripped", k)
		}
	}
	if el.Props["id"] != "x" {
		t.Error("regular props should be copied")
	}
}

func TestCreateElementKeyTypes(t *testing.T) {
	tests := []struct {
		key  any
		want string
	}{
		{"a", "a"},
		{7, "7"},
		{int64(8), "8"},
		{2.5, "2.5"},
		{nil, ""},
	}
	for _, tt := range tests {
		el := CreateElement("li", Props{"key": tt.key})
		if el.Key != tt.want {
			t.Errorf("key %v: Key = %q, want %q", tt.key, el.Key, tt.want)
		}
	}
}

func TestCreateElementSingleChild(t *testing.T) {
	child := CreateElement("b", nil)
	el := CreateElement("p", nil, child)

	got, ok := el.Props[PropChildren].(*Element)
	if !ok || got != child {
		t.Fatalf("children = %#v, want the single child element", el.Props[PropChildren])
	}
}

func TestCreateElementMultipleChildren(t *testing.T) {
	el := CreateElement("ul", nil, CreateElement("li", nil), "text", 42, nil)

	list, ok := el.Props[PropChildren].([]*Element)
	if !ok {
		t.Fatalf("children = %T, want []*Element", el.Props[PropChildren])
	}
	if len(list) != 4 {
		t.Fatalf("len(children) = %d, want 4", len(list))
	}
	if list[0].Tag != "li" {
		t.Errorf("child 0 = %v, want li", list[0].Name())
	}
	if list[1].Kind != KindText || list[1].Content() != "text" {
		t.Errorf("child 1 = %+v, want text element", list[1])
	}
	if list[2].Content() != "42" {
		t.Errorf("child 2 content = %q, want 42", list[2].Content())
	}
	if list[3] != nil {
		t.Error("nil children should be kept as holes")
	}
}

func TestCreateElementPrimitiveChild(t *testing.T) {
	tests := []struct {
		child any
		want  string
	}{
		{"hello", "hello"},
		{3, "3"},
		{uint8(9), "9"},
		{1.5, "1.5"},
		{float32(0.25), "0.25"},
	}
	for _, tt := range tests {
		el := CreateElement("span", nil, tt.child)
		text, ok := el.Props[PropChildren].(*Element)
		if !ok || text.Kind != KindText {
			t.Fatalf("child %v not wrapped into a text element", tt.child)
		}
		if text.Content() != tt.want {
			t.Errorf("content = %q, want %q", text.Content(), tt.want)
		}
	}
}

func TestCreateElementChildrenFromConfig(t *testing.T) {
	el := CreateElement("div", Props{"children": "from config"})
	text, ok := el.Props[PropChildren].(*Element)
	if !ok || text.Content() != "from config" {
		t.Errorf("children = %#v, want wrapped config child", el.Props[PropChildren])
	}
}

func TestCreateElementRenderFunctionChild(t *testing.T) {
	fn := func(v any) *Element { return Text("x") }
	el := CreateElement(&testType{kind: KindConsumer, name: "Consumer"}, nil, fn)

	if _, ok := el.Props[PropChildren].(func(any) *Element); !ok {
		t.Errorf("children = %T, want the render function", el.Props[PropChildren])
	}
	if el.Kind != KindConsumer {
		t.Errorf("Kind = %v, want Consumer", el.Kind)
	}
}

func TestCreateElementUnknownType(t *testing.T) {
	el := CreateElement(42, nil)
	if el.Kind.String() != "Unknown" {
		t.Errorf("Kind = %v, want Unknown", el.Kind)
	}
}

func TestChildren(t *testing.T) {
	a, b := Text("a"), Text("b")

	tests := []struct {
		name  string
		props Props
		want  int
	}{
		{"nil props", nil, 0},
		{"no children", Props{}, 0},
		{"single", Props{PropChildren: a}, 1},
		{"list", Props{PropChildren: []*Element{a, b}}, 2},
		{"function", Props{PropChildren: func(any) *Element { return nil }}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Children(tt.props)); got != tt.want {
				t.Errorf("len(Children) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOnlyChild(t *testing.T) {
	a := Text("a")
	if got, ok := OnlyChild(Props{PropChildren: a}); !ok || got != a {
		t.Error("single child should be returned")
	}
	if got, ok := OnlyChild(Props{PropChildren: []*Element{a}}); !ok || got != a {
		t.Error("one-element list should be returned")
	}
	if _, ok := OnlyChild(Props{PropChildren: []*Element{a, a}}); ok {
		t.Error("two children should not be an only child")
	}
	if _, ok := OnlyChild(nil); ok {
		t.Error("no children should not be an only child")
	}
}
