package vdom

import "testing"

type testType struct {
	kind VKind
	name string
}

func (t *testType) Kind() VKind  { return t.kind }
func (t *testType) Name() string { return t.name }

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindHost, "Host"},
		{KindText, "Text"},
		{KindFunc, "Func"},
		{KindClass, "Class"},
		{KindForwardRef, "ForwardRef"},
		{KindMemo, "Memo"},
		{KindProvider, "Provider"},
		{KindConsumer, "Consumer"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVKindIsComposite(t *testing.T) {
	if KindHost.IsComposite() || KindText.IsComposite() {
		t.Error("host and text kinds are not composite")
	}
	for _, k := range []VKind{KindFunc, KindClass, KindForwardRef, KindMemo, KindProvider, KindConsumer} {
		if !k.IsComposite() {
			t.Errorf("%v should be composite", k)
		}
	}
}

func TestSameType(t *testing.T) {
	fa := &testType{kind: KindFunc, name: "A"}
	fb := &testType{kind: KindFunc, name: "B"}

	tests := []struct {
		name string
		a, b *Element
		want bool
	}{
		{"same tag", Div(), Div(), true},
		{"different tag", Div(), Span(), false},
		{"text vs text", Text("a"), Text("b"), true},
		{"text vs host", Text("a"), Div(), false},
		{"same descriptor", CreateElement(fa, nil), CreateElement(fa, nil), true},
		{"different descriptor", CreateElement(fa, nil), CreateElement(fb, nil), false},
		{"nil", nil, Div(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameType(tt.a, tt.b); got != tt.want {
				t.Errorf("SameType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElementName(t *testing.T) {
	fa := &testType{kind: KindFunc, name: "Counter"}

	tests := []struct {
		el   *Element
		want string
	}{
		{nil, "<nil>"},
		{Div(), "div"},
		{Text("x"), "#text"},
		{CreateElement(fa, nil), "Counter"},
	}
	for _, tt := range tests {
		if got := tt.el.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestPropsHelpers(t *testing.T) {
	var nilProps Props
	if nilProps.Get("x") != nil {
		t.Error("Get on nil props should be nil")
	}
	if c := nilProps.Clone(); c == nil || len(c) != 0 {
		t.Error("Clone of nil props should be an empty map")
	}

	p := Props{"title": "hi", "n": 1}
	if p.String("title") != "hi" || p.String("n") != "" {
		t.Error("String() returned the wrong values")
	}
	c := p.Clone()
	c["title"] = "changed"
	if p["title"] != "hi" {
		t.Error("Clone should not alias the original")
	}
}

func TestCreateRef(t *testing.T) {
	r := CreateRef()
	if r == nil || r.Current != nil {
		t.Fatalf("CreateRef() = %+v, want empty ref", r)
	}
}
