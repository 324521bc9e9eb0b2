package vrec

import (
	"maps"
	"slices"
	"testing"

	"github.com/vango-dev/vrec/pkg/vdom"
)

// counter is a class component used across the update tests.
type counter struct {
	Base
	renders   int
	gate      func(next vdom.Props, state State) bool
	didUpdate []string
	received  []vdom.Props
	snapshot  any
}

func (c *counter) Render() *vdom.Element {
	c.renders++
	return vdom.Span(vdom.Textf("%v/%v", c.Props["label"], c.State["n"]))
}

func (c *counter) ShouldComponentUpdate(next vdom.Props, state State) bool {
	if c.gate == nil {
		return true
	}
	return c.gate(next, state)
}

func (c *counter) GetSnapshotBeforeUpdate() any { return c.snapshot }

func (c *counter) ComponentDidUpdate(prevProps vdom.Props, prevState State, snapshot any) {
	c.didUpdate = append(c.didUpdate,
		vdom.Textf("%v/%v->%v/%v %v", prevProps["label"], prevState["n"], c.Props["label"], c.State["n"], snapshot).Content())
}

func (c *counter) ComponentWillReceiveProps(next, prev vdom.Props) {
	c.received = append(c.received, next)
}

var counterType = Class("Counter", func(props vdom.Props) Component {
	return &counter{Base: Base{State: State{"n": 0}}}
})

func mountCounter(t *testing.T, props vdom.Props, opts ...Option) (*fixture, *Root, *counter) {
	t.Helper()
	f := newFixture()
	ref := vdom.CreateRef()
	p := vdom.Props{"ref": ref}
	maps.Copy(p, props)
	root := f.render(t, counterType.Element(p), opts...)
	c, ok := ref.Current.(*counter)
	if !ok {
		t.Fatalf("ref.Current = %T, want *counter", ref.Current)
	}
	return f, root, c
}

func TestSetStateMergeLaw(t *testing.T) {
	_, root, c := mountCounter(t, nil)
	c.State = State{"a": 1, "b": 2}

	root.Scheduler().Batch(func() {
		c.SetState(State{"b": 3})
		c.UpdateState(func(s State) State { return State{"a": s["a"].(int) + 1} })
	})

	want := State{"a": 2, "b": 3}
	if !maps.Equal(c.State, want) {
		t.Errorf("State = %v, want %v", c.State, want)
	}
}

func TestFoldStateDoesNotMutate(t *testing.T) {
	in := State{"a": 1}
	out := foldState(in, []any{map[string]any{"a": 5}, State{"b": 2}})
	if in["a"] != 1 {
		t.Errorf("input mutated: %v", in)
	}
	if out["a"] != 5 || out["b"] != 2 {
		t.Errorf("foldState = %v", out)
	}
}

func TestSynchronousUpdatesRenderEachTime(t *testing.T) {
	f, _, c := mountCounter(t, vdom.Props{"label": "x"})

	var seen []any
	for i := 1; i <= 3; i++ {
		c.UpdateState(func(s State) State {
			seen = append(seen, s["n"])
			return State{"n": s["n"].(int) + 1}
		})
	}

	if c.renders != 4 {
		t.Errorf("renders = %d, want 4", c.renders)
	}
	if !slices.Equal(seen, []any{0, 1, 2}) {
		t.Errorf("updaters saw %v, want [0 1 2]", seen)
	}
	if got := f.html(); got != "<span>x/3</span>" {
		t.Errorf("html = %s", got)
	}
}

func TestBatchedUpdatesRenderOnce(t *testing.T) {
	f, root, c := mountCounter(t, vdom.Props{"label": "x"})

	var callbacks []any
	root.Scheduler().Batch(func() {
		for i := 1; i <= 3; i++ {
			c.SetState(State{"n": i}, func() {
				callbacks = append(callbacks, c.State["n"])
			})
		}
		if c.renders != 1 {
			t.Errorf("rendered inside batch: %d", c.renders)
		}
	})

	if c.renders != 2 {
		t.Errorf("renders = %d, want 2", c.renders)
	}
	if !slices.Equal(callbacks, []any{3, 3, 3}) {
		t.Errorf("callbacks = %v, want three calls after commit", callbacks)
	}
	if got := f.html(); got != "<span>x/3</span>" {
		t.Errorf("html = %s", got)
	}
}

func TestEventHandlersAreBatched(t *testing.T) {
	var c *counter
	ref := vdom.CreateRef()
	app := vdom.Div(
		vdom.OnClick(func() {
			c.SetState(State{"n": 1})
			c.SetState(State{"n": 2})
		}),
		counterType.Element(vdom.Props{"ref": ref}),
	)

	f := newFixture()
	root := f.render(t, app)
	c = ref.Current.(*counter)

	root.DispatchEvent(f.first().Children[0], "click", nil)

	if c.renders != 2 {
		t.Errorf("renders = %d, want 2", c.renders)
	}
	if c.State["n"] != 2 {
		t.Errorf("n = %v, want 2", c.State["n"])
	}
}

func TestShouldComponentUpdateFalse(t *testing.T) {
	f, _, c := mountCounter(t, nil)
	c.gate = func(vdom.Props, State) bool { return false }

	called := false
	c.SetState(State{"n": 9}, func() { called = true })

	if c.renders != 1 {
		t.Errorf("renders = %d, want 1", c.renders)
	}
	if c.State["n"] != 9 {
		t.Errorf("state should still advance: %v", c.State)
	}
	if !called {
		t.Error("callback should run even when the render is skipped")
	}
	if got := f.html(); got != "<span>&lt;nil&gt;/0</span>" {
		t.Errorf("html = %s", got)
	}
}

func TestDidUpdateGetsPreviousValues(t *testing.T) {
	_, root, c := mountCounter(t, vdom.Props{"label": "a"})
	c.snapshot = "snap"

	c.SetState(State{"n": 1})
	root.Update(counterType.Element(vdom.Props{"label": "b"}))

	want := []string{"a/0->a/1 snap", "a/1->b/1 snap"}
	if !slices.Equal(c.didUpdate, want) {
		t.Errorf("didUpdate = %v, want %v", c.didUpdate, want)
	}
	if len(c.received) != 1 || c.received[0]["label"] != "b" {
		t.Errorf("received = %v", c.received)
	}
}

func TestDeriveStateFromProps(t *testing.T) {
	derived := Class("Derived", func(vdom.Props) Component { return &counter{} })
	derived.DeriveStateFromProps = func(props vdom.Props, state State) State {
		return State{"n": props["label"]}
	}

	f := newFixture()
	root := f.render(t, derived.Element(vdom.Props{"label": "a"}))
	root.Update(derived.Element(vdom.Props{"label": "b"}))

	if got := f.html(); got != "<span>b/b</span>" {
		t.Errorf("html = %s", got)
	}
}

func TestDefaultProps(t *testing.T) {
	withDefaults := Class("WithDefaults", func(vdom.Props) Component { return &counter{} })
	withDefaults.DefaultProps = vdom.Props{"label": "dflt"}

	f := newFixture()
	root := f.render(t, withDefaults.Element(nil))
	if got := f.html(); got != "<span>dflt/&lt;nil&gt;</span>" {
		t.Errorf("html = %s", got)
	}
	root.Update(withDefaults.Element(vdom.Props{"label": "set"}))
	if got := f.html(); got != "<span>set/&lt;nil&gt;</span>" {
		t.Errorf("html = %s", got)
	}
}

type pure struct {
	PureBase
	renders int
}

func (p *pure) Render() *vdom.Element {
	p.renders++
	return vdom.Span(vdom.Textf("%v", p.Props["v"]))
}

func TestPureBaseSkipsEqualUpdates(t *testing.T) {
	ref := vdom.CreateRef()
	pureType := Class("Pure", func(vdom.Props) Component { return &pure{} })

	f := newFixture()
	root := f.render(t, pureType.Element(vdom.Props{"v": 1, "ref": ref}))
	p := ref.Current.(*pure)

	root.Update(pureType.Element(vdom.Props{"v": 1, "ref": ref}))
	if p.renders != 1 {
		t.Errorf("renders = %d after equal props, want 1", p.renders)
	}
	root.Update(pureType.Element(vdom.Props{"v": 2, "ref": ref}))
	if p.renders != 2 {
		t.Errorf("renders = %d after new props, want 2", p.renders)
	}
	p.SetState(State{"x": 1})
	if p.renders != 3 {
		t.Errorf("renders = %d after new state, want 3", p.renders)
	}
	if got := f.html(); got != "<span>2</span>" {
		t.Errorf("html = %s", got)
	}
}

type parentProbe struct {
	probe
	child *ClassType
}

func (p *parentProbe) Render() *vdom.Element {
	*p.log = append(*p.log, p.name+":render")
	return vdom.Div(p.child.Element(nil), p.child.Element(nil))
}

func TestDidMountRunsChildrenFirst(t *testing.T) {
	var log []string
	child := probeType("child", &log)
	parent := Class("parent", func(vdom.Props) Component {
		return &parentProbe{probe: probe{name: "parent", log: &log}, child: child}
	})

	f := newFixture()
	f.render(t, parent.Element(nil))

	want := []string{
		"parent:willMount", "parent:render",
		"child:willMount", "child:render",
		"child:willMount", "child:render",
		"child:didMount", "child:didMount", "parent:didMount",
	}
	if !slices.Equal(log, want) {
		t.Errorf("log = %v\nwant %v", log, want)
	}
}

type mountSetter struct {
	Base
}

func (m *mountSetter) ComponentWillMount() { m.SetState(State{"ready": true}) }
func (m *mountSetter) Render() *vdom.Element {
	return vdom.Span(vdom.Textf("%v", m.State["ready"]))
}

func TestSetStateInWillMount(t *testing.T) {
	f := newFixture()
	f.render(t, Class("MountSetter", func(vdom.Props) Component { return &mountSetter{} }).Element(nil))
	if got := f.html(); got != "<span>true</span>" {
		t.Errorf("html = %s", got)
	}
}

func TestSetStateAfterUnmountIsIgnored(t *testing.T) {
	_, root, c := mountCounter(t, nil)
	root.Unmount()

	c.SetState(State{"n": 5})
	if c.renders != 1 {
		t.Errorf("renders = %d, want 1", c.renders)
	}
}

func TestForceUpdate(t *testing.T) {
	_, _, c := mountCounter(t, nil)
	c.gate = func(vdom.Props, State) bool { return false }
	c.ForceUpdate()
	if c.renders != 2 {
		t.Errorf("renders = %d, want 2", c.renders)
	}
}

func TestAddStateRejectsUnknownEntries(t *testing.T) {
	_, _, c := mountCounter(t, nil)
	expectFault(t, "R005", func() { c.Updater().AddState(42) })
}

type gated struct {
	Base
	log   *[]string
	allow bool
}

func (g *gated) Render() *vdom.Element {
	*g.log = append(*g.log, "render")
	return vdom.Span(vdom.Textf("%v", g.State["n"]))
}

func (g *gated) ShouldComponentUpdate(vdom.Props, State) bool { return g.allow }

func (g *gated) ComponentWillUpdate() { *g.log = append(*g.log, "willUpdate") }

func TestWillUpdateRunsBeforeRender(t *testing.T) {
	tests := []struct {
		name  string
		allow bool
		want  []string
		html  string
	}{
		{"update allowed", true, []string{"willUpdate", "render"}, "<span>1</span>"},
		{"update skipped", false, nil, "<span>0</span>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log []string
			gatedType := Class("Gated", func(vdom.Props) Component {
				return &gated{Base: Base{State: State{"n": 0}}, log: &log, allow: tt.allow}
			})
			ref := vdom.CreateRef()
			f := newFixture()
			f.render(t, gatedType.Element(vdom.Props{"ref": ref}))
			log = nil

			ref.Current.(*gated).SetState(State{"n": 1})

			if !slices.Equal(log, tt.want) {
				t.Errorf("log = %v, want %v", log, tt.want)
			}
			if got := f.html(); got != tt.html {
				t.Errorf("html = %s, want %s", got, tt.html)
			}
		})
	}
}

func TestDerivedStateReplacesPendingState(t *testing.T) {
	locked := Class("Locked", func(vdom.Props) Component {
		return &counter{Base: Base{State: State{"n": 0}}}
	})
	locked.DeriveStateFromProps = func(props vdom.Props, state State) State {
		if props["label"] == "lock" {
			return State{"n": "locked"}
		}
		return nil
	}

	ref := vdom.CreateRef()
	f := newFixture()
	root := f.render(t, locked.Element(vdom.Props{"ref": ref, "label": "lock"}))
	c := ref.Current.(*counter)

	c.SetState(State{"n": 2, "extra": true})
	if got := f.html(); got != "<span>lock/locked</span>" {
		t.Errorf("html = %s, want <span>lock/locked</span>", got)
	}
	if _, ok := c.State["extra"]; ok {
		t.Errorf("State = %v, want derived state to replace the pending update", c.State)
	}

	root.Update(locked.Element(vdom.Props{"label": "open"}))
	c.SetState(State{"n": 2})
	if got := f.html(); got != "<span>open/2</span>" {
		t.Errorf("html = %s, want <span>open/2</span>", got)
	}
}
