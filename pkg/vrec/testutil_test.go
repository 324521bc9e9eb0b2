package vrec

import (
	"testing"

	verr "github.com/vango-dev/vrec/internal/errors"
	"github.com/vango-dev/vrec/pkg/surface"
	"github.com/vango-dev/vrec/pkg/vdom"
)

// fixture is a memory surface wrapped in a recorder with a body container.
type fixture struct {
	mem  *surface.Memory
	rec  *surface.Recorder
	body *surface.MemNode
}

func newFixture() *fixture {
	mem := surface.NewMemory()
	return &fixture{
		mem:  mem,
		rec:  surface.NewRecorder(mem),
		body: mem.NewContainer("body"),
	}
}

func (f *fixture) render(t *testing.T, elem *vdom.Element, opts ...Option) *Root {
	t.Helper()
	return Render(elem, f.body, f.rec, opts...)
}

func (f *fixture) html() string {
	return surface.InnerHTML(f.body)
}

// first returns the first child of the container.
func (f *fixture) first() *surface.MemNode {
	if len(f.body.Children) == 0 {
		return nil
	}
	return f.body.Children[0]
}

// expectFault runs fn and fails unless it panics with a fault of code.
func expectFault(t *testing.T, code string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		p := recover()
		if p == nil {
			t.Fatalf("expected fault %s, got none", code)
		}
		f, ok := verr.AsFault(p)
		if !ok {
			t.Fatalf("expected fault %s, got %v", code, p)
		}
		if f.Code != code {
			t.Errorf("fault code = %s, want %s", f.Code, code)
		}
	}()
	fn()
}

// probe is a class component recording its lifecycle into a shared log.
type probe struct {
	Base
	name    string
	log     *[]string
	renders int
}

func (p *probe) Render() *vdom.Element {
	p.renders++
	*p.log = append(*p.log, p.name+":render")
	return vdom.Span(vdom.Textf("%s %v", p.name, p.State["n"]))
}

func (p *probe) ComponentWillMount()   { *p.log = append(*p.log, p.name+":willMount") }
func (p *probe) ComponentDidMount()    { *p.log = append(*p.log, p.name+":didMount") }
func (p *probe) ComponentWillUnmount() { *p.log = append(*p.log, p.name+":willUnmount") }

func probeType(name string, log *[]string) *ClassType {
	return Class(name, func(vdom.Props) Component {
		return &probe{name: name, log: log}
	})
}
