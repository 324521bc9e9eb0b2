package instrument

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/vrec/pkg/surface"
	"github.com/vango-dev/vrec/pkg/vdom"
	"github.com/vango-dev/vrec/pkg/vrec"
)

var counter = vrec.Func("Counter", func(h *vrec.Hooks, props vdom.Props) *vdom.Element {
	n, setN := vrec.UseState(h, 0)
	return vdom.Button(
		vdom.OnClick(func() { setN(n + 1) }),
		vdom.Textf("%d", n),
	)
})

// mountCounter renders the counter, clicks it once and returns the root.
func mountCounter(t *testing.T, s func(surface.Surface) surface.Surface, opts ...vrec.Option) *vrec.Root {
	t.Helper()
	mem := surface.NewMemory()
	body := mem.NewContainer("body")
	var target surface.Surface = mem
	if s != nil {
		target = s(mem)
	}
	root := vrec.Render(counter.Element(nil), body, target, opts...)
	root.DispatchEvent(body.Children[0], "click", nil)
	if got := surface.InnerHTML(body); got != "<button>1</button>" {
		t.Fatalf("html = %q, want %q", got, "<button>1</button>")
	}
	return root
}

// renderFault mounts an element the reconciler cannot handle.
func renderFault(opts ...vrec.Option) (recovered any) {
	mem := surface.NewMemory()
	defer func() { recovered = recover() }()
	vrec.Render(vdom.CreateElement(42, nil), mem.NewContainer("body"), mem, opts...)
	return nil
}

type recordedSpan struct {
	noop.Span
	name   string
	attrs  map[attribute.Key]attribute.Value
	status codes.Code
	errs   []error
	ended  bool
}

func (s *recordedSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

func (s *recordedSpan) SetStatus(code codes.Code, _ string) { s.status = code }

func (s *recordedSpan) RecordError(err error, _ ...trace.EventOption) {
	s.errs = append(s.errs, err)
}

func (s *recordedSpan) End(...trace.SpanEndOption) { s.ended = true }

type recordingTracer struct {
	embedded.Tracer
	spans []*recordedSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	span := &recordedSpan{name: name, attrs: map[attribute.Key]attribute.Value{}}
	span.SetAttributes(cfg.Attributes()...)
	t.spans = append(t.spans, span)
	return trace.ContextWithSpan(ctx, span), span
}

type recordingProvider struct {
	embedded.TracerProvider
	tracer *recordingTracer
	name   string
}

func (p *recordingProvider) Tracer(name string, _ ...trace.TracerOption) trace.Tracer {
	p.name = name
	return p.tracer
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{tracer: &recordingTracer{}}
}
