package instrument

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	verr "github.com/vango-dev/vrec/internal/errors"
	"github.com/vango-dev/vrec/pkg/vdom"
	"github.com/vango-dev/vrec/pkg/vrec"
)

// Default tracer name for vrec roots.
const defaultTracerName = "vrec"

// TracerConfig configures the OpenTelemetry observer.
type TracerConfig struct {
	// TracerName is the name of the tracer (default: "vrec").
	TracerName string

	// Provider supplies the tracer (default: the global provider).
	Provider trace.TracerProvider

	// Context is the parent context of every span.
	Context context.Context
}

// TracerOption configures the OpenTelemetry observer.
type TracerOption func(*TracerConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracerOption {
	return func(c *TracerConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(p trace.TracerProvider) TracerOption {
	return func(c *TracerConfig) {
		c.Provider = p
	}
}

// WithParentContext sets the context spans are started from.
func WithParentContext(ctx context.Context) TracerOption {
	return func(c *TracerConfig) {
		c.Context = ctx
	}
}

// Tracer records one span per reconcile pass and per batch flush. It
// implements vrec.Observer and, like the Root it observes, must only be
// used from one goroutine.
type Tracer struct {
	tracer  trace.Tracer
	ctx     context.Context
	renders int
	active  bool
}

var _ vrec.Observer = (*Tracer)(nil)

// NewTracer creates a tracing observer.
func NewTracer(opts ...TracerOption) *Tracer {
	config := TracerConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Provider == nil {
		config.Provider = otel.GetTracerProvider()
	}
	if config.Context == nil {
		config.Context = context.Background()
	}
	return &Tracer{
		tracer: config.Provider.Tracer(config.TracerName),
		ctx:    config.Context,
	}
}

// ComponentRendered implements vrec.Observer.
func (t *Tracer) ComponentRendered(kind vdom.VKind, name string) {
	if t.active {
		t.renders++
	}
}

// CommitStarted implements vrec.Observer.
func (t *Tracer) CommitStarted(reason, name string) func(err error) {
	_, span := t.tracer.Start(t.ctx, "vrec."+reason,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("vrec.reason", reason),
			attribute.String("vrec.root", name),
		),
	)
	t.active = true
	t.renders = 0

	return func(err error) {
		span.SetAttributes(attribute.Int("vrec.renders", t.renders))
		t.active = false
		if err != nil {
			if f, ok := verr.AsFault(err); ok {
				span.SetAttributes(attribute.String("vrec.fault", f.Code))
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}

// BatchFlushed implements vrec.Observer.
func (t *Tracer) BatchFlushed(updates int) {
	_, span := t.tracer.Start(t.ctx, "vrec.batch",
		trace.WithAttributes(attribute.Int("vrec.updates", updates)),
	)
	span.End()
}
