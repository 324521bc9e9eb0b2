package demo

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/vango-dev/vrec/pkg/vdom"
	"github.com/vango-dev/vrec/pkg/vrec"
)

// App holds the component descriptors of the demo and a journal of the
// lifecycle events they report.
type App struct {
	// Theme carries "light" or "dark" from the root to the counter and
	// the theme label.
	Theme *vrec.Context

	loop   *vrec.Loop
	tick   time.Duration
	logger *slog.Logger

	root    *vrec.FuncType
	counter *vrec.ClassType
	todos   *vrec.FuncType
	badge   *vrec.MemoType
	input   *vrec.ForwardRefType
	clock   *vrec.FuncType

	journal      []string
	title        string
	badgeRenders int
	memoRuns     int
	nameRef      *vdom.Ref
}

// NewApp creates the demo components. Effects schedule clock ticks on
// loop every tick; a zero tick leaves the clock to the tick button.
func NewApp(loop *vrec.Loop, tick time.Duration, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		Theme:  vrec.CreateContext("light"),
		loop:   loop,
		tick:   tick,
		logger: logger.With("component", "demo"),
	}
	a.Theme.DisplayName = "Theme"

	a.root = vrec.Func("App", a.renderApp)
	a.counter = vrec.Class("Counter", func(props vdom.Props) vrec.Component {
		return &counter{app: a, Base: vrec.Base{State: vrec.State{"n": 0}}}
	})
	a.counter.DefaultProps = vdom.Props{"step": 1, "label": "count"}
	a.counter.ContextType = a.Theme
	a.todos = vrec.Func("Todos", a.renderTodos)
	a.badge = vrec.Memo(vrec.Func("Badge", a.renderBadge), nil)
	a.input = vrec.ForwardRef("TextInput", renderInput)
	a.clock = vrec.Func("Clock", a.renderClock)
	return a
}

// Element returns the root element of the demo.
func (a *App) Element() *vdom.Element {
	return a.root.Element(nil)
}

// Journal returns the recorded lifecycle events in order.
func (a *App) Journal() []string {
	return slices.Clone(a.journal)
}

// Title is the value last written by the clock's layout effect.
func (a *App) Title() string { return a.title }

// BadgeRenders counts invocations of the memoized badge.
func (a *App) BadgeRenders() int { return a.badgeRenders }

// MemoRuns counts recomputations of the todo list's remaining count.
func (a *App) MemoRuns() int { return a.memoRuns }

func (a *App) record(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.journal = append(a.journal, msg)
	a.logger.Debug(msg)
}

func (a *App) renderApp(h *vrec.Hooks, props vdom.Props) *vdom.Element {
	theme, setTheme := vrec.UseState(h, "light")
	showClock, setShowClock := vrec.UseState(h, true)
	nameRef := vrec.UseRef(h)
	a.nameRef = nameRef

	return a.Theme.Provide(theme, vdom.Main(vdom.ID("app"),
		vdom.H1(vdom.ID("title"), "vrec demo"),
		a.Theme.Consume(func(v any) *vdom.Element {
			return vdom.Span(vdom.ID("theme-label"), vdom.Textf("theme: %v", v))
		}),
		vdom.Button(vdom.ID("theme"), vdom.OnClick(func() {
			if theme == "light" {
				setTheme("dark")
			} else {
				setTheme("light")
			}
		}), "toggle theme"),
		a.counter.Element(nil),
		a.todos.Element(nil),
		vdom.H(a.input, vdom.RefTo(nameRef), vdom.Prop("placeholder", "name")),
		vdom.Button(vdom.ID("focus"), vdom.OnClick(func() {
			a.record("focus %v", nameRef.Current)
		}), "focus"),
		vdom.Button(vdom.ID("clock-toggle"), vdom.OnClick(func() {
			setShowClock(!showClock)
		}), "toggle clock"),
		vdom.If(showClock, a.clock.Element(nil)),
	))
}

type counter struct {
	vrec.Base
	app *App
}

func (c *counter) Render() *vdom.Element {
	step, _ := c.Props["step"].(int)
	return vdom.Div(vdom.ID("counter"), vdom.Class("counter", fmt.Sprintf("theme-%v", c.Context)),
		vdom.Span(vdom.ID("count"), vdom.Textf("%v: %v", c.Props["label"], c.State["n"])),
		vdom.Button(vdom.ID("inc"), vdom.OnClick(func() {
			c.UpdateState(func(s vrec.State) vrec.State {
				n, _ := s["n"].(int)
				return vrec.State{"n": n + step}
			})
		}), "+"),
		vdom.Button(vdom.ID("reset"), vdom.OnClick(func() {
			c.SetState(vrec.State{"n": 0}, func() { c.app.record("counter reset") })
		}), "reset"),
	)
}

func (c *counter) ComponentDidMount() { c.app.record("counter mounted") }

func (c *counter) ComponentDidUpdate(prevProps vdom.Props, prevState vrec.State, snapshot any) {
	if prevState["n"] != c.State["n"] {
		c.app.record("counter %v -> %v", prevState["n"], c.State["n"])
	}
}

func (c *counter) ComponentWillUnmount() { c.app.record("counter unmounted") }

func (a *App) renderBadge(h *vrec.Hooks, props vdom.Props) *vdom.Element {
	a.badgeRenders++
	return vdom.Span(vdom.ID("remaining"), vdom.Textf("%v left", props["remaining"]))
}

func renderInput(h *vrec.Hooks, props vdom.Props, ref *vdom.Ref) *vdom.Element {
	return vdom.Input(
		vdom.ID("name"),
		vdom.Type_("text"),
		vdom.Placeholder(props.String("placeholder")),
		vdom.RefTo(ref),
	)
}

func (a *App) renderClock(h *vrec.Hooks, props vdom.Props) *vdom.Element {
	ticks, tick := vrec.UseReducer(h, func(n int, _ struct{}) int { return n + 1 }, 0)

	vrec.UseEffect(h, func() func() {
		a.record("clock started")
		stopped := false
		var arm func()
		arm = func() {
			if a.tick <= 0 || a.loop == nil {
				return
			}
			a.loop.AfterFunc(a.tick, func() {
				if stopped {
					return
				}
				tick(struct{}{})
				arm()
			})
		}
		arm()
		return func() {
			stopped = true
			a.record("clock stopped")
		}
	}, []any{})

	vrec.UseLayoutEffect(h, func() func() {
		a.title = fmt.Sprintf("ticks %d", ticks)
		return nil
	}, []any{ticks})

	return vdom.P(vdom.ID("clock"),
		vdom.Span(vdom.ID("ticks"), vdom.Textf("ticks: %d", ticks)),
		vdom.Button(vdom.ID("tick"), vdom.OnClick(func() { tick(struct{}{}) }), "tick"),
	)
}
