package demo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/vrec/pkg/surface"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s := NewSession(append([]Option{WithLogger(quietLogger())}, opts...)...)
	t.Cleanup(s.Close)
	return s
}

func (s *Session) text(id string) string {
	return s.Find(id).TextContent()
}

func click(t *testing.T, s *Session, id string) {
	t.Helper()
	if _, err := s.Dispatch(id, "click"); err != nil {
		t.Fatalf("Dispatch(%q) error = %v", id, err)
	}
	s.Settle()
}

func TestSessionMount(t *testing.T) {
	s := newTestSession(t)

	tests := []struct {
		id   string
		want string
	}{
		{"title", "vrec demo"},
		{"theme-label", "theme: light"},
		{"count", "count: 0"},
		{"remaining", "3 left"},
		{"ticks", "ticks: 0"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := s.text(tt.id); got != tt.want {
				t.Errorf("text(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}

	if got := s.Find("counter").Attrs["class"]; got != "counter theme-light" {
		t.Errorf("counter class = %v, want %v", got, "counter theme-light")
	}
	if got := s.App.Title(); got != "ticks 0" {
		t.Errorf("Title() = %q, want %q", got, "ticks 0")
	}
	want := []string{"counter mounted", "clock started"}
	if got := s.App.Journal(); !slices.Equal(got, want) {
		t.Errorf("Journal() = %v, want %v", got, want)
	}
}

func TestCounter(t *testing.T) {
	s := newTestSession(t)

	click(t, s, "inc")
	click(t, s, "inc")
	if got := s.text("count"); got != "count: 2" {
		t.Errorf("count = %q, want %q", got, "count: 2")
	}

	click(t, s, "reset")
	if got := s.text("count"); got != "count: 0" {
		t.Errorf("count = %q, want %q", got, "count: 0")
	}

	journal := s.App.Journal()
	want := []string{"counter 0 -> 1", "counter 1 -> 2", "counter 2 -> 0", "counter reset"}
	if got := journal[2:]; !slices.Equal(got, want) {
		t.Errorf("Journal()[2:] = %v, want %v", got, want)
	}
}

func TestThemeReachesConsumers(t *testing.T) {
	s := newTestSession(t)
	counterNode := s.Find("counter")

	click(t, s, "theme")

	if got := s.text("theme-label"); got != "theme: dark" {
		t.Errorf("theme-label = %q, want %q", got, "theme: dark")
	}
	if got := s.Find("counter").Attrs["class"]; got != "counter theme-dark" {
		t.Errorf("counter class = %v, want %v", got, "counter theme-dark")
	}
	if s.Find("counter") != counterNode {
		t.Error("counter was remounted by a context change")
	}
	if got := s.App.BadgeRenders(); got != 1 {
		t.Errorf("BadgeRenders() = %d, want 1", got)
	}
	if got := s.App.MemoRuns(); got != 1 {
		t.Errorf("MemoRuns() = %d, want 1", got)
	}
}

func TestTodos(t *testing.T) {
	s := newTestSession(t, WithKeyedChildren())

	click(t, s, "add")
	if got := s.text("remaining"); got != "4 left" {
		t.Errorf("remaining = %q, want %q", got, "4 left")
	}
	click(t, s, "todo-1")
	if got := s.Find("todo-1").Attrs["class"]; got != "todo done" {
		t.Errorf("todo-1 class = %v, want %v", got, "todo done")
	}

	first := s.Find("todo-1")
	click(t, s, "rotate")

	var ids []string
	for _, li := range s.Find("todo-list").Children {
		ids = append(ids, li.Attrs["id"].(string))
	}
	want := []string{"todo-2", "todo-3", "todo-4", "todo-1"}
	if !slices.Equal(ids, want) {
		t.Errorf("order = %v, want %v", ids, want)
	}
	if s.Find("todo-1") != first {
		t.Error("keyed rotate recreated todo-1")
	}

	if got := s.App.MemoRuns(); got != 4 {
		t.Errorf("MemoRuns() = %d, want 4", got)
	}
	// rotate leaves the remaining count alone, so the badge is skipped.
	if got := s.App.BadgeRenders(); got != 3 {
		t.Errorf("BadgeRenders() = %d, want 3", got)
	}

	if _, err := s.Dispatch("todo-2", "dblclick"); err != nil {
		t.Fatalf("Dispatch error = %v", err)
	}
	if s.Find("todo-2") != nil {
		t.Error("todo-2 still present after dblclick")
	}
}

func TestClock(t *testing.T) {
	s := newTestSession(t)

	click(t, s, "tick")
	if got := s.text("ticks"); got != "ticks: 1" {
		t.Errorf("ticks = %q, want %q", got, "ticks: 1")
	}
	if got := s.App.Title(); got != "ticks 1" {
		t.Errorf("Title() = %q, want %q", got, "ticks 1")
	}

	click(t, s, "clock-toggle")
	if s.Find("clock") != nil {
		t.Error("clock still mounted")
	}
	journal := s.App.Journal()
	if got := journal[len(journal)-1]; got != "clock stopped" {
		t.Errorf("last journal entry = %q, want %q", got, "clock stopped")
	}

	click(t, s, "clock-toggle")
	if got := s.text("ticks"); got != "ticks: 0" {
		t.Errorf("remounted ticks = %q, want %q", got, "ticks: 0")
	}
}

func TestClockTimer(t *testing.T) {
	s := NewSession(WithLogger(quietLogger()), WithTick(time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	runDone := make(chan error, 1)
	go func() { runDone <- s.Run(ctx) }()

	deadline := time.Now().Add(time.Second)
	var ticks string
	for time.Now().Before(deadline) {
		if err := s.Do(ctx, func() { ticks = s.text("ticks") }); err != nil {
			t.Fatalf("Do() error = %v", err)
		}
		if ticks != "ticks: 0" {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if ticks == "ticks: 0" {
		t.Error("clock never ticked")
	}

	if err := s.Do(ctx, func() { s.Root.Unmount() }); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	cancel()
	if err := <-runDone; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
}

func TestForwardRef(t *testing.T) {
	s := newTestSession(t)

	click(t, s, "focus")
	journal := s.App.Journal()
	if got := journal[len(journal)-1]; !strings.HasPrefix(got, "focus <input#") {
		t.Errorf("focus entry = %q, want prefix %q", got, "focus <input#")
	}
	if n, ok := s.App.nameRef.Current.(*surface.MemNode); !ok || n != s.Find("name") {
		t.Errorf("nameRef.Current = %v, want the input node", s.App.nameRef.Current)
	}
}

func TestDispatchUnknownTarget(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Dispatch("missing", "click")
	if !errors.Is(err, ErrNoTarget) {
		t.Errorf("Dispatch() error = %v, want %v", err, ErrNoTarget)
	}
}

func TestSurfaceWrap(t *testing.T) {
	var rec *surface.Recorder
	s := newTestSession(t, WithSurface(func(m surface.Surface) surface.Surface {
		rec = surface.NewRecorder(m)
		return rec
	}))

	if rec.Count(surface.OpCreateNode) == 0 {
		t.Error("wrapped surface saw no CreateNode")
	}
	rec.Reset()
	click(t, s, "inc")
	if got := rec.Structural(); got != 0 {
		t.Errorf("Structural() after increment = %d, want 0", got)
	}
}

func TestClose(t *testing.T) {
	s := NewSession(WithLogger(quietLogger()))
	s.Close()

	if s.Root.Mounted() {
		t.Error("root still mounted after Close")
	}
	if got := s.HTML(); got != "" {
		t.Errorf("HTML() = %q, want empty", got)
	}
	journal := s.App.Journal()
	for _, want := range []string{"counter unmounted", "clock stopped"} {
		if !slices.Contains(journal, want) {
			t.Errorf("Journal() = %v, missing %q", journal, want)
		}
	}
}
