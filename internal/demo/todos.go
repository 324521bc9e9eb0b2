package demo

import (
	"fmt"

	"github.com/vango-dev/vrec/pkg/vdom"
	"github.com/vango-dev/vrec/pkg/vrec"
)

type todo struct {
	ID    int
	Title string
	Done  bool
}

type todoState struct {
	items   []todo
	next    int
	version int
}

type todoAction struct {
	kind string // add, toggle, remove, rotate
	id   int
}

func initialTodos() todoState {
	return todoState{
		items: []todo{
			{ID: 1, Title: "write reconciler"},
			{ID: 2, Title: "test hooks"},
			{ID: 3, Title: "ship"},
		},
		next: 4,
	}
}

func reduceTodos(s todoState, a todoAction) todoState {
	items := make([]todo, 0, len(s.items)+1)
	switch a.kind {
	case "add":
		items = append(items, s.items...)
		items = append(items, todo{ID: s.next, Title: fmt.Sprintf("task %d", s.next)})
		s.next++
	case "toggle":
		for _, it := range s.items {
			if it.ID == a.id {
				it.Done = !it.Done
			}
			items = append(items, it)
		}
	case "remove":
		for _, it := range s.items {
			if it.ID != a.id {
				items = append(items, it)
			}
		}
	case "rotate":
		if len(s.items) > 0 {
			items = append(items, s.items[1:]...)
			items = append(items, s.items[0])
		}
	default:
		return s
	}
	s.items = items
	s.version++
	return s
}

func (a *App) renderTodos(h *vrec.Hooks, props vdom.Props) *vdom.Element {
	st, dispatch := vrec.UseReducer(h, reduceTodos, initialTodos())

	remaining := vrec.UseMemo(h, func() int {
		a.memoRuns++
		n := 0
		for _, it := range st.items {
			if !it.Done {
				n++
			}
		}
		return n
	}, []any{st.version})

	add := vrec.UseCallback(h, func() { dispatch(todoAction{kind: "add"}) }, []any{})

	return vdom.Section(vdom.ID("todos"),
		vdom.Ul(vdom.ID("todo-list"), vdom.Range(st.items, func(it todo, _ int) *vdom.Element {
			class := "todo"
			if it.Done {
				class = "todo done"
			}
			return vdom.Li(
				vdom.Key(it.ID),
				vdom.ID(fmt.Sprintf("todo-%d", it.ID)),
				vdom.Class(class),
				vdom.OnClick(func() { dispatch(todoAction{kind: "toggle", id: it.ID}) }),
				vdom.OnDblClick(func() { dispatch(todoAction{kind: "remove", id: it.ID}) }),
				it.Title,
			)
		})),
		vdom.Button(vdom.ID("add"), vdom.OnClick(add), "add"),
		vdom.Button(vdom.ID("rotate"), vdom.OnClick(func() { dispatch(todoAction{kind: "rotate"}) }), "rotate"),
		vdom.H(a.badge, vdom.Prop("remaining", remaining)),
	)
}
