package surface

import "sync"

// Mutation is a single recorded surface call.
type Mutation struct {
	Op   Op
	Name string // Tag, property or style name, or text content
}

// Recorder is a Surface decorator that records every call before
// forwarding it.
type Recorder struct {
	Surface

	mu      sync.Mutex
	log     []Mutation
	discard bool
	hook    func(Mutation)
}

// NewRecorder wraps s.
func NewRecorder(s Surface) *Recorder {
	return &Recorder{Surface: s}
}

// Observe wraps s and reports each mutation to fn without keeping a log.
func Observe(s Surface, fn func(Mutation)) *Recorder {
	return &Recorder{Surface: s, discard: true, hook: fn}
}

// OnMutation registers fn to be called for each recorded mutation.
func (r *Recorder) OnMutation(fn func(Mutation)) {
	r.mu.Lock()
	r.hook = fn
	r.mu.Unlock()
}

func (r *Recorder) record(op Op, name string) {
	m := Mutation{Op: op, Name: name}
	r.mu.Lock()
	if !r.discard {
		r.log = append(r.log, m)
	}
	hook := r.hook
	r.mu.Unlock()
	if hook != nil {
		hook(m)
	}
}

// Mutations returns a copy of the recorded calls.
func (r *Recorder) Mutations() []Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Mutation, len(r.log))
	copy(out, r.log)
	return out
}

// Count returns how many times op was recorded.
func (r *Recorder) Count(op Op) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.log {
		if m.Op == op {
			n++
		}
	}
	return n
}

// Structural returns the number of recorded insert, append, remove and
// replace calls.
func (r *Recorder) Structural() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.log {
		if m.Op.IsStructural() {
			n++
		}
	}
	return n
}

// Reset clears the log.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.log = nil
	r.mu.Unlock()
}

func (r *Recorder) CreateNode(tag string) Node {
	r.record(OpCreateNode, tag)
	return r.Surface.CreateNode(tag)
}

func (r *Recorder) CreateText(text string) Node {
	r.record(OpCreateText, text)
	return r.Surface.CreateText(text)
}

func (r *Recorder) SetProperty(node Node, name string, value any) {
	r.record(OpSetProperty, name)
	r.Surface.SetProperty(node, name, value)
}

func (r *Recorder) SetStyle(node Node, name string, value any) {
	r.record(OpSetStyle, name)
	r.Surface.SetStyle(node, name, value)
}

func (r *Recorder) SetText(node Node, text string) {
	r.record(OpSetText, text)
	r.Surface.SetText(node, text)
}

func (r *Recorder) InsertBefore(parent, node, ref Node) {
	r.record(OpInsertBefore, "")
	r.Surface.InsertBefore(parent, node, ref)
}

func (r *Recorder) AppendChild(parent, node Node) {
	r.record(OpAppendChild, "")
	r.Surface.AppendChild(parent, node)
}

func (r *Recorder) RemoveChild(parent, node Node) {
	r.record(OpRemoveChild, "")
	r.Surface.RemoveChild(parent, node)
}

func (r *Recorder) ReplaceChild(parent, newNode, oldNode Node) {
	r.record(OpReplaceChild, "")
	r.Surface.ReplaceChild(parent, newNode, oldNode)
}
