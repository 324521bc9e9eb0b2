package vrec

import "github.com/vango-dev/vrec/pkg/vdom"

// Observer receives runtime notifications. Implementations must be cheap;
// they run inline with reconciliation.
type Observer interface {
	// ComponentRendered is called after every component invocation.
	ComponentRendered(kind vdom.VKind, name string)

	// CommitStarted is called when a reconcile pass begins. reason is one
	// of "mount", "update", "state", "unmount". The returned function is
	// called when the pass ends, with the fault that aborted it, if any.
	CommitStarted(reason, name string) func(err error)

	// BatchFlushed is called after a batch window closes with the number
	// of distinct components that were updated.
	BatchFlushed(updates int)
}

// multiObserver fans notifications out to several observers.
type multiObserver []Observer

func (m multiObserver) ComponentRendered(kind vdom.VKind, name string) {
	for _, o := range m {
		o.ComponentRendered(kind, name)
	}
}

func (m multiObserver) CommitStarted(reason, name string) func(err error) {
	done := make([]func(error), 0, len(m))
	for _, o := range m {
		if fn := o.CommitStarted(reason, name); fn != nil {
			done = append(done, fn)
		}
	}
	return func(err error) {
		for i := len(done) - 1; i >= 0; i-- {
			done[i](err)
		}
	}
}

func (m multiObserver) BatchFlushed(updates int) {
	for _, o := range m {
		o.BatchFlushed(updates)
	}
}
