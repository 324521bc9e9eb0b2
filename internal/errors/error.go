package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of fault.
type Category string

const (
	CategoryReconcile Category = "reconcile"
	CategoryComponent Category = "component"
	CategoryEvent     Category = "event"
	CategoryConfig    Category = "config"
	CategorySnapshot  Category = "snapshot"
	CategoryCLI       Category = "cli"
)

// Fault is a structured error with a registered code, the operation that
// raised it and an optional fix suggestion.
type Fault struct {
	// Code is a unique error identifier (e.g., "R001").
	Code string

	// Category is the fault type.
	Category Category

	// Message is a short description of the fault.
	Message string

	// Detail is a longer explanation.
	Detail string

	// Op is the operation that failed (e.g., "reconcile.mount").
	Op string

	// Subject names the element, component or key involved, if any.
	Subject string

	// Suggestion is a hint on how to fix the fault.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Fault) Error() string {
	msg := e.Message
	if e.Subject != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Subject)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Fault) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a Fault with the same code.
func (e *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithOp records the failing operation.
func (e *Fault) WithOp(op string) *Fault {
	e.Op = op
	return e
}

// WithSubject records the element or component the fault concerns.
func (e *Fault) WithSubject(format string, args ...any) *Fault {
	e.Subject = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion.
func (e *Fault) WithSuggestion(s string) *Fault {
	e.Suggestion = s
	return e
}

// WithDetail replaces the registered explanation.
func (e *Fault) WithDetail(d string) *Fault {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *Fault) Wrap(err error) *Fault {
	e.Wrapped = err
	return e
}

// New creates a Fault from a registered code.
func New(code string) *Fault {
	template, ok := registry[code]
	if !ok {
		return &Fault{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Fault{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a Fault with a formatted message and no code.
func Newf(category Category, format string, args ...any) *Fault {
	return &Fault{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a Fault. Faults pass through unchanged.
func FromError(err error, code string) *Fault {
	if err == nil {
		return nil
	}
	var f *Fault
	if stderrors.As(err, &f) {
		return f
	}
	return New(code).Wrap(err)
}

// AsFault extracts a Fault from a recovered panic value or an error chain.
func AsFault(v any) (*Fault, bool) {
	switch x := v.(type) {
	case *Fault:
		return x, x != nil
	case error:
		var f *Fault
		if stderrors.As(x, &f) {
			return f, true
		}
	}
	return nil, false
}

// Raise panics with a Fault built from code, op and subject.
// It is the runtime's only way of reporting an unrecoverable render fault.
func Raise(code, op, format string, args ...any) {
	f := New(code).WithOp(op)
	if format != "" {
		f.WithSubject(format, args...)
	}
	panic(f)
}
