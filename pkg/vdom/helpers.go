package vdom

import "fmt"

// Text creates a text element.
func Text(content string) *Element {
	return NewText(content)
}

// Textf creates a formatted text element.
func Textf(format string, args ...any) *Element {
	return NewText(fmt.Sprintf(format, args...))
}

// If returns the element if condition is true, nil otherwise.
// A nil child keeps its position as a hole in the child list.
func If(condition bool, el *Element) *Element {
	if condition {
		return el
	}
	return nil
}

// IfElse returns the first element if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Element) *Element {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Element) *Element {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to child elements.
func Range[T any](items []T, fn func(item T, index int) *Element) []*Element {
	result := make([]*Element, 0, len(items))
	for i, item := range items {
		result = append(result, fn(item, i))
	}
	return result
}

// Walk visits el and its element children depth-first, pre-order.
// Composite elements are visited but not expanded.
func Walk(el *Element, fn func(*Element) bool) {
	if el == nil || !fn(el) {
		return
	}
	for _, child := range Children(el.Props) {
		Walk(child, fn)
	}
}
