package vdom

import (
	"reflect"
	"unsafe"
)

// Same reports whether a and b are the same value in the identity sense
// used by shallow comparison and hook dependency lists: comparable values
// compare with ==, maps and funcs compare by reference, slices by backing
// array and length. Values of different dynamic types are never the same.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}

	switch ta.Kind() {
	case reflect.Func:
		// A func stored in an interface is pointer-shaped: the data word is
		// the closure itself, so it identifies this particular func value.
		return ifaceData(a) == ifaceData(b)
	case reflect.Map:
		return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Len() == vb.Len() && va.UnsafePointer() == vb.UnsafePointer()
	}

	if !ta.Comparable() {
		return false
	}
	return safeEqual(a, b)
}

// safeEqual compares two values of a comparable static type. Structs and
// arrays holding interfaces can still panic on uncomparable contents.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// eface mirrors the runtime layout of an empty interface: a type word
// followed by a data word.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// ifaceData returns the data word of v. It assumes the gc runtime's
// two-word interface layout and that funcs are stored directly in the data
// word. The func cases of TestSame fail if either stops holding.
func ifaceData(v any) unsafe.Pointer {
	return (*eface)(unsafe.Pointer(&v)).data
}

// ShallowEqual reports whether a and b hold the same keys with Same values.
// A nil Props equals an empty one.
func ShallowEqual(a, b Props) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !Same(av, bv) {
			return false
		}
	}
	return true
}

// SameDeps reports whether two dependency lists are index-aligned Same.
// A nil list never matches, so hooks given nil deps recompute every render.
func SameDeps(prev, next []any) bool {
	if prev == nil || next == nil {
		return false
	}
	if len(prev) != len(next) {
		return false
	}
	for i := range next {
		if !Same(prev[i], next[i]) {
			return false
		}
	}
	return true
}
