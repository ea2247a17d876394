//go:build magic_unsafe

package magic

import "unsafe"

// UnsafeMatchFunc receives a pointer to the first byte of the buffer and no
// length. It must work out on its own how many bytes it may read; reading past
// the end of the buffer is undefined behavior and cannot be detected here.
// For an empty buffer the pointer may be nil.
type UnsafeMatchFunc func(data unsafe.Pointer) bool

type unsafeFnStrategy struct {
	fn UnsafeMatchFunc
}

func (s unsafeFnStrategy) matches(data []byte, _ [][]byte, _ []int) bool {
	return s.fn(unsafe.Pointer(unsafe.SliceData(data)))
}

type unsafeAnyStrategy struct {
	fns []UnsafeMatchFunc
}

func (s unsafeAnyStrategy) matches(data []byte, _ [][]byte, _ []int) bool {
	ptr := unsafe.Pointer(unsafe.SliceData(data))
	for _, fn := range s.fns {
		if fn(ptr) {
			return true
		}
	}
	return false
}

type unsafeAllStrategy struct {
	fns []UnsafeMatchFunc
}

func (s unsafeAllStrategy) matches(data []byte, _ [][]byte, _ []int) bool {
	ptr := unsafe.Pointer(unsafe.SliceData(data))
	for _, fn := range s.fns {
		if !fn(ptr) {
			return false
		}
	}
	return true
}

// WithFnUnsafe is WithFn for raw-pointer predicates.
func WithFnUnsafe(fn UnsafeMatchFunc) Strategy {
	return unsafeFnStrategy{fn: fn}
}

// AnyOfUnsafe is AnyOf for raw-pointer predicates.
func AnyOfUnsafe(fn UnsafeMatchFunc, more ...UnsafeMatchFunc) Strategy {
	return unsafeAnyStrategy{fns: append([]UnsafeMatchFunc{fn}, more...)}
}

// AllOfUnsafe is AllOf for raw-pointer predicates.
func AllOfUnsafe(fn UnsafeMatchFunc, more ...UnsafeMatchFunc) Strategy {
	return unsafeAllStrategy{fns: append([]UnsafeMatchFunc{fn}, more...)}
}
