// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import "reflect"

// SizeOf returns the size in bytes of the concrete type T, as stored in a
// Storage. Purely a sizing aid for choosing a capacity; it has no effect on
// any storage instance.
func SizeOf[T any]() uintptr {
	return reflect.TypeFor[T]().Size()
}

// MaxSize returns the maximum of the given sizes, 0 for no arguments.
// Combined with [SizeOf] it computes the capacity for a closed set of
// candidate types, independent of argument order:
//
//	s := slot.New[Shape](slot.MaxSize(slot.SizeOf[Circle](), slot.SizeOf[Rect]()))
func MaxSize(sizes ...uintptr) uintptr {
	var m uintptr
	for _, size := range sizes {
		m = max(m, size)
	}
	return m
}
