// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import (
	"fmt"
	"reflect"
)

// Storing operations. Go methods cannot introduce type parameters, so the
// operations parameterized by the concrete type T are free functions taking
// the storage, like the cast family in cast.go.
//
// Every store checks, before touching the storage, that *T implements B and
// that T fits the capacity. Violations are programmer errors and panic with
// the types involved; a rejected store leaves the storage unchanged.

// Of returns a new Storage with the given capacity holding v.
// The base type is given explicitly, the concrete type is inferred:
//
//	s := slot.Of[Shape](capacity, Circle{Radius: 2})
func Of[B, T any](capacity uintptr, v T) *Storage[B] {
	s := New[B](capacity)
	Put(s, v)
	return s
}

// Put replaces the contents of s with v, releasing any prior value first
// and binding the replication handler for T atomically with the store.
func Put[B, T any](s *Storage[B], v T) {
	checkStorable[B, T](s.capacity)
	s.Reset()
	s.cell = &v
	s.rep = replicate[T]
}

// Emplace constructs a zero T directly in s, releasing any prior value
// first, and returns a pointer to the new value so the caller can
// initialize and use T-specific fields without a downcast:
//
//	c := slot.Emplace[Shape, Circle](s)
//	c.Radius = 2
//
// Emplace avoids the intermediate value that [Put] copies from.
func Emplace[B, T any](s *Storage[B]) *T {
	checkStorable[B, T](s.capacity)
	s.Reset()
	p := new(T)
	s.cell = p
	s.rep = replicate[T]
	return p
}

// checkStorable panics unless a value of concrete type T may be stored in a
// Storage[B] with the given capacity: *T must implement B, and the size of
// T must not exceed the capacity.
func checkStorable[B, T any](capacity uintptr) {
	if _, ok := any((*T)(nil)).(B); !ok {
		panic(fmt.Sprintf("slot: %v does not implement base type %v",
			reflect.TypeFor[T](), reflect.TypeFor[B]()))
	}
	if size := reflect.TypeFor[T]().Size(); size > capacity {
		panic(fmt.Sprintf("slot: %v needs %d bytes, capacity is %d",
			reflect.TypeFor[T](), size, capacity))
	}
}
