// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slot provides a fixed-capacity, type-erased container for one
// polymorphic value in Go.
//
// The core type [Storage] holds at most one value whose dynamic type
// implements a declared base interface B, bounded by a byte-size capacity
// fixed at construction. It serves callers who want the flexibility of
// "any implementation of B" with the single-owner lifetime of a plain
// value: no shared state, no reference counting, explicit copy and move.
//
// # Design Philosophy
//
// slot provides:
//   - A tagged slot of size one: the state machine is exactly
//     {empty, holding-type-T}, with transitions only through the
//     operations below
//   - Handler indirection for type-erased replication: each stored
//     concrete type binds one replication function, instantiated from a
//     single generic implementation, at store time
//   - Exact-type downcasting: casts match on dynamic type identity only,
//     never along assignability
//
// The capacity bound converts a class of would-be runtime errors into
// early, loud rejections: storing a type that exceeds the capacity, or
// whose pointer type does not implement B, panics at the store site with
// both type names. Capacity for a closed candidate set is computed with
// [MaxSize] over [SizeOf] results.
//
// # Core Operations
//
// Construction and storing:
//
//   - [New]: Empty storage with a capacity
//   - [Of]: Storage constructed from a value
//   - [Put]: Replace the contents with a value
//   - [Emplace]: Construct a zero T in place, returning *T for direct
//     initialization
//
// Observation:
//
//   - [Storage.HasValue]: Whether a value is held
//   - [Storage.Type]: Dynamic type of the held value (nil when empty)
//   - [Storage.Base]: View through the base interface (zero B when empty)
//   - [Storage.Capacity]: The byte-size bound
//
// Lifecycle:
//
//   - [Storage.Reset]: Release the value (idempotent, honors [Disposer])
//   - [Storage.Swap]: Exchange contents without replication
//   - [Storage.CopyFrom], [Storage.Clone]: Duplicate through the bound
//     handler (honors [Cloner])
//   - [Storage.MoveFrom]: Transfer through the bound handler (honors
//     [Mover]; the source stays non-empty, its value moved-from)
//
// Downcasts (exact dynamic type identity only):
//
//   - [As]: Pointer form; nil on mismatch, empty, or nil storage
//   - [Get]: Checked form; returns [*TypeMismatchError] naming both types
//   - [Take]: Move-taking form; yields the value, leaves the slot
//     moved-from with the storage machinery untouched
//
// Sizing:
//
//   - [SizeOf]: Size of one candidate type
//   - [MaxSize]: Maximum over sizes, 0 for the empty list
//
// # Value Hooks
//
// Replication and teardown are defined by the contained type through three
// optional interfaces, the package's substitute for copy constructors,
// move constructors, and destructors:
//
//   - [Cloner]: Deep copy; default is a shallow value copy
//   - [Mover]: Custom moved-from state; default leaves the zero T
//   - [Disposer]: Teardown on release; default drops the value
//
// # Concurrency
//
// A Storage performs no internal synchronization and never blocks; every
// operation is synchronous and O(1) apart from whatever the contained
// type's own hooks cost. External locking is required for concurrent
// mutation, exactly as for a plain value.
//
// # Example
//
//	type Shape interface{ Area() float64 }
//
//	type Circle struct{ Radius float64 }
//	func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }
//
//	type Rect struct{ W, H float64 }
//	func (r Rect) Area() float64 { return r.W * r.H }
//
//	capacity := slot.MaxSize(slot.SizeOf[Circle](), slot.SizeOf[Rect]())
//	s := slot.Of[Shape](capacity, Circle{Radius: 2})
//
//	s.Base().Area()        // dispatches to Circle.Area
//	slot.As[Rect](s)       // nil: exact type mismatch
//	c, _ := slot.Get[Circle](s)
//	c.Radius = 3           // in-place mutation, visible through s.Base()
package slot
