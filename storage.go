// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import (
	"fmt"
	"reflect"
)

// Storage is a fixed-capacity, type-erased container holding at most one
// value whose dynamic type implements the base abstraction B.
//
// Storage[B] offers the flexibility of "any implementation of B" with the
// single-owner lifetime of a plain value: the container exclusively owns the
// value it holds, duplicates it on [Storage.CopyFrom]/[Storage.Clone],
// transfers it on [Storage.MoveFrom], and releases it on [Storage.Reset].
// There is no shared or reference-counted state anywhere.
//
// The capacity fixed at construction is the byte-size bound every stored
// concrete type must satisfy; it is a contract between the caller and the
// container, checked when a value is stored and never renegotiated. Use
// [MaxSize] with [SizeOf] to compute the capacity for a closed candidate set.
//
// A Storage is not safe for concurrent mutation; it is exactly as
// thread-safe as a plain value of the contained type would be. Copying a
// Storage with plain assignment aliases the contained value — use
// [Storage.Clone] instead.
//
// The zero Storage is empty with zero capacity; only zero-sized types fit
// it. [New] is the usual constructor.
type Storage[B any] struct {
	capacity uintptr

	// rep is the replication handler bound to the dynamic type of the
	// resident value. Emptiness is exactly rep == nil; rep and cell are
	// never out of step.
	rep replicator

	// cell holds a *T for the resident concrete type T, nil when empty.
	cell any
}

// Disposer is the optional teardown hook for contained values.
// When the resident value implements Disposer, [Storage.Reset] (and every
// overwrite path, which resets first) calls Dispose exactly once before
// dropping the value. Dispose must not panic.
type Disposer interface {
	Dispose()
}

// New returns an empty Storage for base type B with the given capacity in
// bytes. Every concrete type later stored must not exceed the capacity.
func New[B any](capacity uintptr) *Storage[B] {
	return &Storage[B]{capacity: capacity}
}

// HasValue reports whether the storage currently holds a value.
func (s *Storage[B]) HasValue() bool {
	return s.rep != nil
}

// Capacity returns the byte-size bound fixed at construction.
func (s *Storage[B]) Capacity() uintptr {
	return s.capacity
}

// Type returns the dynamic type of the contained value, or nil when the
// storage is empty. The nil sentinel mirrors reflect.TypeOf(nil); callers
// that need to distinguish emptiness should prefer [Storage.HasValue].
func (s *Storage[B]) Type() reflect.Type {
	if s.rep == nil {
		return nil
	}
	return reflect.TypeOf(s.cell).Elem()
}

// Base returns the contained value through the base interface B, or the
// zero B when the storage is empty. The view aliases the contained value:
// method calls through it observe later in-place mutations made via [As].
func (s *Storage[B]) Base() B {
	if s.rep == nil {
		var zero B
		return zero
	}
	return s.cell.(B)
}

// Reset releases the contained value, calling its [Disposer] hook if
// implemented, and leaves the storage empty. Resetting an empty storage is
// a no-op; Reset is idempotent.
func (s *Storage[B]) Reset() {
	if s.rep == nil {
		return
	}
	if d, ok := s.cell.(Disposer); ok {
		d.Dispose()
	}
	s.rep = nil
	s.cell = nil
}

// Swap exchanges the contents of s and rhs, valid for any combination of
// empty and non-empty states. No replication handler runs and no value is
// copied, cloned, or disposed — only the handler bindings and slots move.
//
// When the two capacities differ, each resident value must fit the opposite
// capacity; Swap panics otherwise to preserve the size bound.
func (s *Storage[B]) Swap(rhs *Storage[B]) {
	if s == rhs {
		return
	}
	if s.capacity != rhs.capacity {
		if s.rep != nil {
			if size := s.Type().Size(); size > rhs.capacity {
				panic(fmt.Sprintf("slot: swap would place %v (%d bytes) into capacity %d",
					s.Type(), size, rhs.capacity))
			}
		}
		if rhs.rep != nil {
			if size := rhs.Type().Size(); size > s.capacity {
				panic(fmt.Sprintf("slot: swap would place %v (%d bytes) into capacity %d",
					rhs.Type(), size, s.capacity))
			}
		}
	}
	s.rep, rhs.rep = rhs.rep, s.rep
	s.cell, rhs.cell = rhs.cell, s.cell
}

// CopyFrom replaces the contents of s with a copy of the value in rhs,
// produced by the handler bound in rhs (honoring [Cloner]). An empty or nil
// rhs leaves s empty. Self-assignment is a no-op.
//
// The prior value of s is always released first. The handler is bound in s
// only after replication succeeds, so a panicking Clone leaves s empty
// rather than holding a half-made value.
func (s *Storage[B]) CopyFrom(rhs *Storage[B]) {
	if s == rhs {
		return
	}
	s.Reset()
	if rhs == nil || rhs.rep == nil {
		return
	}
	s.checkFits(rhs.Type())
	rhs.rep(schemeCopy, &s.cell, &rhs.cell)
	s.rep = rhs.rep
}

// MoveFrom replaces the contents of s with the value in rhs, transferred by
// the handler bound in rhs (honoring [Mover]). rhs stays non-empty with its
// handler bound; only the contained value's state changes to its moved-from
// form. An empty or nil rhs leaves s empty. Self-assignment is a no-op.
func (s *Storage[B]) MoveFrom(rhs *Storage[B]) {
	if s == rhs {
		return
	}
	s.Reset()
	if rhs == nil || rhs.rep == nil {
		return
	}
	s.checkFits(rhs.Type())
	rhs.rep(schemeMove, &s.cell, &rhs.cell)
	s.rep = rhs.rep
}

// Clone returns a new Storage with the same capacity holding a copy of the
// contained value, produced through the bound handler (honoring [Cloner]).
// Cloning an empty storage returns an empty storage.
func (s *Storage[B]) Clone() *Storage[B] {
	dst := New[B](s.capacity)
	dst.CopyFrom(s)
	return dst
}

// checkFits panics when a value of type t would exceed the capacity of s.
// Replication between same-capacity storages cannot trip this; it guards
// transfers between storages constructed with different capacities.
func (s *Storage[B]) checkFits(t reflect.Type) {
	if size := t.Size(); size > s.capacity {
		panic(fmt.Sprintf("slot: %v needs %d bytes, capacity is %d", t, size, s.capacity))
	}
}
