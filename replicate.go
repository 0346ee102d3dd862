// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

// Replication handlers implement type-erased copy and move without any
// polymorphic copy/move operation on the base interface itself. Each
// concrete type T gets exactly one handler, the generic [replicate]
// instantiation, bound to the storage together with the value. The handler
// is the only type-specific piece of per-instance state; the dynamic type
// is recovered separately via reflection, never from the handler.

// scheme discriminates the two replication modes of a handler.
type scheme uint8

const (
	schemeCopy scheme = iota
	schemeMove
)

// replicator copies or moves the value behind src into dst.
// Both slots hold a *T for the T the handler was instantiated with.
type replicator func(op scheme, dst, src *any)

// Cloner is the optional deep-copy hook for contained values.
// By default replication in copy mode copies the value shallowly, which
// aliases reference fields (slices, maps, pointers) between the original
// and the copy. Types carrying such fields implement Cloner to define a
// copy whose mutations do not affect the original.
type Cloner[T any] interface {
	Clone() T
}

// Mover is the optional move hook for contained values.
// Move returns the transferred value and must leave the receiver in the
// type's moved-from state. By default replication in move mode transfers
// the value and leaves the zero T behind.
type Mover[T any] interface {
	Move() T
}

// replicate is the handler implementation for concrete type T.
// One instantiation exists per stored type; its function value serves as
// the handler for every storage holding a T.
func replicate[T any](op scheme, dst, src *any) {
	sp := (*src).(*T)
	switch op {
	case schemeCopy:
		v := *sp
		if c, ok := any(sp).(Cloner[T]); ok {
			v = c.Clone()
		}
		*dst = &v
	case schemeMove:
		var v T
		if m, ok := any(sp).(Mover[T]); ok {
			v = m.Move()
		} else {
			v, *sp = *sp, v
		}
		*dst = &v
	}
}
