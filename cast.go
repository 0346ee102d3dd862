// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import (
	"fmt"
	"reflect"
)

// Downcast accessors. All three forms match on exact dynamic type identity
// only: requesting the base interface itself, or any type other than the
// one stored, fails even when an assignment between the two would be legal.
// This is deliberately narrower than a type switch over assignability.

// TypeMismatchError is the sole error kind of the package, returned by
// [Get] and [Take] when the requested concrete type is not the dynamic
// type of the contained value. Actual is nil when the storage was empty
// or the container pointer was nil.
type TypeMismatchError struct {
	Requested reflect.Type
	Actual    reflect.Type
}

func (e *TypeMismatchError) Error() string {
	if e.Actual == nil {
		return fmt.Sprintf("slot: cannot cast empty storage to %v", e.Requested)
	}
	return fmt.Sprintf("slot: storage holds %v, not %v", e.Actual, e.Requested)
}

// As returns a pointer to the contained value if s is non-nil and holds a
// value of exactly type T, and nil otherwise. The pointer aliases the
// contained value: mutations through it are observed by [Storage.Base] and
// later casts. O(1), never fails.
func As[T, B any](s *Storage[B]) *T {
	if s == nil || s.rep == nil {
		return nil
	}
	p, _ := s.cell.(*T)
	return p
}

// Get is the checked form of [As]. On a mismatch it returns a
// [*TypeMismatchError] naming both the dynamic type of the contained value
// and the requested type.
func Get[T, B any](s *Storage[B]) (*T, error) {
	p := As[T](s)
	if p == nil {
		return nil, mismatch[T](s)
	}
	return p, nil
}

// Take moves the contained value out of s, honoring the [Mover] hook.
// On success the storage machinery is untouched — s stays non-empty with
// its handler bound — while the resident value is left in its moved-from
// state (the zero T unless the type implements Mover). Callers wanting the
// storage empty afterwards call [Storage.Reset] themselves.
// On a mismatch Take returns the zero T and a [*TypeMismatchError].
func Take[T, B any](s *Storage[B]) (T, error) {
	p := As[T](s)
	if p == nil {
		var zero T
		return zero, mismatch[T](s)
	}
	var v T
	if m, ok := any(p).(Mover[T]); ok {
		v = m.Move()
	} else {
		v, *p = *p, v
	}
	return v, nil
}

// mismatch builds the error for a failed cast of s to T.
func mismatch[T, B any](s *Storage[B]) *TypeMismatchError {
	e := &TypeMismatchError{Requested: reflect.TypeFor[T]()}
	if s != nil {
		e.Actual = s.Type()
	}
	return e
}
