// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/slot"
)

func TestAsExactType(t *testing.T) {
	s := slot.Of[shape](capShapes, circle{Radius: 2})

	require.NotNil(t, slot.As[circle](s))
	assert.Nil(t, slot.As[rect](s), "different concrete type must not match")
	assert.Nil(t, slot.As[shape](s), "the base type itself must not match")
}

// square embeds rect; exact identity means neither the embedded type nor
// the embedding type matches the other.
func TestAsEmbeddingChain(t *testing.T) {
	s := slot.Of[shape](capShapes, square{rect{W: 2, H: 3}})

	require.NotNil(t, slot.As[square](s))
	assert.Nil(t, slot.As[rect](s))

	slot.Put(s, rect{W: 2, H: 3})
	assert.Nil(t, slot.As[square](s))
}

func TestAsEmptyAndNil(t *testing.T) {
	assert.Nil(t, slot.As[circle](slot.New[shape](capShapes)))

	var s *slot.Storage[shape]
	assert.Nil(t, slot.As[circle](s))
}

func TestGetRoundTrip(t *testing.T) {
	s := slot.New[shape](capShapes)
	c := slot.Emplace[shape, circle](s)
	c.Radius = 3

	got, err := slot.Get[circle](s)
	require.NoError(t, err)
	assert.Equal(t, circle{Radius: 3}, *got)
}

func TestGetMismatch(t *testing.T) {
	s := slot.Of[shape](capShapes, circle{Radius: 1})

	_, err := slot.Get[rect](s)
	require.Error(t, err)

	var mismatch *slot.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, reflect.TypeFor[rect](), mismatch.Requested)
	assert.Equal(t, reflect.TypeFor[circle](), mismatch.Actual)
	assert.Contains(t, err.Error(), "circle")
	assert.Contains(t, err.Error(), "rect")
}

func TestGetEmpty(t *testing.T) {
	s := slot.New[shape](capShapes)

	_, err := slot.Get[circle](s)
	require.Error(t, err)

	var mismatch *slot.TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Nil(t, mismatch.Actual)
	assert.Contains(t, err.Error(), "empty")
	assert.Contains(t, err.Error(), "circle")
}

func TestGetNilStorage(t *testing.T) {
	var s *slot.Storage[shape]
	_, err := slot.Get[circle](s)
	require.Error(t, err)

	var mismatch *slot.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Nil(t, mismatch.Actual)
}

func TestTake(t *testing.T) {
	s := slot.Of[shape](capShapes, rect{W: 3, H: 5})

	v, err := slot.Take[rect](s)
	require.NoError(t, err)
	assert.Equal(t, rect{W: 3, H: 5}, v)

	// The machinery is untouched: still non-empty, handler bound, the
	// resident value moved-from.
	require.True(t, s.HasValue())
	assert.Equal(t, reflect.TypeFor[rect](), s.Type())
	assert.Equal(t, rect{}, *slot.As[rect](s))
}

func TestTakeMover(t *testing.T) {
	s := slot.Of[shape](capShapes, buffer{Data: []byte("payload")})

	v, err := slot.Take[buffer](s)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), v.Data)

	left := slot.As[buffer](s)
	require.NotNil(t, left)
	assert.True(t, left.Moved)
	assert.Nil(t, left.Data)
}

func TestTakeMismatch(t *testing.T) {
	s := slot.Of[shape](capShapes, circle{Radius: 1})

	v, err := slot.Take[rect](s)
	require.Error(t, err)
	assert.Equal(t, rect{}, v)

	// A failed Take does not disturb the contents.
	require.NotNil(t, slot.As[circle](s))
	assert.Equal(t, circle{Radius: 1}, *slot.As[circle](s))
}
