package bounded

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("accepts text at capacity", func(t *testing.T) {
		b, err := Encode(strings.Repeat("F", 64), 64)
		require.NoError(t, err)
		assert.Len(t, b, 64)
	})

	t.Run("rejects one byte over capacity", func(t *testing.T) {
		b, err := Encode(strings.Repeat("F", 65), 64)
		require.Error(t, err)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, ErrOverflow)

		var overflow *OverflowError
		require.True(t, errors.As(err, &overflow))
		assert.Equal(t, 65, overflow.Len)
		assert.Equal(t, 64, overflow.Capacity)
	})

	t.Run("measures UTF-8 bytes, not runes", func(t *testing.T) {
		// 22 runes, 66 bytes.
		_, err := Encode(strings.Repeat("ශ", 22), 64)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("empty text is valid", func(t *testing.T) {
		b, err := Encode("", 64)
		require.NoError(t, err)
		assert.Empty(t, b)
	})
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "Jane", Decode([]byte("Jane")))
	assert.Equal(t, "", Decode([]byte{0xff, 0xfe, 'a'}))
	assert.Equal(t, "", Decode(nil))
}

func TestText(t *testing.T) {
	t.Run("New enforces the type capacity", func(t *testing.T) {
		_, err := New[Cap64](strings.Repeat("a", 65))
		assert.ErrorIs(t, err, ErrOverflow)

		addr, err := New[Cap128](strings.Repeat("a", 65))
		require.NoError(t, err)
		assert.Equal(t, 65, addr.Len())
		assert.Equal(t, 128, addr.Capacity())
	})

	t.Run("Bytes returns a copy", func(t *testing.T) {
		txt := MustNew[Cap64]("Doe")
		b := txt.Bytes()
		b[0] = 'X'
		assert.Equal(t, "Doe", txt.String())
	})

	t.Run("invalid stored bytes decode to empty", func(t *testing.T) {
		txt, err := FromBytes[Cap64]([]byte{0xc3, 0x28})
		require.NoError(t, err)
		assert.Equal(t, 2, txt.Len())
		assert.Equal(t, "", txt.String())
	})

	t.Run("FromBytes still checks capacity", func(t *testing.T) {
		_, err := FromBytes[Cap64](make([]byte, 65))
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("MustNew panics on overflow", func(t *testing.T) {
		assert.Panics(t, func() { MustNew[Cap64](strings.Repeat("a", 100)) })
	})
}

func TestTextJSON(t *testing.T) {
	type record struct {
		Name Str64 `json:"name"`
	}

	t.Run("raw bytes survive a round trip", func(t *testing.T) {
		raw, err := FromBytes[Cap64]([]byte{0xff, 'o', 'k'})
		require.NoError(t, err)

		out, err := json.Marshal(record{Name: raw})
		require.NoError(t, err)

		var back record
		require.NoError(t, json.Unmarshal(out, &back))
		assert.Equal(t, []byte{0xff, 'o', 'k'}, back.Name.Bytes())
		assert.Equal(t, "", back.Name.String())
	})

	t.Run("oversized stored value is rejected", func(t *testing.T) {
		big, err := json.Marshal(map[string][]byte{"name": make([]byte, 80)})
		require.NoError(t, err)

		var back record
		err = json.Unmarshal(big, &back)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}
