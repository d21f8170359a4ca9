// Package bounded encodes text into byte sequences with a hard capacity.
//
// Encoding is strict: text longer than the capacity (in UTF-8 bytes) is
// rejected, never truncated. Decoding is lenient: bytes that are not valid
// UTF-8 decode to the empty string, since stored values were produced by the
// strict path.
package bounded

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrOverflow is matched by every capacity violation.
var ErrOverflow = errors.New("bounded text overflow")

// OverflowError reports the offending length against the capacity.
type OverflowError struct {
	Len      int
	Capacity int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("text is %d bytes, capacity is %d", e.Len, e.Capacity)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }

// Encode returns the UTF-8 bytes of text, or an *OverflowError when they
// exceed capacity.
func Encode(text string, capacity int) ([]byte, error) {
	if len(text) > capacity {
		return nil, &OverflowError{Len: len(text), Capacity: capacity}
	}
	return []byte(text), nil
}

// Decode returns b as a string, or "" when b is not valid UTF-8.
func Decode(b []byte) string {
	if !utf8.Valid(b) {
		return ""
	}
	return string(b)
}

// Capacity fixes the byte limit of a Text at the type level.
type Capacity interface {
	Max() int
}

type Cap64 struct{}

func (Cap64) Max() int { return 64 }

type Cap128 struct{}

func (Cap128) Max() int { return 128 }

// Text is an immutable byte sequence of at most C.Max() bytes. The zero value
// is the empty text.
type Text[C Capacity] struct {
	data string
}

type (
	Str64  = Text[Cap64]
	Str128 = Text[Cap128]
)

func capacityOf[C Capacity]() int {
	var c C
	return c.Max()
}

// New encodes s into a Text, rejecting overflow.
func New[C Capacity](s string) (Text[C], error) {
	b, err := Encode(s, capacityOf[C]())
	if err != nil {
		return Text[C]{}, err
	}
	return Text[C]{data: string(b)}, nil
}

// MustNew is New for literals known to fit; it panics on overflow.
func MustNew[C Capacity](s string) Text[C] {
	t, err := New[C](s)
	if err != nil {
		panic(err)
	}
	return t
}

// FromBytes wraps raw stored bytes. Only the capacity is checked; content is
// not required to be valid UTF-8.
func FromBytes[C Capacity](b []byte) (Text[C], error) {
	if limit := capacityOf[C](); len(b) > limit {
		return Text[C]{}, &OverflowError{Len: len(b), Capacity: limit}
	}
	return Text[C]{data: string(b)}, nil
}

// String decodes the text fail-soft.
func (t Text[C]) String() string {
	if !utf8.ValidString(t.data) {
		return ""
	}
	return t.data
}

// Bytes returns a copy of the raw bytes.
func (t Text[C]) Bytes() []byte { return []byte(t.data) }

func (t Text[C]) Len() int { return len(t.data) }

func (t Text[C]) Capacity() int { return capacityOf[C]() }

// MarshalJSON stores the raw bytes (base64) so backends round-trip content
// exactly, including bytes that would not survive a string conversion.
func (t Text[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal([]byte(t.data))
}

func (t *Text[C]) UnmarshalJSON(b []byte) error {
	var raw []byte
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode bounded text: %w", err)
	}
	decoded, err := FromBytes[C](raw)
	if err != nil {
		return err
	}
	*t = decoded
	return nil
}
