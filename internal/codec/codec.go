package codec

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrDecode is returned for any structural wire-format violation:
// truncated input, an invalid enumerated value, or inconsistent lengths.
var ErrDecode = errors.New("codec: decoding error")

// Writer accumulates the big-endian, length-prefixed wire encoding.
// The zero value is ready to use.
type Writer struct {
	buf []byte
}

// Bytes returns the encoded output.
func (w *Writer) Bytes() []byte { return w.buf }

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteUint16 appends v in big-endian order.
func (w *Writer) WriteUint16(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

// WriteBytes appends raw bytes with no prefix.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteVec8 appends b prefixed with its byte length as a uint8. A length
// beyond the prefix range cannot be represented; writing one is a
// programming error and panics, so a truncated prefix can never make two
// distinct values serialize identically. Entities bound-check
// caller-supplied fields before encoding them.
func (w *Writer) WriteVec8(b []byte) {
	if len(b) > math.MaxUint8 {
		panic("codec: vec8 payload exceeds 255 bytes")
	}
	w.buf = append(w.buf, uint8(len(b)))
	w.buf = append(w.buf, b...)
}

// WriteVec16 appends b prefixed with its byte length as a big-endian
// uint16. Like WriteVec8, an unrepresentable length panics.
func (w *Writer) WriteVec16(b []byte) {
	if len(b) > math.MaxUint16 {
		panic("codec: vec16 payload exceeds 65535 bytes")
	}
	w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(len(b)))
	w.buf = append(w.buf, b...)
}

// Cursor reads the wire encoding produced by Writer. A Cursor never reads
// past its bounds; every read reports ErrDecode on truncation.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor returns a cursor over b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Remaining reports how many unread bytes are left.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, ErrDecode
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// ReadUint8 consumes one byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 consumes two bytes, big-endian.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadBytes consumes exactly n raw bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	return c.take(n)
}

// ReadVec8 consumes a uint8 byte-length prefix and that many bytes.
func (c *Cursor) ReadVec8() ([]byte, error) {
	n, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	return c.take(int(n))
}

// ReadVec16 consumes a big-endian uint16 byte-length prefix and that many bytes.
func (c *Cursor) ReadVec16() ([]byte, error) {
	n, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	return c.take(int(n))
}

// SubCursor16 consumes a uint16 byte-length prefix and returns a cursor
// bounded to exactly that range. Reads through the sub-cursor cannot
// escape the range, so an unknown payload can be scoped without being
// understood.
func (c *Cursor) SubCursor16() (*Cursor, error) {
	b, err := c.ReadVec16()
	if err != nil {
		return nil, err
	}
	return &Cursor{buf: b}, nil
}
