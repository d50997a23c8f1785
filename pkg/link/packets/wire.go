package packets

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Payload is a fixed-layout packet body selected by Kind.
type Payload interface {
	Kind() Kind
	Size() int
	MarshalBinary() ([]byte, error)
	UnmarshalBinary(data []byte) error
}

// ErrShortPayload reports a payload shorter than its schema.
type ErrShortPayload struct {
	Kind Kind
	Want int
	Got  int
}

// Error implements error.
func (e *ErrShortPayload) Error() string {
	return fmt.Sprintf("%s payload: want %d bytes, got %d", e.Kind, e.Want, e.Got)
}

func checkSize(p Payload, data []byte) error {
	if len(data) < p.Size() {
		return &ErrShortPayload{Kind: p.Kind(), Want: p.Size(), Got: len(data)}
	}
	return nil
}

// wireReader walks a payload buffer field by field.
type wireReader struct {
	buf []byte
	off int
}

func (r *wireReader) u8() uint8 {
	v := r.buf[r.off]
	r.off++
	return v
}

func (r *wireReader) u16() uint16 {
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v
}

func (r *wireReader) u32() uint32 {
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v
}

func (r *wireReader) f32() float32 {
	return math.Float32frombits(r.u32())
}

func (r *wireReader) flag() bool {
	return r.u8() != 0
}

func (r *wireReader) raw(dst []byte) {
	copy(dst, r.buf[r.off:r.off+len(dst)])
	r.off += len(dst)
}

// wireWriter builds a payload buffer field by field.
type wireWriter struct {
	buf []byte
	off int
}

func (w *wireWriter) u8(v uint8) {
	w.buf[w.off] = v
	w.off++
}

func (w *wireWriter) u16(v uint16) {
	binary.LittleEndian.PutUint16(w.buf[w.off:], v)
	w.off += 2
}

func (w *wireWriter) u32(v uint32) {
	binary.LittleEndian.PutUint32(w.buf[w.off:], v)
	w.off += 4
}

func (w *wireWriter) f32(v float32) {
	w.u32(math.Float32bits(v))
}

func (w *wireWriter) flag(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func (w *wireWriter) raw(src []byte) {
	copy(w.buf[w.off:], src)
	w.off += len(src)
}
