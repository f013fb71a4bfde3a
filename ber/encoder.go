// Package ber implements ASN.1 BER (Basic Encoding Rules) encoding
// as specified in ITU-T X.690.
package ber

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// initialSequenceDepth is the preallocated capacity of the open-sequence
// marker stack. The stack grows geometrically past this.
const initialSequenceDepth = 16

// lengthReserve is the number of bytes BeginSequence reserves for the length
// field. Three bytes hold the 0x82 two-byte long form, so sequences up to
// 64 KiB close without moving content.
const lengthReserve = 3

// BEREncoder encodes ASN.1 values using BER (Basic Encoding Rules).
// Values are appended to a single growable buffer; nested sequences are
// tracked on an internal marker stack and their length fields are
// back-patched when closed.
type BEREncoder struct {
	buf []byte
	// seqStack holds, for each open sequence, the offset of its reserved
	// length field (one past the tag byte).
	seqStack []int
}

// NewBEREncoder creates a new BER encoder with an optional initial capacity.
// A capacity of zero or less selects DefaultBufferSize.
func NewBEREncoder(capacity int) *BEREncoder {
	if capacity <= 0 {
		capacity = DefaultBufferSize
	}
	return &BEREncoder{
		buf:      make([]byte, 0, capacity),
		seqStack: make([]int, 0, initialSequenceDepth),
	}
}

// Bytes returns the encoded bytes. The returned slice aliases the encoder's
// buffer and is valid until the next write or Reset.
// Returns ErrUnbalancedSequence if any sequence is still open.
func (e *BEREncoder) Bytes() ([]byte, error) {
	if len(e.seqStack) != 0 {
		return nil, ErrUnbalancedSequence
	}
	return e.buf, nil
}

// TrimmedBytes returns an exact-length copy of the encoded bytes.
// Returns ErrUnbalancedSequence if any sequence is still open.
func (e *BEREncoder) TrimmedBytes() ([]byte, error) {
	if len(e.seqStack) != 0 {
		return nil, ErrUnbalancedSequence
	}
	out := make([]byte, len(e.buf))
	copy(out, e.buf)
	return out, nil
}

// Len returns the current length of encoded data.
func (e *BEREncoder) Len() int {
	return len(e.buf)
}

// Reset returns the encoder to its newly-constructed state for reuse.
// Written bytes are zeroed before the buffer is truncated; encoded payloads
// may contain passwords.
func (e *BEREncoder) Reset() {
	for i := range e.buf {
		e.buf[i] = 0
	}
	e.buf = e.buf[:0]
	e.seqStack = e.seqStack[:0]
}

// BeginSequence opens a constructed value with the given tag byte and
// reserves space for its length field. Sequences may be nested arbitrarily;
// each must be closed with EndSequence.
func (e *BEREncoder) BeginSequence(tag byte) {
	e.buf = append(e.buf, tag)
	e.seqStack = append(e.seqStack, len(e.buf))
	e.buf = append(e.buf, 0, 0, 0)
}

// EndSequence closes the most recently opened sequence, writing its length
// in the minimal form. Content written since the matching BeginSequence is
// shifted in place when the final length field is narrower or wider than the
// reserved three bytes:
//
//	length <= 0x7F:     1-byte short form, content shifted left 2
//	length <= 0xFF:     0x81 form, content shifted left 1
//	length <= 0xFFFF:   0x82 form, fits the reserved space
//	length <= 0xFFFFFF: 0x83 form, content shifted right 1
//
// Returns ErrUnbalancedSequence if no sequence is open and ErrSequenceTooLong
// if the content exceeds MaxEncodableLength.
func (e *BEREncoder) EndSequence() error {
	if len(e.seqStack) == 0 {
		return ErrUnbalancedSequence
	}
	marker := e.seqStack[len(e.seqStack)-1]
	e.seqStack = e.seqStack[:len(e.seqStack)-1]

	start := marker + lengthReserve
	length := len(e.buf) - start

	switch {
	case length <= MaxShortFormLength:
		e.shift(start, length, -2)
		e.buf[marker] = byte(length)
	case length <= 0xFF:
		e.shift(start, length, -1)
		e.buf[marker] = LengthLongFormBit | 1
		e.buf[marker+1] = byte(length)
	case length <= 0xFFFF:
		e.buf[marker] = LengthLongFormBit | 2
		e.buf[marker+1] = byte(length >> 8)
		e.buf[marker+2] = byte(length)
	case length <= MaxEncodableLength:
		e.shift(start, length, 1)
		e.buf[marker] = LengthLongFormBit | 3
		e.buf[marker+1] = byte(length >> 16)
		e.buf[marker+2] = byte(length >> 8)
		e.buf[marker+3] = byte(length)
	default:
		return ErrSequenceTooLong
	}
	return nil
}

// shift moves length bytes starting at start by delta positions, growing the
// buffer for positive deltas and truncating it for negative ones.
func (e *BEREncoder) shift(start, length, delta int) {
	if delta > 0 {
		e.buf = append(e.buf, make([]byte, delta)...)
	}
	copy(e.buf[start+delta:start+delta+length], e.buf[start:start+length])
	if delta < 0 {
		e.buf = e.buf[:len(e.buf)+delta]
	}
}

// WriteLength writes a BER length field to the buffer.
// Uses short form for lengths 0-127 and the minimal long form above that,
// up to the 3-byte form (MaxEncodableLength).
func (e *BEREncoder) WriteLength(length int) error {
	switch {
	case length < 0:
		return ErrNegativeLength
	case length <= MaxShortFormLength:
		e.buf = append(e.buf, byte(length))
	case length <= 0xFF:
		e.buf = append(e.buf, LengthLongFormBit|1, byte(length))
	case length <= 0xFFFF:
		e.buf = append(e.buf, LengthLongFormBit|2, byte(length>>8), byte(length))
	case length <= MaxEncodableLength:
		e.buf = append(e.buf, LengthLongFormBit|3, byte(length>>16), byte(length>>8), byte(length))
	default:
		return ErrStringTooLong
	}
	return nil
}

// WriteBoolean writes a BER-encoded boolean with the universal boolean tag.
// Per X.690, FALSE is encoded as 0x00 and TRUE as 0xFF.
func (e *BEREncoder) WriteBoolean(v bool) error {
	return e.WriteBooleanWithTag(v, TagBoolean)
}

// WriteBooleanWithTag writes a BER-encoded boolean with a caller-supplied
// tag byte.
func (e *BEREncoder) WriteBooleanWithTag(v bool, tag byte) error {
	value := byte(0x00)
	if v {
		value = 0xFF
	}
	e.buf = append(e.buf, tag, 0x01, value)
	return nil
}

// WriteInteger writes a BER-encoded integer with the universal integer tag.
// The value is encoded as minimal-length big-endian two's complement,
// 1 to 4 bytes.
func (e *BEREncoder) WriteInteger(v int32) error {
	return e.WriteIntegerWithTag(v, TagInteger)
}

// WriteIntegerWithTag writes a BER-encoded integer with a caller-supplied
// tag byte.
func (e *BEREncoder) WriteIntegerWithTag(v int32, tag byte) error {
	encoded := encodeInteger(v)
	e.buf = append(e.buf, tag, byte(len(encoded)))
	e.buf = append(e.buf, encoded...)
	return nil
}

// WriteEnumerated writes a BER-encoded enumerated value.
// Enumerated values are encoded identically to integers.
func (e *BEREncoder) WriteEnumerated(v int32) error {
	return e.WriteIntegerWithTag(v, TagEnumerated)
}

// encodeInteger encodes an int32 as minimal-length big-endian two's
// complement: leading 0x00 or 0xFF bytes are dropped while more than one
// byte remains and the sign-extended value is unchanged.
func encodeInteger(v int32) []byte {
	b := []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	i := 0
	for i < 3 {
		if b[i] == 0x00 && b[i+1]&0x80 == 0 {
			i++
			continue
		}
		if b[i] == 0xFF && b[i+1]&0x80 != 0 {
			i++
			continue
		}
		break
	}
	return b[i:]
}

// WriteOctetString writes a BER-encoded octet string with the universal
// octet string tag.
func (e *BEREncoder) WriteOctetString(v []byte) error {
	return e.WriteOctetStringWithTag(v, TagOctetString)
}

// WriteOctetStringWithTag writes a BER-encoded octet string with a
// caller-supplied tag byte. Sub-ranges are selected by slicing v.
func (e *BEREncoder) WriteOctetStringWithTag(v []byte, tag byte) error {
	e.buf = append(e.buf, tag)
	if err := e.WriteLength(len(v)); err != nil {
		return err
	}
	e.buf = append(e.buf, v...)
	return nil
}

// WriteString writes a character string as an octet string TLV with the
// universal octet string tag. The text is converted to the requested
// encoding first; an empty string produces a zero-length value.
func (e *BEREncoder) WriteString(s string, enc StringEncoding) error {
	return e.WriteStringWithTag(s, TagOctetString, enc)
}

// WriteStringWithTag writes a character string with a caller-supplied tag
// byte. Returns ErrCharsetConversion (wrapped) if the text cannot be
// represented in the requested encoding.
func (e *BEREncoder) WriteStringWithTag(s string, tag byte, enc StringEncoding) error {
	b, err := encodeText(s, enc)
	if err != nil {
		return err
	}
	return e.WriteOctetStringWithTag(b, tag)
}

// WriteStringArray writes each element of values as an independent octet
// string TLV, in order. A nil slice is a no-op.
func (e *BEREncoder) WriteStringArray(values []string, enc StringEncoding) error {
	for _, s := range values {
		if err := e.WriteString(s, enc); err != nil {
			return err
		}
	}
	return nil
}

// encodeText converts s to the byte representation of the requested
// encoding. UTF-8 is the native Go string representation; ISO-8859-1 fails
// for runes outside Latin-1.
func encodeText(s string, enc StringEncoding) ([]byte, error) {
	if enc == EncodingISO8859_1 {
		b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCharsetConversion, err)
		}
		return b, nil
	}
	return []byte(s), nil
}
