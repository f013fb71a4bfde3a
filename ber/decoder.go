// Package ber implements ASN.1 BER (Basic Encoding Rules) encoding
// as specified in ITU-T X.690.
package ber

import (
	"math"

	"golang.org/x/text/encoding/charmap"
)

// maxLengthBytes is the largest number of long-form length bytes accepted
// on read.
const maxLengthBytes = 4

// maxIntegerBytes is the largest integer value size accepted on read.
const maxIntegerBytes = 4

// BERDecoder decodes ASN.1 values using BER (Basic Encoding Rules).
// It is a read-only cursor over a caller-supplied byte slice; the offset
// advances by exactly the bytes each successful parse consumed and can be
// rewound to the start with Reset.
type BERDecoder struct {
	data   []byte
	offset int
}

// NewBERDecoder creates a new BER decoder for the given data. Callers that
// need to decode a sub-range of a larger buffer pass the sub-slice.
func NewBERDecoder(data []byte) *BERDecoder {
	return &BERDecoder{
		data:   data,
		offset: 0,
	}
}

// Offset returns the current read position in the data.
func (d *BERDecoder) Offset() int {
	return d.offset
}

// Remaining returns the number of bytes remaining to be read.
func (d *BERDecoder) Remaining() int {
	return len(d.data) - d.offset
}

// Reset rewinds the decoder to the beginning of the data, enabling a second
// pass over the same range.
func (d *BERDecoder) Reset() {
	d.offset = 0
}

// SetData sets new data for the decoder and resets the offset.
func (d *BERDecoder) SetData(data []byte) {
	d.data = data
	d.offset = 0
}

// seek adjusts the offset by a relative amount. Returns ErrOutOfBounds if
// the adjustment would leave the decoder's byte range.
func (d *BERDecoder) seek(delta int) error {
	next := d.offset + delta
	if next < 0 || next > len(d.data) {
		return NewDecodeError(d.offset, "seek outside data range", ErrOutOfBounds)
	}
	d.offset = next
	return nil
}

// PeekByte returns the next byte without consuming it.
func (d *BERDecoder) PeekByte() (byte, error) {
	if d.offset >= len(d.data) {
		return 0, NewDecodeError(d.offset, "cannot peek byte", ErrUnexpectedEOF)
	}
	return d.data[d.offset], nil
}

// ReadByte returns the next byte and consumes it.
func (d *BERDecoder) ReadByte() (byte, error) {
	if d.offset >= len(d.data) {
		return 0, NewDecodeError(d.offset, "cannot read byte", ErrUnexpectedEOF)
	}
	b := d.data[d.offset]
	d.offset++
	return b, nil
}

// ReadLength reads a BER length field from the current position.
// Short form covers 0-127; long form uses a leading 0x80|n byte followed by
// n big-endian length bytes, n at most 4. Indefinite length (0x80 alone) is
// rejected, as is a length claiming more bytes than remain in the data.
func (d *BERDecoder) ReadLength() (int, error) {
	startOffset := d.offset

	if d.offset >= len(d.data) {
		return 0, NewDecodeError(startOffset, "cannot read length", ErrUnexpectedEOF)
	}

	firstByte := d.data[d.offset]
	d.offset++

	var length int
	if firstByte&LengthLongFormBit == 0 {
		length = int(firstByte)
	} else {
		numBytes := int(firstByte & 0x7F)

		if numBytes == 0 {
			return 0, NewDecodeError(startOffset, "indefinite length encoding", ErrIndefiniteLength)
		}
		if numBytes > maxLengthBytes {
			return 0, NewDecodeError(startOffset, "length encoding too long", ErrInvalidLength)
		}
		if d.offset+numBytes > len(d.data) {
			return 0, NewDecodeError(startOffset, "truncated length encoding", ErrUnexpectedEOF)
		}

		v := uint64(0)
		for i := 0; i < numBytes; i++ {
			v = (v << 8) | uint64(d.data[d.offset])
			d.offset++
		}
		if v > math.MaxInt32 {
			return 0, NewDecodeError(startOffset, "length value overflow", ErrInvalidLength)
		}
		length = int(v)
	}

	if length > len(d.data)-d.offset {
		return 0, NewDecodeError(startOffset, "length exceeds remaining data", ErrUnexpectedEOF)
	}
	return length, nil
}

// ReadSequenceHeader reads a tag byte and its length field, returning both.
// The tag is not validated; the caller decides whether it is acceptable.
func (d *BERDecoder) ReadSequenceHeader() (tag byte, length int, err error) {
	tag, err = d.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	length, err = d.ReadLength()
	if err != nil {
		return 0, 0, err
	}
	return tag, length, nil
}

// ExpectSequence reads a tag byte and length field, validating the tag
// against the caller's expectation. Returns the content length; the caller
// should read exactly that many bytes after this call.
func (d *BERDecoder) ExpectSequence(tag byte) (length int, err error) {
	startOffset := d.offset

	actual, err := d.ReadByte()
	if err != nil {
		return 0, err
	}
	if actual != tag {
		return 0, &TagMismatchError{Offset: startOffset, Expected: tag, Actual: actual}
	}
	return d.ReadLength()
}

// ReadInt reads a BER-encoded integer with the universal integer tag.
func (d *BERDecoder) ReadInt() (int32, error) {
	return d.ReadIntWithTag(TagInteger)
}

// ReadEnumerated reads a BER-encoded enumerated value. Enumerated values
// are encoded identically to integers.
func (d *BERDecoder) ReadEnumerated() (int32, error) {
	return d.ReadIntWithTag(TagEnumerated)
}

// ReadIntWithTag reads a BER-encoded integer with a caller-supplied tag
// byte. The value may be 1 to 4 bytes; the first byte's high bit is
// sign-extended across the result.
func (d *BERDecoder) ReadIntWithTag(tag byte) (int32, error) {
	startOffset := d.offset

	actual, err := d.ReadByte()
	if err != nil {
		return 0, err
	}
	if actual != tag {
		return 0, &TagMismatchError{Offset: startOffset, Expected: tag, Actual: actual}
	}
	return d.readIntegerBody(startOffset)
}

// ReadBoolean reads a BER-encoded boolean with the universal boolean tag.
// Per X.690, FALSE is 0x00 and TRUE is any non-zero value.
func (d *BERDecoder) ReadBoolean() (bool, error) {
	v, err := d.ReadIntWithTag(TagBoolean)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// readIntegerBody reads a length field and a 1-4 byte two's complement
// integer value. startOffset is the position of the already-consumed tag
// byte, used for error reporting.
func (d *BERDecoder) readIntegerBody(startOffset int) (int32, error) {
	length, err := d.ReadLength()
	if err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, NewDecodeError(startOffset, "integer must have at least 1 byte", ErrInvalidInteger)
	}
	if length > maxIntegerBytes {
		return 0, NewDecodeError(startOffset, "integer too long", ErrInvalidInteger)
	}

	var result int32
	if d.data[d.offset]&0x80 != 0 {
		result = -1
	}
	for i := 0; i < length; i++ {
		result = (result << 8) | int32(d.data[d.offset])
		d.offset++
	}
	return result, nil
}

// ReadOctetString reads a length-prefixed byte string with the given tag
// byte. Returns a copy of the value and the total number of bytes consumed
// (tag, length field and value).
func (d *BERDecoder) ReadOctetString(tag byte) (value []byte, n int, err error) {
	startOffset := d.offset

	actual, err := d.ReadByte()
	if err != nil {
		return nil, 0, err
	}
	if actual != tag {
		return nil, 0, &TagMismatchError{Offset: startOffset, Expected: tag, Actual: actual}
	}

	length, err := d.ReadLength()
	if err != nil {
		return nil, 0, err
	}

	value = make([]byte, length)
	copy(value, d.data[d.offset:d.offset+length])
	d.offset += length

	return value, d.offset - startOffset, nil
}

// ReadStringWithTag reads a length-prefixed character string with the given
// tag byte, decoding the value per the requested encoding. A zero-length
// value yields the empty string. Returns the decoded text and the total
// number of bytes consumed.
func (d *BERDecoder) ReadStringWithTag(tag byte, enc StringEncoding) (s string, n int, err error) {
	value, n, err := d.ReadOctetString(tag)
	if err != nil {
		return "", 0, err
	}
	return decodeText(value, enc), n, nil
}

// Skip skips one whole TLV element.
func (d *BERDecoder) Skip() error {
	if _, err := d.ReadByte(); err != nil {
		return err
	}
	length, err := d.ReadLength()
	if err != nil {
		return err
	}
	return d.seek(length)
}

// decodeText converts raw value bytes to a string per the requested
// encoding. ISO-8859-1 maps every byte to a rune, so decoding cannot fail;
// UTF-8 is the native Go string representation.
func decodeText(b []byte, enc StringEncoding) string {
	if enc == EncodingISO8859_1 {
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err == nil {
			return string(out)
		}
	}
	return string(b)
}
