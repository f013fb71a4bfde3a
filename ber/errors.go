// Package ber implements ASN.1 BER (Basic Encoding Rules) encoding
// as specified in ITU-T X.690.
package ber

import (
	"errors"
	"fmt"
)

// Encoder errors
var (
	// ErrSequenceTooLong is returned when a closed sequence's content exceeds
	// the largest encodable length (3-byte long form, 16 MiB - 1).
	ErrSequenceTooLong = errors.New("ber: sequence too long")

	// ErrStringTooLong is returned when a primitive value exceeds the largest
	// encodable length.
	ErrStringTooLong = errors.New("ber: string too long")

	// ErrNegativeLength is returned when a negative length is requested.
	ErrNegativeLength = errors.New("ber: negative length not allowed")

	// ErrUnbalancedSequence is returned when the buffer is read out while
	// sequences remain open, or when EndSequence is called with none open.
	ErrUnbalancedSequence = errors.New("ber: unbalanced sequences")

	// ErrCharsetConversion is returned when a string cannot be represented
	// in the requested character encoding.
	ErrCharsetConversion = errors.New("ber: string not representable in target encoding")
)

// Decoder errors
var (
	// ErrUnexpectedEOF is returned when the decoder encounters truncated data.
	ErrUnexpectedEOF = errors.New("ber: unexpected end of data")

	// ErrInvalidLength is returned when a length field is malformed or uses
	// more than 4 length bytes.
	ErrInvalidLength = errors.New("ber: invalid length encoding")

	// ErrIndefiniteLength is returned when indefinite length encoding is
	// encountered; it is never produced and not supported on read.
	ErrIndefiniteLength = errors.New("ber: indefinite length not supported")

	// ErrInvalidInteger is returned when an integer value is empty or longer
	// than 4 bytes.
	ErrInvalidInteger = errors.New("ber: invalid integer encoding")

	// ErrTagMismatch is returned when the expected tag does not match the
	// actual tag.
	ErrTagMismatch = errors.New("ber: tag mismatch")

	// ErrOutOfBounds is returned when a cursor adjustment would leave the
	// decoder's byte range.
	ErrOutOfBounds = errors.New("ber: offset out of bounds")
)

// DecodeError provides detailed information about a decoding failure.
type DecodeError struct {
	Offset  int    // Byte offset where the error occurred
	Message string // Human-readable error description
	Err     error  // Underlying error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ber: decode error at offset %d: %s: %v", e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("ber: decode error at offset %d: %s", e.Offset, e.Message)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError with the given parameters.
func NewDecodeError(offset int, message string, err error) *DecodeError {
	return &DecodeError{
		Offset:  offset,
		Message: message,
		Err:     err,
	}
}

// TagMismatchError reports both the tag found in the data and the tag the
// caller asked for.
type TagMismatchError struct {
	Offset   int
	Expected byte
	Actual   byte
}

// Error implements the error interface.
func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("ber: tag mismatch at offset %d: encountered tag 0x%02X (expected tag 0x%02X)",
		e.Offset, e.Actual, e.Expected)
}

// Is allows TagMismatchError to match ErrTagMismatch with errors.Is.
func (e *TagMismatchError) Is(target error) bool {
	return target == ErrTagMismatch
}
