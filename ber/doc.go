// Package ber implements ASN.1 BER (Basic Encoding Rules) encoding and decoding
// as specified in ITU-T X.690.
//
// BER is the wire format LDAP extended-operation payloads are built from. This
// package provides the low-level tag-length-value primitives those payloads
// need: booleans, integers, enumerated values, octet and character strings,
// and nested sequences. It is deliberately not a full ASN.1 toolkit.
//
// # Tags
//
// Methods take and return raw tag bytes. A tag byte combines a class, a
// constructed flag and a tag number; the package defines constants for
// composing them:
//
//   - ClassUniversal (0x00), ClassApplication (0x40),
//     ClassContextSpecific (0x80), ClassPrivate (0xC0)
//   - TypePrimitive (0x00), TypeConstructed (0x20)
//   - TagBoolean (0x01), TagInteger (0x02), TagOctetString (0x04),
//     TagEnumerated (0x0A), TagSequence (0x10), TagSet (0x11), ...
//
// # Encoding
//
// BEREncoder appends values to a single growable buffer:
//
//	e := ber.NewBEREncoder(0)
//	e.WriteInteger(42)
//	e.WriteString("hello", ber.EncodingUTF8)
//	data, err := e.TrimmedBytes()
//
// Nested sequences are opened and closed in pairs; the length field of each
// sequence is back-patched when it closes:
//
//	e.BeginSequence(ber.ClassUniversal | ber.TypeConstructed | ber.TagSequence)
//	e.WriteInteger(1)
//	e.WriteBoolean(true)
//	err := e.EndSequence()
//
// Every opened sequence must be closed before Bytes or TrimmedBytes is
// called; an unbalanced encoder returns ErrUnbalancedSequence.
//
// # Decoding
//
// BERDecoder is a forward cursor over a byte slice:
//
//	d := ber.NewBERDecoder(data)
//	tag, length, err := d.ReadSequenceHeader()
//	v, err := d.ReadInt()
//	s, _, err := d.ReadStringWithTag(0x80, ber.EncodingUTF8)
//
// Parse methods advance the offset by exactly the bytes they consumed on
// success. Reset rewinds to the start of the data for a second pass.
//
// # Character encodings
//
// String values carry an explicit StringEncoding: EncodingUTF8 (LDAPv3) or
// EncodingISO8859_1 (LDAPv2 servers). Encoding fails with
// ErrCharsetConversion when text cannot be represented in the target
// encoding; decoding never fails.
//
// # References
//
//   - ITU-T X.690: ASN.1 encoding rules
//   - RFC 4511: LDAP Protocol (uses BER encoding)
package ber
