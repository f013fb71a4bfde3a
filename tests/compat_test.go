// Package tests provides cross-implementation and end-to-end tests for the
// extop module. These tests verify that the BER codec produces bytes other
// ASN.1 BER implementations accept, and parses bytes they produce.
package tests

import (
	"bytes"
	"testing"

	asn1ber "github.com/go-asn1-ber/asn1-ber"

	"github.com/oba-ldap/extop"
	"github.com/oba-ldap/extop/ber"
)

// TestIntegerCompat verifies that integer encodings are byte-identical with
// go-asn1-ber in both directions.
func TestIntegerCompat(t *testing.T) {
	values := []int32{0, 1, -1, 127, 128, -128, -129, 255, 256, 65535, -65536, 2147483647, -2147483648}

	for _, v := range values {
		enc := ber.NewBEREncoder(16)
		if err := enc.WriteInteger(v); err != nil {
			t.Fatalf("WriteInteger(%d): %v", v, err)
		}
		ours, err := enc.Bytes()
		if err != nil {
			t.Fatalf("Bytes: %v", err)
		}

		theirs := asn1ber.NewInteger(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagInteger, int64(v), "").Bytes()
		if !bytes.Equal(ours, theirs) {
			t.Errorf("integer %d: our bytes % X, go-asn1-ber % X", v, ours, theirs)
		}

		// Their decoder reads our bytes.
		pkt, err := asn1ber.DecodePacketErr(ours)
		if err != nil {
			t.Fatalf("go-asn1-ber rejected our integer %d: %v", v, err)
		}
		if got, ok := pkt.Value.(int64); !ok || got != int64(v) {
			t.Errorf("go-asn1-ber decoded %v, want %d", pkt.Value, v)
		}

		// Our decoder reads their bytes.
		dec := ber.NewBERDecoder(theirs)
		got, err := dec.ReadInt()
		if err != nil {
			t.Fatalf("ReadInt on go-asn1-ber bytes for %d: %v", v, err)
		}
		if got != v {
			t.Errorf("decoded %d from go-asn1-ber bytes, want %d", got, v)
		}
	}
}

// TestBooleanCompat verifies boolean interchange with go-asn1-ber.
func TestBooleanCompat(t *testing.T) {
	for _, v := range []bool{true, false} {
		enc := ber.NewBEREncoder(8)
		if err := enc.WriteBoolean(v); err != nil {
			t.Fatalf("WriteBoolean(%v): %v", v, err)
		}
		ours, err := enc.Bytes()
		if err != nil {
			t.Fatalf("Bytes: %v", err)
		}

		pkt, err := asn1ber.DecodePacketErr(ours)
		if err != nil {
			t.Fatalf("go-asn1-ber rejected our boolean: %v", err)
		}
		if got, ok := pkt.Value.(bool); !ok || got != v {
			t.Errorf("go-asn1-ber decoded %v, want %v", pkt.Value, v)
		}

		theirs := asn1ber.NewBoolean(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagBoolean, v, "").Bytes()
		dec := ber.NewBERDecoder(theirs)
		got, err := dec.ReadBoolean()
		if err != nil {
			t.Fatalf("ReadBoolean on go-asn1-ber bytes: %v", err)
		}
		if got != v {
			t.Errorf("decoded %v from go-asn1-ber bytes, want %v", got, v)
		}
	}
}

// TestOctetStringCompat covers short and long form lengths in both directions.
func TestOctetStringCompat(t *testing.T) {
	payloads := [][]byte{
		[]byte(""),
		[]byte("cn=admin,dc=example,dc=com"),
		bytes.Repeat([]byte{0xAB}, 200),   // long form, one length byte
		bytes.Repeat([]byte{0xCD}, 70000), // long form, three length bytes
	}

	for _, payload := range payloads {
		enc := ber.NewBEREncoder(len(payload) + 8)
		if err := enc.WriteOctetString(payload); err != nil {
			t.Fatalf("WriteOctetString: %v", err)
		}
		ours, err := enc.Bytes()
		if err != nil {
			t.Fatalf("Bytes: %v", err)
		}

		pkt, err := asn1ber.DecodePacketErr(ours)
		if err != nil {
			t.Fatalf("go-asn1-ber rejected our octet string (%d bytes): %v", len(payload), err)
		}
		if !bytes.Equal(pkt.Data.Bytes(), payload) {
			t.Errorf("go-asn1-ber decoded %d bytes, want %d", pkt.Data.Len(), len(payload))
		}

		theirs := asn1ber.NewString(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagOctetString, string(payload), "").Bytes()
		dec := ber.NewBERDecoder(theirs)
		got, _, err := dec.ReadOctetString(ber.TagOctetString)
		if err != nil {
			t.Fatalf("ReadOctetString on go-asn1-ber bytes: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("decoded %d bytes from go-asn1-ber bytes, want %d", len(got), len(payload))
		}
	}
}

// TestSequenceCompat encodes a nested sequence with back-patched lengths and
// has go-asn1-ber pick it apart.
func TestSequenceCompat(t *testing.T) {
	enc := ber.NewBEREncoder(64)
	enc.BeginSequence(ber.ClassUniversal | ber.TypeConstructed | ber.TagSequence)
	if err := enc.WriteInteger(42); err != nil {
		t.Fatalf("WriteInteger: %v", err)
	}
	enc.BeginSequence(ber.ClassUniversal | ber.TypeConstructed | ber.TagSequence)
	if err := enc.WriteOctetString([]byte("inner")); err != nil {
		t.Fatalf("WriteOctetString: %v", err)
	}
	if err := enc.EndSequence(); err != nil {
		t.Fatalf("EndSequence: %v", err)
	}
	if err := enc.EndSequence(); err != nil {
		t.Fatalf("EndSequence: %v", err)
	}
	data, err := enc.TrimmedBytes()
	if err != nil {
		t.Fatalf("TrimmedBytes: %v", err)
	}

	pkt, err := asn1ber.DecodePacketErr(data)
	if err != nil {
		t.Fatalf("go-asn1-ber rejected our sequence: %v", err)
	}
	if pkt.ClassType != asn1ber.ClassUniversal || pkt.TagType != asn1ber.TypeConstructed || pkt.Tag != asn1ber.TagSequence {
		t.Fatalf("unexpected outer identifier: class=%d type=%d tag=%d", pkt.ClassType, pkt.TagType, pkt.Tag)
	}
	if len(pkt.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(pkt.Children))
	}
	if got, ok := pkt.Children[0].Value.(int64); !ok || got != 42 {
		t.Errorf("child 0: got %v, want 42", pkt.Children[0].Value)
	}
	inner := pkt.Children[1]
	if inner.Tag != asn1ber.TagSequence || len(inner.Children) != 1 {
		t.Fatalf("unexpected inner sequence: tag=%d children=%d", inner.Tag, len(inner.Children))
	}
	if got := inner.Children[0].Data.Bytes(); !bytes.Equal(got, []byte("inner")) {
		t.Errorf("inner value %q, want %q", got, "inner")
	}
}

// TestExtendedRequestCompat decodes our extended request envelope with
// go-asn1-ber and checks the application tag and context-tagged fields.
func TestExtendedRequestCompat(t *testing.T) {
	value := []byte{0x30, 0x05, 0x80, 0x03, 'u', 'i', 'd'}
	data, err := extop.EncodeExtendedRequest(&extop.Request{
		OID:   extop.PasswordModifyOID,
		Value: value,
	})
	if err != nil {
		t.Fatalf("EncodeExtendedRequest: %v", err)
	}

	pkt, err := asn1ber.DecodePacketErr(data)
	if err != nil {
		t.Fatalf("go-asn1-ber rejected envelope: %v", err)
	}
	if pkt.ClassType != asn1ber.ClassApplication || pkt.TagType != asn1ber.TypeConstructed || pkt.Tag != 23 {
		t.Fatalf("unexpected identifier: class=%d type=%d tag=%d", pkt.ClassType, pkt.TagType, pkt.Tag)
	}
	if len(pkt.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(pkt.Children))
	}
	name := pkt.Children[0]
	if name.ClassType != asn1ber.ClassContext || name.Tag != 0 {
		t.Errorf("requestName: class=%d tag=%d, want context 0", name.ClassType, name.Tag)
	}
	if got := string(name.Data.Bytes()); got != extop.PasswordModifyOID {
		t.Errorf("requestName %q, want %q", got, extop.PasswordModifyOID)
	}
	reqValue := pkt.Children[1]
	if reqValue.ClassType != asn1ber.ClassContext || reqValue.Tag != 1 {
		t.Errorf("requestValue: class=%d tag=%d, want context 1", reqValue.ClassType, reqValue.Tag)
	}
	if !bytes.Equal(reqValue.Data.Bytes(), value) {
		t.Errorf("requestValue % X, want % X", reqValue.Data.Bytes(), value)
	}
}

// TestExtendedResponseCompat builds a response envelope with go-asn1-ber and
// parses it with ParseExtendedResponse.
func TestExtendedResponseCompat(t *testing.T) {
	pkt := asn1ber.Encode(asn1ber.ClassApplication, asn1ber.TypeConstructed, 24, nil, "ExtendedResponse")
	pkt.AppendChild(asn1ber.NewInteger(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagEnumerated, 0, "resultCode"))
	pkt.AppendChild(asn1ber.NewString(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagOctetString, "", "matchedDN"))
	pkt.AppendChild(asn1ber.NewString(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagOctetString, "all good", "diagnosticMessage"))
	pkt.AppendChild(asn1ber.NewString(asn1ber.ClassContext, asn1ber.TypePrimitive, 10, extop.WhoAmIOID, "responseName"))
	pkt.AppendChild(asn1ber.NewString(asn1ber.ClassContext, asn1ber.TypePrimitive, 11, "dn:cn=admin,dc=example,dc=com", "responseValue"))

	resp, err := extop.ParseExtendedResponse(pkt.Bytes())
	if err != nil {
		t.Fatalf("ParseExtendedResponse: %v", err)
	}
	if resp.Result.Code != extop.ResultSuccess {
		t.Errorf("result code %d, want success", resp.Result.Code)
	}
	if resp.Result.DiagnosticMessage != "all good" {
		t.Errorf("diagnostic %q, want %q", resp.Result.DiagnosticMessage, "all good")
	}
	if resp.OID != extop.WhoAmIOID {
		t.Errorf("response OID %q, want %q", resp.OID, extop.WhoAmIOID)
	}
	if got := string(resp.Value); got != "dn:cn=admin,dc=example,dc=com" {
		t.Errorf("response value %q", got)
	}
}

// TestPasswordModifyPayloadCompat exchanges password modify payloads with
// go-asn1-ber in both directions.
func TestPasswordModifyPayloadCompat(t *testing.T) {
	t.Run("ours_decoded_by_go_asn1_ber", func(t *testing.T) {
		data, err := extop.EncodePasswordModifyRequest("uid=alice,dc=example,dc=com", "oldpw", "newpw")
		if err != nil {
			t.Fatalf("EncodePasswordModifyRequest: %v", err)
		}

		pkt, err := asn1ber.DecodePacketErr(data)
		if err != nil {
			t.Fatalf("go-asn1-ber rejected payload: %v", err)
		}
		if pkt.Tag != asn1ber.TagSequence || len(pkt.Children) != 3 {
			t.Fatalf("unexpected payload shape: tag=%d children=%d", pkt.Tag, len(pkt.Children))
		}
		want := []struct {
			tag   asn1ber.Tag
			value string
		}{
			{0, "uid=alice,dc=example,dc=com"},
			{1, "oldpw"},
			{2, "newpw"},
		}
		for i, w := range want {
			child := pkt.Children[i]
			if child.ClassType != asn1ber.ClassContext || child.Tag != w.tag {
				t.Errorf("child %d: class=%d tag=%d, want context %d", i, child.ClassType, child.Tag, w.tag)
			}
			if got := string(child.Data.Bytes()); got != w.value {
				t.Errorf("child %d: %q, want %q", i, got, w.value)
			}
		}
	})

	t.Run("go_asn1_ber_parsed_by_ours", func(t *testing.T) {
		pkt := asn1ber.Encode(asn1ber.ClassUniversal, asn1ber.TypeConstructed, asn1ber.TagSequence, nil, "PasswdModifyRequestValue")
		pkt.AppendChild(asn1ber.NewString(asn1ber.ClassContext, asn1ber.TypePrimitive, 0, "uid=bob", "userIdentity"))
		pkt.AppendChild(asn1ber.NewString(asn1ber.ClassContext, asn1ber.TypePrimitive, 2, "secret", "newPasswd"))

		req, err := extop.ParsePasswordModifyRequest(pkt.Bytes())
		if err != nil {
			t.Fatalf("ParsePasswordModifyRequest: %v", err)
		}
		if req.UserIdentity != "uid=bob" {
			t.Errorf("userIdentity %q, want %q", req.UserIdentity, "uid=bob")
		}
		if req.OldPassword != "" {
			t.Errorf("oldPasswd %q, want empty", req.OldPassword)
		}
		if req.NewPassword != "secret" {
			t.Errorf("newPasswd %q, want %q", req.NewPassword, "secret")
		}
	})

	t.Run("response_from_go_asn1_ber", func(t *testing.T) {
		pkt := asn1ber.Encode(asn1ber.ClassUniversal, asn1ber.TypeConstructed, asn1ber.TagSequence, nil, "PasswdModifyResponseValue")
		pkt.AppendChild(asn1ber.NewString(asn1ber.ClassContext, asn1ber.TypePrimitive, 0, "s3cr3t-generated", "genPasswd"))

		genPasswd, err := extop.ParsePasswordModifyResponse(pkt.Bytes())
		if err != nil {
			t.Fatalf("ParsePasswordModifyResponse: %v", err)
		}
		if genPasswd != "s3cr3t-generated" {
			t.Errorf("genPasswd %q, want %q", genPasswd, "s3cr3t-generated")
		}
	})
}
