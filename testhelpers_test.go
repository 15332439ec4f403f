// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import "testing"

// fnEncodable adapts two closures to the Encodable interface so tests can
// exercise a single write_<T>/read_<T> call inside the object envelope
// WriteRequest/ReadResponse (and WriteEncodable/ReadEncodable) require,
// without needing a full structured type for every scenario.
type fnEncodable struct {
	encode func(*Encoder) error
	decode func(*Decoder) error
}

func (f *fnEncodable) EncodeOpcuaJSON(e *Encoder) error {
	if f.encode == nil {
		return nil
	}
	return f.encode(e)
}

func (f *fnEncodable) DecodeOpcuaJSON(d *Decoder) error {
	if f.decode == nil {
		return nil
	}
	return f.decode(d)
}

// encodeToString writes a single field through encode inside a fresh root
// object and returns the resulting JSON text.
func encodeToString(t *testing.T, p *Provider, opts EncoderOptions, encode func(*Encoder) error) string {
	t.Helper()
	enc, buf := p.NewBufferEncoder(opts)
	if err := enc.WriteRequest(&fnEncodable{encode: encode}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
	return buf.String()
}

// decodeFromString parses data and runs decode against the root object.
func decodeFromString(t *testing.T, p *Provider, opts DecoderOptions, data string, decode func(*Decoder) error) {
	t.Helper()
	dec, err := p.NewBufferDecoder([]byte(data), opts)
	if err != nil {
		t.Fatalf("construct decoder: %v", err)
	}
	if err := dec.ReadResponse(&fnEncodable{decode: decode}); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := dec.Close(); err != nil {
		t.Fatalf("close decoder: %v", err)
	}
}
