// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import (
	"io"

	"github.com/gopcua/opcua/ua"
)

// gopcuaBinaryDecoder adapts github.com/gopcua/opcua's reflection-driven
// binary codec to the BinaryDecoder collaborator interface (spec §6.3).
// gopcua's own ua.Decode walks a struct's `opcua:"..."` tags the same way
// it decodes its built-in service request/response types; a structured
// Encodable whose Go type carries those tags (the same convention the
// teacher's own log_record_type.go field layout follows for
// LogRecordExtObj) decodes without this package needing to know its shape.
type gopcuaBinaryDecoder struct {
	body []byte
}

func (d *gopcuaBinaryDecoder) DecodeInto(target Encodable) error {
	if _, err := ua.Decode(d.body, target); err != nil {
		return newEncodingError("", "binary decode via gopcua failed", err)
	}
	return nil
}

// GopcuaBinaryDecoderFactory is the production BinaryDecoderFactory (spec
// §6.3, §4.2.6 step 5 case 1): it reads the ExtensionObject's byte-string
// body in full and hands it to gopcua's ua.Decode. ctx is accepted to
// satisfy the BinaryDecoderFactory signature but is unused: gopcua's
// binary codec has no notion of the JSON-side length limits.
func GopcuaBinaryDecoderFactory(source io.Reader, ctx EncodingContext, keepSourceOpen bool) (BinaryDecoder, error) {
	body, err := io.ReadAll(source)
	if err != nil {
		return nil, newEncodingError("", "reading extension object binary body", err)
	}
	if !keepSourceOpen {
		if c, ok := source.(io.Closer); ok {
			_ = c.Close()
		}
	}
	return &gopcuaBinaryDecoder{body: body}, nil
}
