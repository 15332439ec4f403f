// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import "io"

// BinaryDecoder is the minimal surface the codec needs from an OPC UA
// binary decoder (spec §6.3) when an ExtensionObject body is
// EncodingTypeByteString: decode a base64-decoded byte-string body into an
// Encodable's fields. The codec treats the binary codec itself as an
// external collaborator; this package never implements binary decoding
// beyond the adapter in binarygopcua.go.
type BinaryDecoder interface {
	// DecodeInto reads a single structured value's binary encoding from
	// the decoder's source and populates target.
	DecodeInto(target Encodable) error
}

// BinaryDecoderFactory constructs a BinaryDecoder over a byte-string body.
// keepSourceOpen mirrors the "an optional flag controls whether the
// underlying stream is also closed" disposal discipline from spec §5; it
// is forwarded unchanged since source here is a bytes.Reader the factory
// itself owns only for the duration of one ExtensionObject decode.
type BinaryDecoderFactory func(source io.Reader, ctx EncodingContext, keepSourceOpen bool) (BinaryDecoder, error)
