// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

// Encodable is the recursive self-invocation hook (spec §6.3): every
// structured type the codec round-trips through an ExtensionObject
// implements this so the encoder/decoder can call back into it without
// either side depending on a concrete type registry.
type Encodable interface {
	EncodeOpcuaJSON(enc *Encoder) error
	DecodeOpcuaJSON(dec *Decoder) error
}

// ExtensionObject carries a structured value whose concrete type is named
// by an ExpandedNodeId, plus an encoding tag saying whether the body is a
// JSON-encodable structure, an opaque (usually binary) byte string, or an
// embedded XML fragment (spec §3.3).
type ExtensionObject struct {
	TypeID   *ExpandedNodeID
	Encoding EncodingType

	// Which of these is populated depends on Encoding:
	Body Encodable // EncodingTypeStructured
	// Bytes holds the raw EncodingTypeByteString payload (the base64-decoded
	// binary encoding). When a decoder turns that payload into a value via
	// the binary collaborator (§6.3), BinaryBody holds it and Body stays nil.
	// XML holds an EncodingTypeXML body; when it is decoded through an
	// XMLDecoderFactory, Body holds the decoded value as well.
	Bytes      ByteString
	XML        XmlElement
	BinaryBody Encodable
}
