// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

// TypeLibrary maps numeric OPC UA type identifiers to structured-type
// layouts and back (spec §6.3). The codec never interprets a type ID's
// fields itself — it only needs to know, for a given ExpandedNodeID,
// whether a structured type exists and how to construct a fresh,
// zero-valued Encodable for it to decode into.
type TypeLibrary interface {
	// TypeFromBinaryEncodingID looks up the structured type registered for
	// a binary-encoding ExpandedNodeID, returning a freshly constructed,
	// zero-valued Encodable ready for DecodeOpcuaJSON, or ok=false if the
	// ID is not registered.
	TypeFromBinaryEncodingID(id *ExpandedNodeID) (value Encodable, ok bool)

	// BinaryEncodingIDFromType is the inverse lookup, from a concrete
	// Encodable value to its ExpandedNodeID. The Encoder does not call it:
	// it writes ExtensionObject.TypeID as given.
	BinaryEncodingIDFromType(value Encodable) (id *ExpandedNodeID, ok bool)
}
