// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import "github.com/google/uuid"

// Guid is a 128-bit UUID (spec §3.1), backed by google/uuid the way any
// modern Go codebase reaches for a UUID type rather than hand-rolling one.
type Guid = uuid.UUID

// guidZero is the default/zero Guid value, used for reversible-form
// default-value elision (Guid is not in the nil-reference exception list).
var guidZero = uuid.Nil

// ParseGUID parses the JSON-wire string form of a Guid (spec §3.1).
func ParseGUID(s string) (Guid, error) {
	return uuid.Parse(s)
}

// NodeID identifies a node in the OPC UA address space (spec §3.2): a sum
// of {numeric, string, Guid, byte-string} identifier plus a namespace
// index. The IdType field is the discriminant; exactly one of the
// Numeric/Text/GUID/Opaque fields is meaningful for a given IdType, the
// same invariant the teacher's binary readNodeIDFromBuffer/
// writeNodeIDToBuffer helpers (log_record_type.go) enforce for the wire
// encoding.
type NodeID struct {
	IDType    IdType
	Namespace uint16

	Numeric uint32
	Text    string
	GUID    Guid
	Opaque  ByteString
}

// NewNumericNodeID builds a NodeID with a numeric identifier, the common
// case (e.g. well-known NodeIds in namespace 0).
func NewNumericNodeID(ns uint16, id uint32) *NodeID {
	return &NodeID{IDType: IdTypeNumeric, Namespace: ns, Numeric: id}
}

// NewStringNodeID builds a NodeID with a string identifier.
func NewStringNodeID(ns uint16, id string) *NodeID {
	return &NodeID{IDType: IdTypeString, Namespace: ns, Text: id}
}

// isZeroValue reports whether n is the *value* zero NodeId (numeric,
// ns=0, id=0) — distinct from the nil-reference elision rule in spec
// §4.1.1's exception list, which write_NodeID applies via a plain nil
// pointer check. Nothing in this package calls it; the JSON codec's own
// elision never uses it.
func (n *NodeID) isZeroValue() bool {
	return n == nil || (n.IDType == IdTypeNumeric && n.Namespace == 0 && n.Numeric == 0)
}

// ExpandedNodeID is a NodeID plus an optional namespace URI override and a
// server index/URI (spec §3.2).
type ExpandedNodeID struct {
	NodeID *NodeID

	// NamespaceURI overrides NodeID.Namespace when non-empty (reversible
	// form still emits the plain index; non-reversible form prefers the
	// URI, resolving against the context when this is empty).
	NamespaceURI string

	// ServerIndex is the reversible-form server reference; ServerURI is
	// the non-reversible resolution of it (spec §4.1.4).
	ServerIndex uint32
	ServerURI   string
}
