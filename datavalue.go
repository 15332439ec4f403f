// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

// DataValue is a Variant plus quality/timestamp metadata (spec §3.3): the
// canonical "read result" of a node value. Every field may be
// default-valued, and reversible form omits default-valued fields entirely
// (spec §4.1.1).
type DataValue struct {
	Value               *Variant
	Status              StatusCode
	SourceTimestamp     DateTime
	SourcePicoseconds   uint16
	ServerTimestamp     DateTime
	ServerPicoseconds   uint16
}

// IsNull reports whether d is the nil DataValue reference. Per spec §4.1.1,
// DataValue is one of the types where elision is driven by nil-reference
// equality, not by all-fields-default equality: a non-nil DataValue whose
// fields are all default still encodes as "{}", not as an elided property.
func (d *DataValue) IsNull() bool {
	return d == nil
}
