// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import "time"

// ByteString is an opaque, nullable byte sequence (spec §3.1). A nil
// ByteString is the "null" value; a non-nil empty slice is distinct from
// null and round-trips as an empty base64 string.
type ByteString []byte

// XmlElement is a well-formed XML fragment carried as text (spec §3.1).
type XmlElement string

// DateTime is re-exported as the standard library's time.Time. The OPC UA
// epoch (1601-01-01) and 100ns resolution only matter at the binary-codec
// boundary (see binarygopcua.go); the JSON encoding in reversible form uses
// RFC 3339 with up to 100ns (7 fractional digits), per Part 6 §5.4.2.5.
type DateTime = time.Time

// IdType identifies which union member a NodeId's identifier is (spec §3.2).
type IdType int32

const (
	IdTypeNumeric IdType = 0
	IdTypeString  IdType = 1
	IdTypeGuid    IdType = 2
	IdTypeOpaque  IdType = 3 // ByteString identifier
)

func (t IdType) valid() bool {
	return t >= IdTypeNumeric && t <= IdTypeOpaque
}

// EncodingType discriminates an ExtensionObject's body (spec §3.3).
type EncodingType int32

const (
	EncodingTypeStructured EncodingType = 0
	EncodingTypeByteString EncodingType = 1
	EncodingTypeXML        EncodingType = 2
)

func (t EncodingType) valid() bool {
	return t >= EncodingTypeStructured && t <= EncodingTypeXML
}

// VariantType is the BuiltInType tag carried by a Variant (spec §3.3). The
// numbering matches OPC UA Part 6 Table 14 exactly (Int32 = 6 etc.), which
// is what scenario S5 in the spec's worked examples relies on.
type VariantType int32

const (
	VariantTypeNull            VariantType = 0
	VariantTypeBoolean         VariantType = 1
	VariantTypeSByte           VariantType = 2
	VariantTypeByte            VariantType = 3
	VariantTypeInt16           VariantType = 4
	VariantTypeUInt16          VariantType = 5
	VariantTypeInt32           VariantType = 6
	VariantTypeUInt32          VariantType = 7
	VariantTypeInt64           VariantType = 8
	VariantTypeUInt64          VariantType = 9
	VariantTypeFloat           VariantType = 10
	VariantTypeDouble          VariantType = 11
	VariantTypeString          VariantType = 12
	VariantTypeDateTime        VariantType = 13
	VariantTypeGuid            VariantType = 14
	VariantTypeByteString      VariantType = 15
	VariantTypeXmlElement      VariantType = 16
	VariantTypeNodeID          VariantType = 17
	VariantTypeExpandedNodeID  VariantType = 18
	VariantTypeStatusCode      VariantType = 19
	VariantTypeQualifiedName   VariantType = 20
	VariantTypeLocalizedText   VariantType = 21
	VariantTypeExtensionObject VariantType = 22
	VariantTypeDataValue       VariantType = 23
	VariantTypeVariant         VariantType = 24
	VariantTypeDiagnosticInfo  VariantType = 25
)

func (t VariantType) valid() bool {
	return t >= VariantTypeNull && t <= VariantTypeDiagnosticInfo
}

// Enumeration is any OPC UA enumeration value: an int32 underlying value
// plus a symbolic name, used by the non-reversible "Name_Value" emission
// rule (spec §4.1.10).
type Enumeration interface {
	EnumValue() int32
	EnumSymbol() string
}
