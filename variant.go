// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import "fmt"

// Variant is a self-describing value: a type tag, a payload (scalar, flat
// array, or a flat array plus dimensions for rank >= 2), and an optional
// dimension vector (spec §3.3). The dispatch-by-tag shape mirrors the
// teacher's binary ua.Variant (other_examples wattch-opcua/ua-variant.go)
// Type()/Set()/Decode()/Encode() switch, reworked for the JSON envelope.
type Variant struct {
	Type VariantType

	// Value holds exactly one of:
	//   - a scalar of the Go type matching Type (e.g. int32 for Int32)
	//   - a []T slice of that Go type, for a 1-D or flattened multi-D array
	// A nil Value with Type == VariantTypeNull is the "null variant".
	Value interface{}

	// Dimensions is non-nil only for rank >= 2 arrays; its product must
	// equal len(Value.([]T)) (spec §3.3 invariant).
	Dimensions []int32
}

// IsNull reports whether v is the null variant (spec §4.1.1 elision rule
// for Variant).
func (v *Variant) IsNull() bool {
	return v == nil || (v.Type == VariantTypeNull && v.Value == nil)
}

// IsArray reports whether v carries an array (1-D or multi-D) payload
// rather than a scalar.
func (v *Variant) IsArray() bool {
	return v.Dimensions != nil || isSliceValue(v.Value)
}

// validateDimensions checks the invariant from spec §4.2.5: the product of
// dims must equal total. Supplemented as an independently testable helper
// per SPEC_FULL.md, grounded on the same "validate shape before reading"
// discipline the teacher's binary Variant.Decode applies to ArrayLength.
func validateDimensions(dims []int32, total int) error {
	if len(dims) < 2 {
		return newEncodingError("Dimensions", "multi-dimensional variant must have at least 2 dimensions", nil)
	}
	product := 1
	for _, d := range dims {
		if d < 0 {
			return newEncodingError("Dimensions", fmt.Sprintf("negative dimension %d", d), nil)
		}
		product *= int(d)
	}
	if product != total {
		return newEncodingError("Dimensions", fmt.Sprintf("dimensions %v (product %d) do not match element count %d", dims, product, total), nil)
	}
	return nil
}

// dimensionsElementCount multiplies out dims without allocating the
// flattened array, used by the decoder to check the array-length limit
// before reading any element (spec §4.2.5 step 5, scenario S7).
func dimensionsElementCount(dims []int32) (int64, error) {
	total := int64(1)
	for _, d := range dims {
		if d < 0 {
			return 0, newEncodingError("Dimensions", fmt.Sprintf("negative dimension %d", d), nil)
		}
		total *= int64(d)
	}
	return total, nil
}

func isSliceValue(v interface{}) bool {
	switch v.(type) {
	case []bool, []int8, []uint8, []int16, []uint16, []int32, []uint32,
		[]int64, []uint64, []float32, []float64, []string, []DateTime,
		[]Guid, []ByteString, []XmlElement, []*NodeID, []*ExpandedNodeID,
		[]StatusCode, []*QualifiedName, []*LocalizedText,
		[]*ExtensionObject, []*DataValue, []*Variant, []*DiagnosticInfo:
		return true
	default:
		return false
	}
}
