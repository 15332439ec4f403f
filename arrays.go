// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import "fmt"

// writeArrayField implements spec §4.1.9: a nil slice elides (reversible)
// or writes null (non-reversible) exactly like the other nil-reference
// exception types; a non-nil slice is length-checked against
// max_array_length and then written as a JSON array via writeElems, which
// must call e.w.element() before each item.
func (e *Encoder) writeArrayField(name *string, isNil bool, length int, writeElems func() error) error {
	if isNil {
		if name != nil {
			if e.opts.Reversible {
				return nil
			}
			e.w.field(*name)
			e.w.writeNil()
			return e.w.err()
		}
		e.w.writeNil()
		return e.w.err()
	}
	if name != nil {
		e.w.field(*name)
	}
	if err := e.checkArrayLimit(length); err != nil {
		return err
	}
	if err := e.enter(); err != nil {
		return err
	}
	defer e.exit()
	e.w.beginArray()
	if err := writeElems(); err != nil {
		return err
	}
	e.w.endArray()
	return e.w.err()
}

func (e *Encoder) WriteBooleanArray(name *string, v []bool) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			e.w.writeBool(x)
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteSByteArray(name *string, v []int8) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			e.w.writeInt32(int32(x))
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteByteArray(name *string, v []uint8) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			e.w.writeUint32(uint32(x))
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteInt16Array(name *string, v []int16) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			e.w.writeInt32(int32(x))
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteUInt16Array(name *string, v []uint16) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			e.w.writeUint32(uint32(x))
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteInt32Array(name *string, v []int32) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			e.w.writeInt32(x)
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteUInt32Array(name *string, v []uint32) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			e.w.writeUint32(x)
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteInt64Array(name *string, v []int64) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			e.w.writeInt64String(x)
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteUInt64Array(name *string, v []uint64) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			e.w.writeUint64String(x)
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteFloatArray(name *string, v []float32) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			e.w.writeFloat32(x)
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteDoubleArray(name *string, v []float64) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			e.w.writeFloat64(x)
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteStringArray(name *string, v []string) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for i := range v {
			e.w.element()
			if err := e.checkStringLimit(v[i]); err != nil {
				return err
			}
			e.w.writeString(v[i])
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteDateTimeArray(name *string, v []DateTime) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			e.w.writeString(x.UTC().Format("2006-01-02T15:04:05.0000000Z"))
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteGuidArray(name *string, v []Guid) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			e.w.writeString(x.String())
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteByteStringArray(name *string, v []ByteString) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			if err := e.WriteByteString(nil, x); err != nil {
				return err
			}
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteXmlElementArray(name *string, v []XmlElement) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for i := range v {
			e.w.element()
			if err := e.WriteXmlElement(nil, &v[i]); err != nil {
				return err
			}
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteNodeIDArray(name *string, v []*NodeID) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			if err := e.WriteNodeID(nil, x); err != nil {
				return err
			}
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteExpandedNodeIDArray(name *string, v []*ExpandedNodeID) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			if err := e.WriteExpandedNodeID(nil, x); err != nil {
				return err
			}
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteStatusCodeArray(name *string, v []StatusCode) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			if err := e.WriteStatusCode(nil, x); err != nil {
				return err
			}
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteQualifiedNameArray(name *string, v []*QualifiedName) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			if err := e.WriteQualifiedName(nil, x); err != nil {
				return err
			}
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteLocalizedTextArray(name *string, v []*LocalizedText) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			if err := e.WriteLocalizedText(nil, x); err != nil {
				return err
			}
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteExtensionObjectArray(name *string, v []*ExtensionObject) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			if err := e.WriteExtensionObject(nil, x); err != nil {
				return err
			}
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteDataValueArray(name *string, v []*DataValue) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			if err := e.WriteDataValue(nil, x); err != nil {
				return err
			}
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteVariantArray(name *string, v []*Variant) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			if err := e.WriteVariant(nil, x); err != nil {
				return err
			}
		}
		return e.w.err()
	})
}

func (e *Encoder) WriteDiagnosticInfoArray(name *string, v []*DiagnosticInfo) error {
	return e.writeArrayField(name, v == nil, len(v), func() error {
		for _, x := range v {
			e.w.element()
			if err := e.WriteDiagnosticInfo(nil, x); err != nil {
				return err
			}
		}
		return e.w.err()
	})
}

// newFlatSlice is readDimensionedBody's counterpart to sliceLen: it
// preallocates the flat Go slice for a multi-dimensional Variant body of
// the given VariantType and total element count, to be filled in by
// readFlatElement as the nested JSON arrays are walked.
func newFlatSlice(vt VariantType, n int) (interface{}, error) {
	switch vt {
	case VariantTypeBoolean:
		return make([]bool, n), nil
	case VariantTypeSByte:
		return make([]int8, n), nil
	case VariantTypeByte:
		return make([]uint8, n), nil
	case VariantTypeInt16:
		return make([]int16, n), nil
	case VariantTypeUInt16:
		return make([]uint16, n), nil
	case VariantTypeInt32:
		return make([]int32, n), nil
	case VariantTypeUInt32:
		return make([]uint32, n), nil
	case VariantTypeInt64:
		return make([]int64, n), nil
	case VariantTypeUInt64:
		return make([]uint64, n), nil
	case VariantTypeFloat:
		return make([]float32, n), nil
	case VariantTypeDouble:
		return make([]float64, n), nil
	case VariantTypeString:
		return make([]string, n), nil
	case VariantTypeDateTime:
		return make([]DateTime, n), nil
	case VariantTypeGuid:
		return make([]Guid, n), nil
	case VariantTypeByteString:
		return make([]ByteString, n), nil
	case VariantTypeXmlElement:
		return make([]XmlElement, n), nil
	case VariantTypeNodeID:
		return make([]*NodeID, n), nil
	case VariantTypeExpandedNodeID:
		return make([]*ExpandedNodeID, n), nil
	case VariantTypeStatusCode:
		return make([]StatusCode, n), nil
	case VariantTypeQualifiedName:
		return make([]*QualifiedName, n), nil
	case VariantTypeLocalizedText:
		return make([]*LocalizedText, n), nil
	case VariantTypeExtensionObject:
		return make([]*ExtensionObject, n), nil
	case VariantTypeDataValue:
		return make([]*DataValue, n), nil
	case VariantTypeVariant:
		return make([]*Variant, n), nil
	case VariantTypeDiagnosticInfo:
		return make([]*DiagnosticInfo, n), nil
	default:
		return nil, newEncodingError("Body", fmt.Sprintf("unsupported multi-dimensional variant payload type %d", vt), nil)
	}
}

// sliceLen and writeFlatElement support Variant's multi-dimensional body
// encoding (spec §4.1.7): the flat payload is one of the same Go types
// writeVariantScalarOrFlatArray already dispatches on, addressed by a
// running flat index rather than ranged over directly.

func sliceLen(v interface{}) (int, error) {
	switch s := v.(type) {
	case []bool:
		return len(s), nil
	case []int8:
		return len(s), nil
	case []uint8:
		return len(s), nil
	case []int16:
		return len(s), nil
	case []uint16:
		return len(s), nil
	case []int32:
		return len(s), nil
	case []uint32:
		return len(s), nil
	case []int64:
		return len(s), nil
	case []uint64:
		return len(s), nil
	case []float32:
		return len(s), nil
	case []float64:
		return len(s), nil
	case []string:
		return len(s), nil
	case []DateTime:
		return len(s), nil
	case []Guid:
		return len(s), nil
	case []ByteString:
		return len(s), nil
	case []XmlElement:
		return len(s), nil
	case []*NodeID:
		return len(s), nil
	case []*ExpandedNodeID:
		return len(s), nil
	case []StatusCode:
		return len(s), nil
	case []*QualifiedName:
		return len(s), nil
	case []*LocalizedText:
		return len(s), nil
	case []*ExtensionObject:
		return len(s), nil
	case []*DataValue:
		return len(s), nil
	case []*Variant:
		return len(s), nil
	case []*DiagnosticInfo:
		return len(s), nil
	default:
		return 0, newEncodingError("Body", fmt.Sprintf("unsupported multi-dimensional variant payload type %T", v), nil)
	}
}

func (e *Encoder) writeFlatElement(flat interface{}, idx int) error {
	switch s := flat.(type) {
	case []bool:
		e.w.writeBool(s[idx])
	case []int8:
		e.w.writeInt32(int32(s[idx]))
	case []uint8:
		e.w.writeUint32(uint32(s[idx]))
	case []int16:
		e.w.writeInt32(int32(s[idx]))
	case []uint16:
		e.w.writeUint32(uint32(s[idx]))
	case []int32:
		e.w.writeInt32(s[idx])
	case []uint32:
		e.w.writeUint32(s[idx])
	case []int64:
		e.w.writeInt64String(s[idx])
	case []uint64:
		e.w.writeUint64String(s[idx])
	case []float32:
		e.w.writeFloat32(s[idx])
	case []float64:
		e.w.writeFloat64(s[idx])
	case []string:
		return e.WriteString(nil, &s[idx])
	case []DateTime:
		return e.WriteDateTime(nil, s[idx])
	case []Guid:
		return e.WriteGuid(nil, s[idx])
	case []ByteString:
		return e.WriteByteString(nil, s[idx])
	case []XmlElement:
		return e.WriteXmlElement(nil, &s[idx])
	case []*NodeID:
		return e.WriteNodeID(nil, s[idx])
	case []*ExpandedNodeID:
		return e.WriteExpandedNodeID(nil, s[idx])
	case []StatusCode:
		return e.WriteStatusCode(nil, s[idx])
	case []*QualifiedName:
		return e.WriteQualifiedName(nil, s[idx])
	case []*LocalizedText:
		return e.WriteLocalizedText(nil, s[idx])
	case []*ExtensionObject:
		return e.WriteExtensionObject(nil, s[idx])
	case []*DataValue:
		return e.WriteDataValue(nil, s[idx])
	case []*Variant:
		return e.WriteVariant(nil, s[idx])
	case []*DiagnosticInfo:
		return e.WriteDiagnosticInfo(nil, s[idx])
	default:
		return newEncodingError("Body", fmt.Sprintf("unsupported multi-dimensional variant payload type %T", flat), nil)
	}
	return e.w.err()
}
