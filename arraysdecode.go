// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import jsoniter "github.com/json-iterator/go"

// readArrayField is the decode-side counterpart to writeArrayField (spec
// §4.2.1 applied to arrays): a named (or current-top, if name is nil)
// field that is absent or JSON null decodes to a nil slice (present=false);
// otherwise it must be a JSON array, length-checked against
// max_array_length before any element is read (spec §4.2.5 scenario S7
// generalized to every array type, not just Variant). alloc is called
// exactly once, with the array's length, before any element is read, so
// callers can size their backing slice ahead of readElem filling it in.
func (d *Decoder) readArrayField(name *string, alloc func(n int), readElem func(i int) error) (present bool, err error) {
	present, err = d.withField(name, func() error {
		if d.doc.valueType() != jsoniter.ArrayValue {
			return newEncodingError(fieldLabel(name), "expected array", nil)
		}
		n := d.doc.size()
		if err := d.checkArrayLimit(n); err != nil {
			return err
		}
		alloc(n)
		if err := d.enter(); err != nil {
			return err
		}
		defer d.exit()
		for i := 0; i < n; i++ {
			if !d.doc.pushIndex(i) {
				return newEncodingError(fieldLabel(name), "malformed array element", nil)
			}
			ierr := readElem(i)
			d.doc.popIndex()
			if ierr != nil {
				return ierr
			}
		}
		return nil
	})
	return present, err
}

func (d *Decoder) ReadBooleanArray(name *string) ([]bool, error) {
	var v []bool
	present, err := d.readArrayField(name, func(n int) { v = make([]bool, n) }, func(i int) error {
		x, ferr := d.ReadBoolean(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadSByteArray(name *string) ([]int8, error) {
	var v []int8
	present, err := d.readArrayField(name, func(n int) { v = make([]int8, n) }, func(i int) error {
		x, ferr := d.ReadSByte(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadByteArray(name *string) ([]uint8, error) {
	var v []uint8
	present, err := d.readArrayField(name, func(n int) { v = make([]uint8, n) }, func(i int) error {
		x, ferr := d.ReadByte(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadInt16Array(name *string) ([]int16, error) {
	var v []int16
	present, err := d.readArrayField(name, func(n int) { v = make([]int16, n) }, func(i int) error {
		x, ferr := d.ReadInt16(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadUInt16Array(name *string) ([]uint16, error) {
	var v []uint16
	present, err := d.readArrayField(name, func(n int) { v = make([]uint16, n) }, func(i int) error {
		x, ferr := d.ReadUInt16(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadInt32Array(name *string) ([]int32, error) {
	var v []int32
	present, err := d.readArrayField(name, func(n int) { v = make([]int32, n) }, func(i int) error {
		x, ferr := d.ReadInt32(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadUInt32Array(name *string) ([]uint32, error) {
	var v []uint32
	present, err := d.readArrayField(name, func(n int) { v = make([]uint32, n) }, func(i int) error {
		x, ferr := d.ReadUInt32(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadInt64Array(name *string) ([]int64, error) {
	var v []int64
	present, err := d.readArrayField(name, func(n int) { v = make([]int64, n) }, func(i int) error {
		x, ferr := d.ReadInt64(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadUInt64Array(name *string) ([]uint64, error) {
	var v []uint64
	present, err := d.readArrayField(name, func(n int) { v = make([]uint64, n) }, func(i int) error {
		x, ferr := d.ReadUInt64(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadFloatArray(name *string) ([]float32, error) {
	var v []float32
	present, err := d.readArrayField(name, func(n int) { v = make([]float32, n) }, func(i int) error {
		x, ferr := d.ReadFloat(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadDoubleArray(name *string) ([]float64, error) {
	var v []float64
	present, err := d.readArrayField(name, func(n int) { v = make([]float64, n) }, func(i int) error {
		x, ferr := d.ReadDouble(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadStringArray(name *string) ([]string, error) {
	var v []string
	present, err := d.readArrayField(name, func(n int) { v = make([]string, n) }, func(i int) error {
		x, ferr := d.ReadString(nil)
		if x != nil {
			v[i] = *x
		}
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadDateTimeArray(name *string) ([]DateTime, error) {
	var v []DateTime
	present, err := d.readArrayField(name, func(n int) { v = make([]DateTime, n) }, func(i int) error {
		x, ferr := d.ReadDateTime(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadGuidArray(name *string) ([]Guid, error) {
	var v []Guid
	present, err := d.readArrayField(name, func(n int) { v = make([]Guid, n) }, func(i int) error {
		x, ferr := d.ReadGuid(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadByteStringArray(name *string) ([]ByteString, error) {
	var v []ByteString
	present, err := d.readArrayField(name, func(n int) { v = make([]ByteString, n) }, func(i int) error {
		x, ferr := d.ReadByteString(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadXmlElementArray(name *string) ([]XmlElement, error) {
	var v []XmlElement
	present, err := d.readArrayField(name, func(n int) { v = make([]XmlElement, n) }, func(i int) error {
		x, ferr := d.ReadXmlElement(nil)
		if x != nil {
			v[i] = *x
		}
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadNodeIDArray(name *string) ([]*NodeID, error) {
	var v []*NodeID
	present, err := d.readArrayField(name, func(n int) { v = make([]*NodeID, n) }, func(i int) error {
		x, ferr := d.ReadNodeID(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadExpandedNodeIDArray(name *string) ([]*ExpandedNodeID, error) {
	var v []*ExpandedNodeID
	present, err := d.readArrayField(name, func(n int) { v = make([]*ExpandedNodeID, n) }, func(i int) error {
		x, ferr := d.ReadExpandedNodeID(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadStatusCodeArray(name *string) ([]StatusCode, error) {
	var v []StatusCode
	present, err := d.readArrayField(name, func(n int) { v = make([]StatusCode, n) }, func(i int) error {
		x, ferr := d.ReadStatusCode(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadQualifiedNameArray(name *string) ([]*QualifiedName, error) {
	var v []*QualifiedName
	present, err := d.readArrayField(name, func(n int) { v = make([]*QualifiedName, n) }, func(i int) error {
		x, ferr := d.ReadQualifiedName(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadLocalizedTextArray(name *string) ([]*LocalizedText, error) {
	var v []*LocalizedText
	present, err := d.readArrayField(name, func(n int) { v = make([]*LocalizedText, n) }, func(i int) error {
		x, ferr := d.ReadLocalizedText(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadExtensionObjectArray(name *string) ([]*ExtensionObject, error) {
	var v []*ExtensionObject
	present, err := d.readArrayField(name, func(n int) { v = make([]*ExtensionObject, n) }, func(i int) error {
		x, ferr := d.ReadExtensionObject(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadDataValueArray(name *string) ([]*DataValue, error) {
	var v []*DataValue
	present, err := d.readArrayField(name, func(n int) { v = make([]*DataValue, n) }, func(i int) error {
		x, ferr := d.ReadDataValue(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadVariantArray(name *string) ([]*Variant, error) {
	var v []*Variant
	present, err := d.readArrayField(name, func(n int) { v = make([]*Variant, n) }, func(i int) error {
		x, ferr := d.ReadVariant(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadDiagnosticInfoArray(name *string) ([]*DiagnosticInfo, error) {
	var v []*DiagnosticInfo
	present, err := d.readArrayField(name, func(n int) { v = make([]*DiagnosticInfo, n) }, func(i int) error {
		x, ferr := d.ReadDiagnosticInfo(nil)
		v[i] = x
		return ferr
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}
