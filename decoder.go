// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// Decoder parses OPC UA JSON into a value tree (spec §4.2). It owns a
// jsonDocument (the whole input parsed up front, per spec §3.4/§5) and
// offers one read_<T> method per built-in type plus one per array-of-T.
type Decoder struct {
	doc    *jsonDocument
	ctx    EncodingContext
	opts   DecoderOptions
	closer io.Closer
	depth  int
	closed bool
	logger *zap.Logger
}

func newDecoder(data []byte, ctx EncodingContext, opts DecoderOptions, closer io.Closer) (*Decoder, error) {
	doc, err := parseJSONDocument(data)
	if err != nil {
		return nil, newEncodingError("", "parsing JSON document", err)
	}
	return &Decoder{doc: doc, ctx: ctx, opts: opts, closer: closer, logger: opts.logger()}, nil
}

func (d *Decoder) enter() error {
	if d.depth >= MaxNestingDepth {
		return newLimitsExceededError("", fmt.Sprintf("nesting depth exceeds %d", MaxNestingDepth))
	}
	d.depth++
	return nil
}

func (d *Decoder) exit() { d.depth-- }

func (d *Decoder) checkArrayLimit(n int) error {
	if max := d.ctx.MaxArrayLength(); max > 0 && uint32(n) > max {
		return newLimitsExceededError("", fmt.Sprintf("array length %d exceeds limit %d", n, max))
	}
	return nil
}

func (d *Decoder) checkStringLimit(s string) error {
	if max := d.ctx.MaxStringLength(); max > 0 && uint32(len(s)) > max {
		return newLimitsExceededError("", fmt.Sprintf("string byte length %d exceeds limit %d", len(s), max))
	}
	return nil
}

func (d *Decoder) checkByteStringLimit(b []byte) error {
	if max := d.ctx.MaxByteStringLength(); max > 0 && uint32(len(b)) > max {
		return newLimitsExceededError("", fmt.Sprintf("byte string length %d exceeds limit %d", len(b), max))
	}
	return nil
}

func fieldLabel(name *string) string {
	if name == nil {
		return ""
	}
	return *name
}

// withField implements spec §4.2's uniform absent/null-is-default rule:
// for a named read it looks the property up on the current top element
// (pop happens on every exit path via defer); for an unnamed read it just
// inspects the current top directly (used for array elements and
// Variant/ExtensionObject bodies). Either way, an absent property or an
// explicit JSON null makes present=false and fn is never invoked — callers
// return T's zero/default value in that case.
func (d *Decoder) withField(name *string, fn func() error) (present bool, err error) {
	if name != nil {
		if !d.doc.pushField(*name) {
			return false, nil
		}
		defer d.doc.popField()
	}
	if d.doc.isNull() {
		return false, nil
	}
	return true, fn()
}

// --- scalars (spec §3.1/§4.2) -----------------------------------------------

func (d *Decoder) ReadBoolean(name *string) (bool, error) {
	var v bool
	_, err := d.withField(name, func() error {
		if d.doc.valueType() != jsoniter.BoolValue {
			return newEncodingError(fieldLabel(name), "expected boolean", nil)
		}
		v = d.doc.top().ToBool()
		return nil
	})
	return v, err
}

func (d *Decoder) readNumberField(name *string, assign func(jsoniter.Any)) error {
	_, err := d.withField(name, func() error {
		if d.doc.valueType() != jsoniter.NumberValue {
			return newEncodingError(fieldLabel(name), "expected number", nil)
		}
		assign(d.doc.top())
		return nil
	})
	return err
}

func (d *Decoder) ReadSByte(name *string) (int8, error) {
	var v int8
	err := d.readNumberField(name, func(a jsoniter.Any) { v = int8(a.ToInt32()) })
	return v, err
}

func (d *Decoder) ReadByte(name *string) (uint8, error) {
	var v uint8
	err := d.readNumberField(name, func(a jsoniter.Any) { v = uint8(a.ToUint32()) })
	return v, err
}

func (d *Decoder) ReadInt16(name *string) (int16, error) {
	var v int16
	err := d.readNumberField(name, func(a jsoniter.Any) { v = int16(a.ToInt32()) })
	return v, err
}

func (d *Decoder) ReadUInt16(name *string) (uint16, error) {
	var v uint16
	err := d.readNumberField(name, func(a jsoniter.Any) { v = uint16(a.ToUint32()) })
	return v, err
}

func (d *Decoder) ReadInt32(name *string) (int32, error) {
	var v int32
	err := d.readNumberField(name, func(a jsoniter.Any) { v = a.ToInt32() })
	return v, err
}

func (d *Decoder) ReadUInt32(name *string) (uint32, error) {
	var v uint32
	err := d.readNumberField(name, func(a jsoniter.Any) { v = a.ToUint32() })
	return v, err
}

// ReadInt64/ReadUInt64 implement the integer-string tolerance rule (spec
// §4.2.2): either a JSON number or a JSON string is accepted.
func (d *Decoder) ReadInt64(name *string) (int64, error) {
	var v int64
	_, err := d.withField(name, func() error {
		top := d.doc.top()
		switch top.ValueType() {
		case jsoniter.NumberValue:
			v = top.ToInt64()
		case jsoniter.StringValue:
			parsed, perr := strconv.ParseInt(top.ToString(), 10, 64)
			if perr != nil {
				return newEncodingError(fieldLabel(name), "malformed Int64 string", perr)
			}
			v = parsed
		default:
			return newEncodingError(fieldLabel(name), "expected number or string for Int64", nil)
		}
		return nil
	})
	return v, err
}

func (d *Decoder) ReadUInt64(name *string) (uint64, error) {
	var v uint64
	_, err := d.withField(name, func() error {
		top := d.doc.top()
		switch top.ValueType() {
		case jsoniter.NumberValue:
			v = top.ToUint64()
		case jsoniter.StringValue:
			parsed, perr := strconv.ParseUint(top.ToString(), 10, 64)
			if perr != nil {
				return newEncodingError(fieldLabel(name), "malformed UInt64 string", perr)
			}
			v = parsed
		default:
			return newEncodingError(fieldLabel(name), "expected number or string for UInt64", nil)
		}
		return nil
	})
	return v, err
}

func (d *Decoder) ReadFloat(name *string) (float32, error) {
	var v float32
	err := d.readNumberField(name, func(a jsoniter.Any) { v = a.ToFloat32() })
	return v, err
}

func (d *Decoder) ReadDouble(name *string) (float64, error) {
	var v float64
	err := d.readNumberField(name, func(a jsoniter.Any) { v = a.ToFloat64() })
	return v, err
}

// ReadString returns nil when the field is absent or JSON null, matching
// the nil-reference representation WriteString expects on round-trip.
func (d *Decoder) ReadString(name *string) (*string, error) {
	var v string
	present, err := d.withField(name, func() error {
		if d.doc.valueType() != jsoniter.StringValue {
			return newEncodingError(fieldLabel(name), "expected string", nil)
		}
		v = d.doc.top().ToString()
		return d.checkStringLimit(v)
	})
	if err != nil || !present {
		return nil, err
	}
	return &v, nil
}

func (d *Decoder) ReadGuid(name *string) (Guid, error) {
	var v Guid
	_, err := d.withField(name, func() error {
		if d.doc.valueType() != jsoniter.StringValue {
			return newEncodingError(fieldLabel(name), "expected string for Guid", nil)
		}
		parsed, perr := ParseGUID(d.doc.top().ToString())
		if perr != nil {
			return newEncodingError(fieldLabel(name), "malformed Guid", perr)
		}
		v = parsed
		return nil
	})
	return v, err
}

func (d *Decoder) ReadByteString(name *string) (ByteString, error) {
	var v ByteString
	present, err := d.withField(name, func() error {
		if d.doc.valueType() != jsoniter.StringValue {
			return newEncodingError(fieldLabel(name), "expected base64 string for ByteString", nil)
		}
		decoded, derr := base64.StdEncoding.DecodeString(d.doc.top().ToString())
		if derr != nil {
			return newEncodingError(fieldLabel(name), "malformed base64 ByteString", derr)
		}
		if err := d.checkByteStringLimit(decoded); err != nil {
			return err
		}
		if decoded == nil {
			decoded = []byte{}
		}
		v = decoded
		return nil
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

func (d *Decoder) ReadXmlElement(name *string) (*XmlElement, error) {
	var v XmlElement
	present, err := d.withField(name, func() error {
		if d.doc.valueType() != jsoniter.StringValue {
			return newEncodingError(fieldLabel(name), "expected string for XmlElement", nil)
		}
		s := d.doc.top().ToString()
		if err := d.checkStringLimit(s); err != nil {
			return err
		}
		v = XmlElement(s)
		return nil
	})
	if err != nil || !present {
		return nil, err
	}
	return &v, nil
}

// ReadDateTime decodes an RFC 3339 timestamp. An absent/null field decodes
// to the zero time.Time, matching the encoder's own default-value elision.
func (d *Decoder) ReadDateTime(name *string) (DateTime, error) {
	var v DateTime
	_, err := d.withField(name, func() error {
		if d.doc.valueType() != jsoniter.StringValue {
			return newEncodingError(fieldLabel(name), "expected string for DateTime", nil)
		}
		parsed, perr := time.Parse(time.RFC3339Nano, d.doc.top().ToString())
		if perr != nil {
			return newEncodingError(fieldLabel(name), "malformed DateTime", perr)
		}
		v = parsed
		return nil
	})
	return v, err
}

// --- StatusCode (spec §4.2 mirrors §4.1.5) ---------------------------------

// ReadStatusCode tolerates both wire shapes StatusCode can take: the
// reversible plain u32, and the non-reversible {Code,Symbol} object (only
// Code is consulted; Symbol is derived, not trusted, on decode).
func (d *Decoder) ReadStatusCode(name *string) (StatusCode, error) {
	var v StatusCode
	_, err := d.withField(name, func() error {
		switch d.doc.valueType() {
		case jsoniter.NumberValue:
			v = StatusCode(d.doc.top().ToUint32())
			return nil
		case jsoniter.ObjectValue:
			codeField := "Code"
			code, err := d.ReadUInt32(&codeField)
			if err != nil {
				return err
			}
			v = StatusCode(code)
			return nil
		default:
			return newEncodingError(fieldLabel(name), "expected number or object for StatusCode", nil)
		}
	})
	return v, err
}

// --- QualifiedName / LocalizedText (spec §4.2 mirrors §4.1.6) -------------

func (d *Decoder) ReadQualifiedName(name *string) (*QualifiedName, error) {
	var v QualifiedName
	present, err := d.withField(name, func() error {
		if err := d.enter(); err != nil {
			return err
		}
		defer d.exit()
		if d.doc.valueType() != jsoniter.ObjectValue {
			return newEncodingError(fieldLabel(name), "expected object for QualifiedName", nil)
		}
		nameField := "Name"
		s, err := d.ReadString(&nameField)
		if err != nil {
			return err
		}
		if s != nil {
			v.Name = *s
		}
		idxField := "NamespaceIndex"
		idx, err := d.readNamespaceIndexField(idxField)
		if err != nil {
			return err
		}
		v.NamespaceIndex = idx
		return nil
	})
	if err != nil || !present {
		return nil, err
	}
	return &v, nil
}

// ReadLocalizedText accepts both the reversible {Locale,Text} object and
// the non-reversible bare Text string, since a caller may round-trip a
// document produced in either form.
func (d *Decoder) ReadLocalizedText(name *string) (*LocalizedText, error) {
	var v LocalizedText
	present, err := d.withField(name, func() error {
		switch d.doc.valueType() {
		case jsoniter.StringValue:
			v.Text = d.doc.top().ToString()
			return d.checkStringLimit(v.Text)
		case jsoniter.ObjectValue:
			if err := d.enter(); err != nil {
				return err
			}
			defer d.exit()
			localeField, textField := "Locale", "Text"
			locale, err := d.ReadString(&localeField)
			if err != nil {
				return err
			}
			if locale != nil {
				v.Locale = *locale
			}
			text, err := d.ReadString(&textField)
			if err != nil {
				return err
			}
			if text != nil {
				v.Text = *text
			}
			return nil
		default:
			return newEncodingError(fieldLabel(name), "expected string or object for LocalizedText", nil)
		}
	})
	if err != nil || !present {
		return nil, err
	}
	return &v, nil
}

// --- NodeId / ExpandedNodeId (spec §4.2.3/§4.2.4) --------------------------

// readNamespaceIndexField reads a namespace-index-shaped field that may be
// carried as a plain number (index) or, in documents produced
// non-reversibly, a URI string resolved back to an index via the context.
func (d *Decoder) readNamespaceIndexField(field string) (uint16, error) {
	var idx uint16
	_, err := d.withField(&field, func() error {
		switch d.doc.valueType() {
		case jsoniter.NumberValue:
			idx = uint16(d.doc.top().ToUint32())
			return nil
		case jsoniter.StringValue:
			uri := d.doc.top().ToString()
			resolved, ok := d.ctx.NamespaceIndex(uri)
			if !ok {
				return newEncodingError(field, fmt.Sprintf("unresolved namespace URI %q", uri), nil)
			}
			idx = resolved
			return nil
		default:
			return newEncodingError(field, "expected number or string for namespace", nil)
		}
	})
	return idx, err
}

func (d *Decoder) readNodeIDFields() (*NodeID, error) {
	v := &NodeID{}
	idTypeField := "IdType"
	idType, err := d.ReadInt32(&idTypeField)
	if err != nil {
		return nil, err
	}
	v.IDType = IdType(idType)
	if !v.IDType.valid() {
		return nil, newEncodingError("IdType", fmt.Sprintf("invalid IdType %d", idType), nil)
	}

	idField := "Id"
	if !d.doc.pushField(idField) {
		return nil, newEncodingError(idField, "missing required Id property", nil)
	}
	switch v.IDType {
	case IdTypeNumeric:
		if d.doc.valueType() != jsoniter.NumberValue {
			d.doc.popField()
			return nil, newEncodingError(idField, "expected number for numeric NodeId", nil)
		}
		v.Numeric = d.doc.top().ToUint32()
	case IdTypeString:
		if d.doc.valueType() != jsoniter.StringValue {
			d.doc.popField()
			return nil, newEncodingError(idField, "expected string for string NodeId", nil)
		}
		v.Text = d.doc.top().ToString()
	case IdTypeGuid:
		if d.doc.valueType() != jsoniter.StringValue {
			d.doc.popField()
			return nil, newEncodingError(idField, "expected string for Guid NodeId", nil)
		}
		parsed, perr := ParseGUID(d.doc.top().ToString())
		if perr != nil {
			d.doc.popField()
			return nil, newEncodingError(idField, "malformed Guid NodeId", perr)
		}
		v.GUID = parsed
	case IdTypeOpaque:
		if d.doc.valueType() != jsoniter.StringValue {
			d.doc.popField()
			return nil, newEncodingError(idField, "expected base64 string for opaque NodeId", nil)
		}
		decoded, derr := base64.StdEncoding.DecodeString(d.doc.top().ToString())
		if derr != nil {
			d.doc.popField()
			return nil, newEncodingError(idField, "malformed base64 opaque NodeId", derr)
		}
		v.Opaque = decoded
	}
	d.doc.popField()

	nsField := "Namespace"
	idx, err := d.readNamespaceIndexField(nsField)
	if err != nil {
		return nil, err
	}
	v.Namespace = idx
	return v, nil
}

func (d *Decoder) ReadNodeID(name *string) (*NodeID, error) {
	var v *NodeID
	present, err := d.withField(name, func() error {
		if err := d.enter(); err != nil {
			return err
		}
		defer d.exit()
		if d.doc.valueType() != jsoniter.ObjectValue {
			return newEncodingError(fieldLabel(name), "expected object for NodeId", nil)
		}
		parsed, rerr := d.readNodeIDFields()
		if rerr != nil {
			return rerr
		}
		v = parsed
		return nil
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

// ReadExpandedNodeID implements spec §4.2.4: it reads the same NodeId
// shape, then ServerUri (numeric), then inspects Namespace: a JSON number
// is an index, a JSON string is a URI, absent is index 0.
func (d *Decoder) ReadExpandedNodeID(name *string) (*ExpandedNodeID, error) {
	var v *ExpandedNodeID
	present, err := d.withField(name, func() error {
		if err := d.enter(); err != nil {
			return err
		}
		defer d.exit()
		if d.doc.valueType() != jsoniter.ObjectValue {
			return newEncodingError(fieldLabel(name), "expected object for ExpandedNodeId", nil)
		}
		result := &ExpandedNodeID{NodeID: &NodeID{}}

		idTypeField := "IdType"
		idType, err := d.ReadInt32(&idTypeField)
		if err != nil {
			return err
		}
		result.NodeID.IDType = IdType(idType)
		if !result.NodeID.IDType.valid() {
			return newEncodingError("IdType", fmt.Sprintf("invalid IdType %d", idType), nil)
		}

		idField := "Id"
		if !d.doc.pushField(idField) {
			return newEncodingError(idField, "missing required Id property", nil)
		}
		switch result.NodeID.IDType {
		case IdTypeNumeric:
			result.NodeID.Numeric = d.doc.top().ToUint32()
		case IdTypeString:
			result.NodeID.Text = d.doc.top().ToString()
		case IdTypeGuid:
			parsed, perr := ParseGUID(d.doc.top().ToString())
			if perr != nil {
				d.doc.popField()
				return newEncodingError(idField, "malformed Guid NodeId", perr)
			}
			result.NodeID.GUID = parsed
		case IdTypeOpaque:
			decoded, derr := base64.StdEncoding.DecodeString(d.doc.top().ToString())
			if derr != nil {
				d.doc.popField()
				return newEncodingError(idField, "malformed base64 opaque NodeId", derr)
			}
			result.NodeID.Opaque = decoded
		}
		d.doc.popField()

		serverField := "ServerUri"
		switch {
		case !d.doc.pushField(serverField):
		case d.doc.isNull():
			d.doc.popField()
		default:
			if d.doc.valueType() == jsoniter.NumberValue {
				result.ServerIndex = d.doc.top().ToUint32()
			} else if d.doc.valueType() == jsoniter.StringValue {
				result.ServerURI = d.doc.top().ToString()
			}
			d.doc.popField()
		}

		nsField := "Namespace"
		if !d.doc.pushField(nsField) {
			result.NodeID.Namespace = 0
			v = result
			return nil
		}
		defer d.doc.popField()
		if d.doc.isNull() {
			v = result
			return nil
		}
		switch d.doc.valueType() {
		case jsoniter.NumberValue:
			result.NodeID.Namespace = uint16(d.doc.top().ToUint32())
		case jsoniter.StringValue:
			result.NamespaceURI = d.doc.top().ToString()
			if idx, ok := d.ctx.NamespaceIndex(result.NamespaceURI); ok {
				result.NodeID.Namespace = idx
			}
		default:
			return newEncodingError(nsField, "expected number or string for Namespace", nil)
		}
		v = result
		return nil
	})
	if err != nil || !present {
		return nil, err
	}
	return v, nil
}

// --- Variant (spec §4.2.5) --------------------------------------------------

func (d *Decoder) ReadVariant(name *string) (*Variant, error) {
	var result *Variant
	present, err := d.withField(name, func() error {
		if err := d.enter(); err != nil {
			return err
		}
		defer d.exit()
		if d.doc.valueType() != jsoniter.ObjectValue {
			return newEncodingError(fieldLabel(name), "expected object for Variant", nil)
		}

		typeField := "Type"
		typeVal, err := d.ReadInt32(&typeField)
		if err != nil {
			return err
		}
		vt := VariantType(typeVal)
		if !vt.valid() {
			return newEncodingError("Type", fmt.Sprintf("unknown VariantType %d", typeVal), nil)
		}

		dimsField := "Dimensions"
		dims, err := d.ReadInt32Array(&dimsField)
		if err != nil {
			return err
		}

		if !d.doc.pushField("Body") {
			return newEncodingError("Body", "missing required Body property", nil)
		}
		defer d.doc.popField()

		if d.doc.isNull() {
			result = &Variant{Type: VariantTypeNull}
			return nil
		}

		if dims != nil {
			if len(dims) < 2 {
				return newEncodingError("Dimensions", "multi-dimensional variant must have at least 2 dimensions", nil)
			}
			total, derr := dimensionsElementCount(dims)
			if derr != nil {
				return derr
			}
			if max := d.ctx.MaxArrayLength(); max > 0 && total > int64(max) {
				return newLimitsExceededError("Dimensions", fmt.Sprintf("dimension product %d exceeds limit %d", total, max))
			}
			flat, rerr := d.readDimensionedBody(vt, dims)
			if rerr != nil {
				return rerr
			}
			result = &Variant{Type: vt, Value: flat, Dimensions: dims}
			return nil
		}

		isArray := d.doc.valueType() == jsoniter.ArrayValue
		val, rerr := d.readVariantScalarOrArray(vt, isArray)
		if rerr != nil {
			return rerr
		}
		result = &Variant{Type: vt, Value: val}
		return nil
	})
	if err != nil || !present {
		return nil, err
	}
	return result, nil
}

// readVariantScalarOrArray dispatches the Body payload by VariantType, per
// spec §4.2.5 step 4, reading either a single scalar or a 1-D array of it
// from the current top element (the pushed Body).
func (d *Decoder) readVariantScalarOrArray(vt VariantType, isArray bool) (interface{}, error) {
	switch vt {
	case VariantTypeNull:
		return nil, nil
	case VariantTypeBoolean:
		if isArray {
			return d.ReadBooleanArray(nil)
		}
		return d.ReadBoolean(nil)
	case VariantTypeSByte:
		if isArray {
			return d.ReadSByteArray(nil)
		}
		return d.ReadSByte(nil)
	case VariantTypeByte:
		if isArray {
			return d.ReadByteArray(nil)
		}
		return d.ReadByte(nil)
	case VariantTypeInt16:
		if isArray {
			return d.ReadInt16Array(nil)
		}
		return d.ReadInt16(nil)
	case VariantTypeUInt16:
		if isArray {
			return d.ReadUInt16Array(nil)
		}
		return d.ReadUInt16(nil)
	case VariantTypeInt32:
		if isArray {
			return d.ReadInt32Array(nil)
		}
		return d.ReadInt32(nil)
	case VariantTypeUInt32:
		if isArray {
			return d.ReadUInt32Array(nil)
		}
		return d.ReadUInt32(nil)
	case VariantTypeInt64:
		if isArray {
			return d.ReadInt64Array(nil)
		}
		return d.ReadInt64(nil)
	case VariantTypeUInt64:
		if isArray {
			return d.ReadUInt64Array(nil)
		}
		return d.ReadUInt64(nil)
	case VariantTypeFloat:
		if isArray {
			return d.ReadFloatArray(nil)
		}
		return d.ReadFloat(nil)
	case VariantTypeDouble:
		if isArray {
			return d.ReadDoubleArray(nil)
		}
		return d.ReadDouble(nil)
	case VariantTypeString:
		if isArray {
			return d.ReadStringArray(nil)
		}
		s, err := d.ReadString(nil)
		if err != nil || s == nil {
			return "", err
		}
		return *s, nil
	case VariantTypeDateTime:
		if isArray {
			return d.ReadDateTimeArray(nil)
		}
		return d.ReadDateTime(nil)
	case VariantTypeGuid:
		if isArray {
			return d.ReadGuidArray(nil)
		}
		return d.ReadGuid(nil)
	case VariantTypeByteString:
		if isArray {
			return d.ReadByteStringArray(nil)
		}
		return d.ReadByteString(nil)
	case VariantTypeXmlElement:
		if isArray {
			return d.ReadXmlElementArray(nil)
		}
		x, err := d.ReadXmlElement(nil)
		if err != nil || x == nil {
			return XmlElement(""), err
		}
		return *x, nil
	case VariantTypeNodeID:
		if isArray {
			return d.ReadNodeIDArray(nil)
		}
		return d.ReadNodeID(nil)
	case VariantTypeExpandedNodeID:
		if isArray {
			return d.ReadExpandedNodeIDArray(nil)
		}
		return d.ReadExpandedNodeID(nil)
	case VariantTypeStatusCode:
		if isArray {
			return d.ReadStatusCodeArray(nil)
		}
		return d.ReadStatusCode(nil)
	case VariantTypeQualifiedName:
		if isArray {
			return d.ReadQualifiedNameArray(nil)
		}
		return d.ReadQualifiedName(nil)
	case VariantTypeLocalizedText:
		if isArray {
			return d.ReadLocalizedTextArray(nil)
		}
		return d.ReadLocalizedText(nil)
	case VariantTypeExtensionObject:
		if isArray {
			return d.ReadExtensionObjectArray(nil)
		}
		return d.ReadExtensionObject(nil)
	case VariantTypeDataValue:
		if isArray {
			return d.ReadDataValueArray(nil)
		}
		return d.ReadDataValue(nil)
	case VariantTypeVariant:
		if isArray {
			return d.ReadVariantArray(nil)
		}
		return d.ReadVariant(nil)
	case VariantTypeDiagnosticInfo:
		if isArray {
			return d.ReadDiagnosticInfoArray(nil)
		}
		return d.ReadDiagnosticInfo(nil)
	default:
		return nil, newEncodingError("Type", fmt.Sprintf("unsupported variant type %d", vt), nil)
	}
}

// readDimensionedBody reads a k-deep nested JSON array of shape dims into
// a flat slice, row-major with the last dimension varying fastest (spec
// §4.2.5): nesting depth must equal len(dims) and each level's length must
// equal the corresponding dimension, checked while descending.
func (d *Decoder) readDimensionedBody(vt VariantType, dims []int32) (interface{}, error) {
	total, err := dimensionsElementCount(dims)
	if err != nil {
		return nil, err
	}
	flat, err := newFlatSlice(vt, int(total))
	if err != nil {
		return nil, err
	}
	idx := 0
	if err := d.readDimensionLevel(vt, dims, 0, flat, &idx); err != nil {
		return nil, err
	}
	return flat, nil
}

func (d *Decoder) readDimensionLevel(vt VariantType, dims []int32, level int, flat interface{}, idx *int) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.exit()
	if d.doc.valueType() != jsoniter.ArrayValue {
		return newEncodingError("Body", "multi-dimensional variant body shape mismatch: expected array", nil)
	}
	n := d.doc.size()
	if n != int(dims[level]) {
		return newEncodingError("Body", fmt.Sprintf("dimension %d length %d does not match expected %d", level, n, dims[level]), nil)
	}
	for i := 0; i < n; i++ {
		if !d.doc.pushIndex(i) {
			return newEncodingError("Body", "malformed multi-dimensional variant body", nil)
		}
		if level == len(dims)-1 {
			if err := d.readFlatElement(vt, flat, *idx); err != nil {
				d.doc.popIndex()
				return err
			}
			*idx++
		} else {
			if err := d.readDimensionLevel(vt, dims, level+1, flat, idx); err != nil {
				d.doc.popIndex()
				return err
			}
		}
		d.doc.popIndex()
	}
	return nil
}

// readFlatElement reads the current top element (already positioned on one
// leaf of a multi-dimensional Variant body) into flat[idx], dispatching by
// VariantType the same way readVariantScalarOrArray does for 1-D bodies.
func (d *Decoder) readFlatElement(vt VariantType, flat interface{}, idx int) error {
	switch vt {
	case VariantTypeBoolean:
		v, err := d.ReadBoolean(nil)
		flat.([]bool)[idx] = v
		return err
	case VariantTypeSByte:
		v, err := d.ReadSByte(nil)
		flat.([]int8)[idx] = v
		return err
	case VariantTypeByte:
		v, err := d.ReadByte(nil)
		flat.([]uint8)[idx] = v
		return err
	case VariantTypeInt16:
		v, err := d.ReadInt16(nil)
		flat.([]int16)[idx] = v
		return err
	case VariantTypeUInt16:
		v, err := d.ReadUInt16(nil)
		flat.([]uint16)[idx] = v
		return err
	case VariantTypeInt32:
		v, err := d.ReadInt32(nil)
		flat.([]int32)[idx] = v
		return err
	case VariantTypeUInt32:
		v, err := d.ReadUInt32(nil)
		flat.([]uint32)[idx] = v
		return err
	case VariantTypeInt64:
		v, err := d.ReadInt64(nil)
		flat.([]int64)[idx] = v
		return err
	case VariantTypeUInt64:
		v, err := d.ReadUInt64(nil)
		flat.([]uint64)[idx] = v
		return err
	case VariantTypeFloat:
		v, err := d.ReadFloat(nil)
		flat.([]float32)[idx] = v
		return err
	case VariantTypeDouble:
		v, err := d.ReadDouble(nil)
		flat.([]float64)[idx] = v
		return err
	case VariantTypeString:
		s, err := d.ReadString(nil)
		if err == nil && s != nil {
			flat.([]string)[idx] = *s
		}
		return err
	case VariantTypeDateTime:
		v, err := d.ReadDateTime(nil)
		flat.([]DateTime)[idx] = v
		return err
	case VariantTypeGuid:
		v, err := d.ReadGuid(nil)
		flat.([]Guid)[idx] = v
		return err
	case VariantTypeByteString:
		v, err := d.ReadByteString(nil)
		flat.([]ByteString)[idx] = v
		return err
	case VariantTypeXmlElement:
		v, err := d.ReadXmlElement(nil)
		if err == nil && v != nil {
			flat.([]XmlElement)[idx] = *v
		}
		return err
	case VariantTypeNodeID:
		v, err := d.ReadNodeID(nil)
		flat.([]*NodeID)[idx] = v
		return err
	case VariantTypeExpandedNodeID:
		v, err := d.ReadExpandedNodeID(nil)
		flat.([]*ExpandedNodeID)[idx] = v
		return err
	case VariantTypeStatusCode:
		v, err := d.ReadStatusCode(nil)
		flat.([]StatusCode)[idx] = v
		return err
	case VariantTypeQualifiedName:
		v, err := d.ReadQualifiedName(nil)
		flat.([]*QualifiedName)[idx] = v
		return err
	case VariantTypeLocalizedText:
		v, err := d.ReadLocalizedText(nil)
		flat.([]*LocalizedText)[idx] = v
		return err
	case VariantTypeExtensionObject:
		v, err := d.ReadExtensionObject(nil)
		flat.([]*ExtensionObject)[idx] = v
		return err
	case VariantTypeDataValue:
		v, err := d.ReadDataValue(nil)
		flat.([]*DataValue)[idx] = v
		return err
	case VariantTypeVariant:
		v, err := d.ReadVariant(nil)
		flat.([]*Variant)[idx] = v
		return err
	case VariantTypeDiagnosticInfo:
		v, err := d.ReadDiagnosticInfo(nil)
		flat.([]*DiagnosticInfo)[idx] = v
		return err
	default:
		return newEncodingError("Body", fmt.Sprintf("unsupported multi-dimensional variant payload type %d", vt), nil)
	}
}

// --- ExtensionObject (spec §4.2.6) ------------------------------------------

func (d *Decoder) ReadExtensionObject(name *string) (*ExtensionObject, error) {
	var result *ExtensionObject
	present, err := d.withField(name, func() error {
		if err := d.enter(); err != nil {
			return err
		}
		defer d.exit()
		if d.doc.valueType() != jsoniter.ObjectValue {
			return newEncodingError(fieldLabel(name), "expected object for ExtensionObject", nil)
		}

		encField := "Encoding"
		encVal, err := d.ReadInt32(&encField)
		if err != nil {
			return err
		}
		encoding := EncodingType(encVal)
		if !encoding.valid() {
			return newEncodingError("Encoding", fmt.Sprintf("invalid encoding tag %d", encVal), nil)
		}

		typeIDField := "TypeId"
		typeID, err := d.ReadExpandedNodeID(&typeIDField)
		if err != nil {
			return err
		}

		var library TypeLibrary
		if encoding == EncodingTypeStructured || encoding == EncodingTypeByteString {
			library = d.opts.TypeLibrary
			if library == nil {
				return newEncodingError("TypeId", "no type library configured to resolve structured extension object", nil)
			}
		}

		if !d.doc.pushField("Body") {
			result = &ExtensionObject{TypeID: typeID, Encoding: encoding}
			return nil
		}
		defer d.doc.popField()
		if d.doc.isNull() {
			result = &ExtensionObject{TypeID: typeID, Encoding: encoding}
			return nil
		}

		switch encoding {
		case EncodingTypeStructured:
			value, ok := library.TypeFromBinaryEncodingID(typeID)
			if !ok {
				return newEncodingError("TypeId", "unregistered structured extension object type", nil)
			}
			if err := value.DecodeOpcuaJSON(d); err != nil {
				return err
			}
			result = &ExtensionObject{TypeID: typeID, Encoding: encoding, Body: value}
		case EncodingTypeByteString:
			if d.doc.valueType() != jsoniter.StringValue {
				return newEncodingError("Body", "expected base64 string for byte-string extension object body", nil)
			}
			raw, derr := base64.StdEncoding.DecodeString(d.doc.top().ToString())
			if derr != nil {
				return newEncodingError("Body", "malformed base64 extension object body", derr)
			}
			value, ok := library.TypeFromBinaryEncodingID(typeID)
			if !ok {
				return newEncodingError("TypeId", "unregistered structured extension object type", nil)
			}
			if d.opts.BinaryDecoderFactory == nil {
				return newEncodingError("Body", "no binary decoder factory configured", nil)
			}
			binDec, berr := d.opts.BinaryDecoderFactory(bytes.NewReader(raw), d.ctx, false)
			if berr != nil {
				return newEncodingError("Body", "constructing binary decoder", berr)
			}
			if err := binDec.DecodeInto(value); err != nil {
				return err
			}
			result = &ExtensionObject{TypeID: typeID, Encoding: encoding, Bytes: raw, BinaryBody: value}
		case EncodingTypeXML:
			if d.doc.valueType() != jsoniter.StringValue {
				return newEncodingError("Body", "expected string for XML extension object body", nil)
			}
			xml := XmlElement(d.doc.top().ToString())
			if d.opts.XMLDecoderFactory == nil {
				d.logger.Debug("decoding XML extension object body via the untyped path (no XMLDecoderFactory configured)")
				result = &ExtensionObject{TypeID: typeID, Encoding: encoding, XML: xml}
				return nil
			}
			value, ok := func() (Encodable, bool) {
				if d.opts.TypeLibrary == nil {
					return nil, false
				}
				return d.opts.TypeLibrary.TypeFromBinaryEncodingID(typeID)
			}()
			if !ok {
				return newEncodingError("TypeId", "unregistered structured extension object type for XML body", nil)
			}
			xmlDec, xerr := d.opts.XMLDecoderFactory(d.ctx, xml)
			if xerr != nil {
				return newEncodingError("Body", "constructing XML decoder", xerr)
			}
			if err := xmlDec.DecodeInto(value); err != nil {
				return err
			}
			result = &ExtensionObject{TypeID: typeID, Encoding: encoding, XML: xml, Body: value}
		}
		return nil
	})
	if err != nil || !present {
		return nil, err
	}
	return result, nil
}

// --- DataValue (spec §3.3) --------------------------------------------------

func (d *Decoder) ReadDataValue(name *string) (*DataValue, error) {
	var v DataValue
	present, err := d.withField(name, func() error {
		if err := d.enter(); err != nil {
			return err
		}
		defer d.exit()
		if d.doc.valueType() != jsoniter.ObjectValue {
			return newEncodingError(fieldLabel(name), "expected object for DataValue", nil)
		}
		valueField := "Value"
		val, err := d.ReadVariant(&valueField)
		if err != nil {
			return err
		}
		v.Value = val

		statusField := "Status"
		status, err := d.ReadStatusCode(&statusField)
		if err != nil {
			return err
		}
		v.Status = status

		srcTSField := "SourceTimestamp"
		if v.SourceTimestamp, err = d.ReadDateTime(&srcTSField); err != nil {
			return err
		}
		srcPSField := "SourcePicoseconds"
		if v.SourcePicoseconds, err = d.ReadUInt16(&srcPSField); err != nil {
			return err
		}
		srvTSField := "ServerTimestamp"
		if v.ServerTimestamp, err = d.ReadDateTime(&srvTSField); err != nil {
			return err
		}
		srvPSField := "ServerPicoseconds"
		if v.ServerPicoseconds, err = d.ReadUInt16(&srvPSField); err != nil {
			return err
		}
		return nil
	})
	if err != nil || !present {
		return nil, err
	}
	return &v, nil
}

// --- DiagnosticInfo (spec §3.3) ---------------------------------------------

func (d *Decoder) ReadDiagnosticInfo(name *string) (*DiagnosticInfo, error) {
	v := &DiagnosticInfo{}
	v.SymbolicID, v.NamespaceURI, v.Locale, v.LocalizedText = defaultDiagnosticIndices()
	present, err := d.withField(name, func() error {
		if err := d.enter(); err != nil {
			return err
		}
		defer d.exit()
		if d.doc.valueType() != jsoniter.ObjectValue {
			return newEncodingError(fieldLabel(name), "expected object for DiagnosticInfo", nil)
		}
		if ok, err := d.readOptionalInt32("SymbolicId", &v.SymbolicID); err != nil {
			return err
		} else if !ok {
			v.SymbolicID = diagnosticInfoAbsent
		}
		if ok, err := d.readOptionalInt32("NamespaceUri", &v.NamespaceURI); err != nil {
			return err
		} else if !ok {
			v.NamespaceURI = diagnosticInfoAbsent
		}
		if ok, err := d.readOptionalInt32("Locale", &v.Locale); err != nil {
			return err
		} else if !ok {
			v.Locale = diagnosticInfoAbsent
		}
		if ok, err := d.readOptionalInt32("LocalizedText", &v.LocalizedText); err != nil {
			return err
		} else if !ok {
			v.LocalizedText = diagnosticInfoAbsent
		}

		addlField := "AdditionalInfo"
		addl, err := d.ReadString(&addlField)
		if err != nil {
			return err
		}
		if addl != nil {
			v.AdditionalInfo = *addl
			v.HasAdditionalInfo = true
		}

		innerStatusField := "InnerStatusCode"
		if ok, err := d.fieldPresent(innerStatusField); err != nil {
			return err
		} else if ok {
			status, err := d.ReadStatusCode(&innerStatusField)
			if err != nil {
				return err
			}
			v.InnerStatusCode = status
			v.HasInnerStatusCode = true
		}

		innerDiagField := "InnerDiagnosticInfo"
		inner, err := d.ReadDiagnosticInfo(&innerDiagField)
		if err != nil {
			return err
		}
		v.InnerDiagnosticInfo = inner
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	return v, nil
}

func (d *Decoder) readOptionalInt32(field string, out *int32) (bool, error) {
	present, err := d.withField(&field, func() error {
		if d.doc.valueType() != jsoniter.NumberValue {
			return newEncodingError(field, "expected number", nil)
		}
		*out = d.doc.top().ToInt32()
		return nil
	})
	return present, err
}

// fieldPresent reports whether field exists and is non-null on the
// current top object, without consuming it otherwise.
func (d *Decoder) fieldPresent(field string) (bool, error) {
	if !d.doc.pushField(field) {
		return false, nil
	}
	defer d.doc.popField()
	return !d.doc.isNull(), nil
}

// --- Enumerations (spec §4.2.9) --------------------------------------------

// ReadEnumValue reads an enumeration's raw i32 value. Per spec §4.2.9 and
// §9, the non-reversible "Name_Value" string form is intentionally not
// parsed here; round-trip is only guaranteed in reversible form.
func (d *Decoder) ReadEnumValue(name *string) (int32, error) {
	return d.ReadInt32(name)
}

// --- Encodable / response root (spec §4.2, §6.2) ---------------------------

// ReadEncodable invokes value's own DecodeOpcuaJSON hook against this
// Decoder, positioned at the named field's object (or the current top when
// name is nil).
func (d *Decoder) ReadEncodable(name *string, value Encodable) (bool, error) {
	return d.withField(name, func() error {
		if err := d.enter(); err != nil {
			return err
		}
		defer d.exit()
		if d.doc.valueType() != jsoniter.ObjectValue {
			return newEncodingError(fieldLabel(name), "expected object", nil)
		}
		return value.DecodeOpcuaJSON(d)
	})
}

// ReadResponse is the single top-level entry point (spec §6.2): it invokes
// root's decode hook against the implicit root object.
func (d *Decoder) ReadResponse(root Encodable) error {
	if d.closed {
		return errClosed
	}
	if d.doc.valueType() != jsoniter.ObjectValue {
		return newEncodingError("", "expected a JSON object at the document root", nil)
	}
	return root.DecodeOpcuaJSON(d)
}

// PushNamespace/PopNamespace exist only for interface compatibility with
// other OPC UA encodings (spec §6.2); unused here.
func (d *Decoder) PushNamespace(uri string) {}
func (d *Decoder) PopNamespace()            {}

// Close disposes the decoder: frees the parsed document and, unless the
// Provider was told to keep it open, closes the input stream (spec
// §3.4/§5).
func (d *Decoder) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.doc = nil
	if d.closer != nil {
		return d.closer.Close()
	}
	return nil
}
