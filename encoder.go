// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import (
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// Encoder emits a value tree as OPC UA JSON (spec §4.1). One write_<T>
// method exists per built-in type plus one per array-of-T, following
// exactly the public contract spec §4.1 describes; the struct itself plays
// the role the teacher's client.go session handle plays for a connection:
// stateful, single-caller, disposed exactly once.
type Encoder struct {
	w         *jsonWriter
	ctx       EncodingContext
	opts      EncoderOptions
	sink      io.Writer
	closeSink bool
	depth     int
	closed    bool
	logger    *zap.Logger
}

func newEncoder(sink io.Writer, ctx EncodingContext, opts EncoderOptions, closeSink bool) *Encoder {
	return &Encoder{
		w:         newJSONWriter(sink, opts.Indented),
		ctx:       ctx,
		opts:      opts,
		sink:      sink,
		closeSink: closeSink,
		logger:    opts.logger(),
	}
}

func (e *Encoder) enter() error {
	if e.depth >= MaxNestingDepth {
		return newLimitsExceededError("", fmt.Sprintf("nesting depth exceeds %d", MaxNestingDepth))
	}
	e.depth++
	return nil
}

func (e *Encoder) exit() { e.depth-- }

func (e *Encoder) checkArrayLimit(n int) error {
	if max := e.ctx.MaxArrayLength(); max > 0 && uint32(n) > max {
		return newLimitsExceededError("", fmt.Sprintf("array length %d exceeds limit %d", n, max))
	}
	return nil
}

func (e *Encoder) checkStringLimit(s string) error {
	if max := e.ctx.MaxStringLength(); max > 0 && uint32(len(s)) > max {
		return newLimitsExceededError("", fmt.Sprintf("string byte length %d exceeds limit %d", len(s), max))
	}
	return nil
}

func (e *Encoder) checkByteStringLimit(b []byte) error {
	if max := e.ctx.MaxByteStringLength(); max > 0 && uint32(len(b)) > max {
		return newLimitsExceededError("", fmt.Sprintf("byte string length %d exceeds limit %d", len(b), max))
	}
	return nil
}

// --- generic value-type scalar helper -------------------------------------
//
// Covers every built-in type that is NOT in the nil-reference exception
// list (spec §4.1.1): elision in reversible form is driven by Go zero
// value equality, and non-reversible form always emits the actual value
// (there is no "absent" state for a plain value type).

func (e *Encoder) writeScalarField(name *string, isDefault bool, write func()) error {
	if name != nil {
		if e.opts.Reversible && isDefault {
			return nil
		}
		e.w.field(*name)
	}
	write()
	return e.w.err()
}

func (e *Encoder) WriteBoolean(name *string, v bool) error {
	return e.writeScalarField(name, !v, func() { e.w.writeBool(v) })
}

func (e *Encoder) WriteSByte(name *string, v int8) error {
	return e.writeScalarField(name, v == 0, func() { e.w.writeInt32(int32(v)) })
}

func (e *Encoder) WriteByte(name *string, v uint8) error {
	return e.writeScalarField(name, v == 0, func() { e.w.writeUint32(uint32(v)) })
}

func (e *Encoder) WriteInt16(name *string, v int16) error {
	return e.writeScalarField(name, v == 0, func() { e.w.writeInt32(int32(v)) })
}

func (e *Encoder) WriteUInt16(name *string, v uint16) error {
	return e.writeScalarField(name, v == 0, func() { e.w.writeUint32(uint32(v)) })
}

func (e *Encoder) WriteInt32(name *string, v int32) error {
	return e.writeScalarField(name, v == 0, func() { e.w.writeInt32(v) })
}

func (e *Encoder) WriteUInt32(name *string, v uint32) error {
	return e.writeScalarField(name, v == 0, func() { e.w.writeUint32(v) })
}

// WriteInt64/WriteUInt64 implement the "64-bit integers are JSON strings"
// rule (spec §4.1.2) unconditionally, in both reversible and non-reversible
// form — the spec never carves out a different non-reversible shape for
// these.
func (e *Encoder) WriteInt64(name *string, v int64) error {
	return e.writeScalarField(name, v == 0, func() { e.w.writeInt64String(v) })
}

func (e *Encoder) WriteUInt64(name *string, v uint64) error {
	return e.writeScalarField(name, v == 0, func() { e.w.writeUint64String(v) })
}

func (e *Encoder) WriteFloat(name *string, v float32) error {
	return e.writeScalarField(name, v == 0, func() { e.w.writeFloat32(v) })
}

func (e *Encoder) WriteDouble(name *string, v float64) error {
	return e.writeScalarField(name, v == 0, func() { e.w.writeFloat64(v) })
}

func (e *Encoder) WriteGuid(name *string, v Guid) error {
	return e.writeScalarField(name, v == guidZero, func() { e.w.writeString(v.String()) })
}

// WriteDateTime writes an RFC 3339 timestamp with 100ns (7 fractional
// digit) resolution (spec §3.1/§4.1.2: "UTC instant with 100-ns
// resolution"). DateTime is not in the nil-reference exception list, so
// the zero time.Time is the ordinary default value for elision purposes.
func (e *Encoder) WriteDateTime(name *string, v DateTime) error {
	return e.writeScalarField(name, v.IsZero(), func() {
		e.w.writeString(v.UTC().Format("2006-01-02T15:04:05.0000000Z"))
	})
}

// --- nil-reference exception group (spec §4.1.1 exceptions) ---------------
//
// String, ByteString, XmlElement, and every composite/array type below are
// elided (reversible) or written as JSON null (non-reversible) only when
// the Go reference itself is nil — never because the referenced value
// happens to equal some default.

func (e *Encoder) writeNilableField(name *string, isNil bool, write func() error) error {
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
	return write()
}

// WriteString writes the OPC UA String type. v is a *string so that a nil
// reference (the null String) is distinguishable from a non-nil empty
// string, per the spec §4.1.1 exception rule.
func (e *Encoder) WriteString(name *string, v *string) error {
	return e.writeNilableField(name, v == nil, func() error {
		if err := e.checkStringLimit(*v); err != nil {
			return err
		}
		e.w.writeString(*v)
		return e.w.err()
	})
}

// WriteByteString writes the OPC UA ByteString type, base64-encoded. A nil
// slice is the null ByteString; a non-nil, zero-length slice encodes as
// `""`.
func (e *Encoder) WriteByteString(name *string, v ByteString) error {
	return e.writeNilableField(name, v == nil, func() error {
		if err := e.checkByteStringLimit(v); err != nil {
			return err
		}
		e.w.writeString(base64.StdEncoding.EncodeToString(v))
		return e.w.err()
	})
}

// WriteXmlElement writes the OPC UA XmlElement type. v is a *XmlElement so
// nil is distinguishable from the empty fragment, mirroring WriteString.
func (e *Encoder) WriteXmlElement(name *string, v *XmlElement) error {
	return e.writeNilableField(name, v == nil, func() error {
		s := string(*v)
		if err := e.checkStringLimit(s); err != nil {
			return err
		}
		e.w.writeString(s)
		return e.w.err()
	})
}

// --- StatusCode (spec §4.1.5) ----------------------------------------------

// WriteStatusCode applies the special StatusCode rule: reversible is a
// plain u32; non-reversible is an object {Code,Symbol} unless the code is
// Good, in which case a *named* property is elided exactly as if it were a
// default value (an exception the spec calls out explicitly even though
// StatusCode is a value type, not a nil-reference type).
func (e *Encoder) WriteStatusCode(name *string, v StatusCode) error {
	if name != nil && v.IsGood() {
		return nil
	}
	if e.opts.Reversible {
		return e.writeScalarField(name, false, func() { e.w.writeUint32(uint32(v)) })
	}
	if name != nil {
		e.w.field(*name)
	}
	e.w.beginObject()
	e.w.field("Code")
	e.w.writeUint32(uint32(v))
	e.w.field("Symbol")
	e.w.writeString(v.Symbol())
	e.w.endObject()
	return e.w.err()
}

// --- QualifiedName / LocalizedText (spec §3.2/§4.1.6) ----------------------

func (e *Encoder) WriteQualifiedName(name *string, v *QualifiedName) error {
	return e.writeNilableField(name, v == nil, func() error {
		if err := e.enter(); err != nil {
			return err
		}
		defer e.exit()
		e.w.beginObject()
		nameField := "Name"
		if err := e.WriteString(&nameField, &v.Name); err != nil {
			return err
		}
		if err := e.writeNamespaceIndexField("NamespaceIndex", v.NamespaceIndex); err != nil {
			return err
		}
		e.w.endObject()
		return e.w.err()
	})
}

// WriteLocalizedText applies spec §4.1.6: reversible is {Locale,Text}; non
// reversible is the bare Text string.
func (e *Encoder) WriteLocalizedText(name *string, v *LocalizedText) error {
	if !e.opts.Reversible {
		return e.writeNilableField(name, v == nil, func() error {
			if err := e.checkStringLimit(v.Text); err != nil {
				return err
			}
			e.w.writeString(v.Text)
			return e.w.err()
		})
	}
	return e.writeNilableField(name, v == nil, func() error {
		if err := e.enter(); err != nil {
			return err
		}
		defer e.exit()
		e.w.beginObject()
		locale, text := v.Locale, v.Text
		localeField, textField := "Locale", "Text"
		if err := e.WriteString(&localeField, &locale); err != nil {
			return err
		}
		if err := e.WriteString(&textField, &text); err != nil {
			return err
		}
		e.w.endObject()
		return e.w.err()
	})
}

// --- NodeId / ExpandedNodeId (spec §3.2/§4.1.3/§4.1.4) ---------------------

// writeNamespaceIndexField writes a bare namespace-index-shaped field
// (shared by NodeID.Namespace and QualifiedName.NamespaceIndex), resolving
// it to the registered URI in non-reversible form per spec §4.1.3. The
// QualifiedName use is a supplemented extension by analogy: the base spec
// only states this rule for NodeId.
func (e *Encoder) writeNamespaceIndexField(field string, index uint16) error {
	if !e.opts.Reversible && index > 0 {
		if uri, ok := e.ctx.NamespaceURI(index); ok {
			f := field
			s := uri
			return e.WriteString(&f, &s)
		}
	}
	f := field
	return e.WriteUInt16(&f, index)
}

func (e *Encoder) writeNodeIDFields(v *NodeID) error {
	idTypeField := "IdType"
	if err := e.WriteInt32(&idTypeField, int32(v.IDType)); err != nil {
		return err
	}
	idField := "Id"
	e.w.field(idField)
	switch v.IDType {
	case IdTypeNumeric:
		e.w.writeUint32(v.Numeric)
	case IdTypeString:
		if err := e.checkStringLimit(v.Text); err != nil {
			return err
		}
		e.w.writeString(v.Text)
	case IdTypeGuid:
		e.w.writeString(v.GUID.String())
	case IdTypeOpaque:
		if err := e.checkByteStringLimit(v.Opaque); err != nil {
			return err
		}
		e.w.writeString(base64.StdEncoding.EncodeToString(v.Opaque))
	default:
		return newEncodingError("IdType", fmt.Sprintf("unsupported IdType %d", v.IDType), nil)
	}
	if err := e.w.err(); err != nil {
		return err
	}
	return e.writeNamespaceIndexField("Namespace", v.Namespace)
}

func (e *Encoder) WriteNodeID(name *string, v *NodeID) error {
	return e.writeNilableField(name, v == nil, func() error {
		if err := e.enter(); err != nil {
			return err
		}
		defer e.exit()
		e.w.beginObject()
		if err := e.writeNodeIDFields(v); err != nil {
			return err
		}
		e.w.endObject()
		return e.w.err()
	})
}

// WriteExpandedNodeID implements spec §4.1.4, including the non-reversible
// NamespaceIndex double-write quirk (spec §9): when the node's namespace
// index is > 1 in non-reversible form, NamespaceIndex is written in
// addition to the URI-resolved Namespace, for wire compatibility with the
// reference implementation. This is flagged, not "fixed" (DESIGN.md).
func (e *Encoder) WriteExpandedNodeID(name *string, v *ExpandedNodeID) error {
	return e.writeNilableField(name, v == nil, func() error {
		if err := e.enter(); err != nil {
			return err
		}
		defer e.exit()
		e.w.beginObject()
		node := v.NodeID
		if node == nil {
			node = &NodeID{}
		}
		idTypeField := "IdType"
		if err := e.WriteInt32(&idTypeField, int32(node.IDType)); err != nil {
			return err
		}
		idField := "Id"
		e.w.field(idField)
		switch node.IDType {
		case IdTypeNumeric:
			e.w.writeUint32(node.Numeric)
		case IdTypeString:
			e.w.writeString(node.Text)
		case IdTypeGuid:
			e.w.writeString(node.GUID.String())
		case IdTypeOpaque:
			e.w.writeString(base64.StdEncoding.EncodeToString(node.Opaque))
		default:
			return newEncodingError("IdType", fmt.Sprintf("unsupported IdType %d", node.IDType), nil)
		}
		if err := e.w.err(); err != nil {
			return err
		}

		if err := e.writeExpandedNamespace(v, node.Namespace); err != nil {
			return err
		}

		if e.opts.Reversible {
			serverField := "ServerUri"
			if err := e.WriteUInt32(&serverField, v.ServerIndex); err != nil {
				return err
			}
		} else if v.ServerURI != "" {
			serverField := "ServerUri"
			s := v.ServerURI
			if err := e.WriteString(&serverField, &s); err != nil {
				return err
			}
		} else if uri, ok := e.ctx.ServerURI(v.ServerIndex); ok && v.ServerIndex > 0 {
			serverField := "ServerUri"
			if err := e.WriteString(&serverField, &uri); err != nil {
				return err
			}
		}

		e.w.endObject()
		return e.w.err()
	})
}

func (e *Encoder) writeExpandedNamespace(v *ExpandedNodeID, index uint16) error {
	if e.opts.Reversible {
		nsField := "Namespace"
		return e.WriteUInt16(&nsField, index)
	}
	uri := v.NamespaceURI
	if uri == "" {
		if resolved, ok := e.ctx.NamespaceURI(index); ok {
			uri = resolved
		}
	}
	if uri != "" {
		nsField := "Namespace"
		if err := e.WriteString(&nsField, &uri); err != nil {
			return err
		}
	}
	if index > 1 {
		e.logger.Debug("writing non-reversible NamespaceIndex alongside Namespace URI for ExpandedNodeId (spec open question)")
		nsIdxField := "NamespaceIndex"
		if err := e.WriteUInt16(&nsIdxField, index); err != nil {
			return err
		}
	}
	return nil
}

// --- Variant (spec §3.3/§4.1.7) --------------------------------------------

// WriteVariant applies the Variant-specific elision rule (spec §4.1.1): the
// whole property is elided only when the variant carries the null payload
// (Type==Null && Value==nil), which is neither a plain nil-pointer check
// nor a default-scalar-value check.
func (e *Encoder) WriteVariant(name *string, v *Variant) error {
	isNullPayload := v.IsNull()
	if isNullPayload {
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

	if !e.opts.Reversible {
		if name != nil {
			e.w.field(*name)
		}
		return e.writeVariantBody(v)
	}

	if name != nil {
		e.w.field(*name)
	}
	if err := e.enter(); err != nil {
		return err
	}
	defer e.exit()
	e.w.beginObject()
	typeField := "Type"
	if err := e.WriteInt32(&typeField, int32(v.Type)); err != nil {
		return err
	}
	e.w.field("Body")
	if err := e.writeVariantBody(v); err != nil {
		return err
	}
	if v.Dimensions != nil {
		dimsField := "Dimensions"
		if err := e.WriteInt32Array(&dimsField, v.Dimensions); err != nil {
			return err
		}
	}
	e.w.endObject()
	return e.w.err()
}

// writeVariantBody writes the bare Body payload: a scalar, a flat JSON
// array for a 1-D array, or nested JSON arrays of shape v.Dimensions for a
// k-D array (written by writeDimensionedVariantBody).
func (e *Encoder) writeVariantBody(v *Variant) error {
	if v.Dimensions != nil {
		return e.writeDimensionedVariantBody(v)
	}
	return e.writeVariantScalarOrFlatArray(v)
}

func (e *Encoder) writeVariantScalarOrFlatArray(v *Variant) error {
	switch val := v.Value.(type) {
	case bool:
		return e.WriteBoolean(nil, val)
	case []bool:
		return e.WriteBooleanArray(nil, val)
	case int8:
		return e.WriteSByte(nil, val)
	case []int8:
		return e.WriteSByteArray(nil, val)
	case uint8:
		return e.WriteByte(nil, val)
	case []uint8:
		return e.WriteByteArray(nil, val)
	case int16:
		return e.WriteInt16(nil, val)
	case []int16:
		return e.WriteInt16Array(nil, val)
	case uint16:
		return e.WriteUInt16(nil, val)
	case []uint16:
		return e.WriteUInt16Array(nil, val)
	case int32:
		return e.WriteInt32(nil, val)
	case []int32:
		return e.WriteInt32Array(nil, val)
	case uint32:
		return e.WriteUInt32(nil, val)
	case []uint32:
		return e.WriteUInt32Array(nil, val)
	case int64:
		return e.WriteInt64(nil, val)
	case []int64:
		return e.WriteInt64Array(nil, val)
	case uint64:
		return e.WriteUInt64(nil, val)
	case []uint64:
		return e.WriteUInt64Array(nil, val)
	case float32:
		return e.WriteFloat(nil, val)
	case []float32:
		return e.WriteFloatArray(nil, val)
	case float64:
		return e.WriteDouble(nil, val)
	case []float64:
		return e.WriteDoubleArray(nil, val)
	case string:
		return e.WriteString(nil, &val)
	case []string:
		return e.WriteStringArray(nil, val)
	case DateTime:
		return e.WriteDateTime(nil, val)
	case []DateTime:
		return e.WriteDateTimeArray(nil, val)
	case Guid:
		return e.WriteGuid(nil, val)
	case []Guid:
		return e.WriteGuidArray(nil, val)
	case ByteString:
		return e.WriteByteString(nil, val)
	case []ByteString:
		return e.WriteByteStringArray(nil, val)
	case XmlElement:
		return e.WriteXmlElement(nil, &val)
	case []XmlElement:
		return e.WriteXmlElementArray(nil, val)
	case *NodeID:
		return e.WriteNodeID(nil, val)
	case []*NodeID:
		return e.WriteNodeIDArray(nil, val)
	case *ExpandedNodeID:
		return e.WriteExpandedNodeID(nil, val)
	case []*ExpandedNodeID:
		return e.WriteExpandedNodeIDArray(nil, val)
	case StatusCode:
		return e.WriteStatusCode(nil, val)
	case []StatusCode:
		return e.WriteStatusCodeArray(nil, val)
	case *QualifiedName:
		return e.WriteQualifiedName(nil, val)
	case []*QualifiedName:
		return e.WriteQualifiedNameArray(nil, val)
	case *LocalizedText:
		return e.WriteLocalizedText(nil, val)
	case []*LocalizedText:
		return e.WriteLocalizedTextArray(nil, val)
	case *ExtensionObject:
		return e.WriteExtensionObject(nil, val)
	case []*ExtensionObject:
		return e.WriteExtensionObjectArray(nil, val)
	case *DataValue:
		return e.WriteDataValue(nil, val)
	case []*DataValue:
		return e.WriteDataValueArray(nil, val)
	case *Variant:
		return e.WriteVariant(nil, val)
	case []*Variant:
		return e.WriteVariantArray(nil, val)
	case *DiagnosticInfo:
		return e.WriteDiagnosticInfo(nil, val)
	case []*DiagnosticInfo:
		return e.WriteDiagnosticInfoArray(nil, val)
	case nil:
		e.w.writeNil()
		return e.w.err()
	default:
		return newEncodingError("Body", fmt.Sprintf("unsupported variant payload type %T", val), nil)
	}
}

// writeDimensionedVariantBody writes v.Value (always a flat []T matching
// isSliceValue) into nested JSON arrays of shape v.Dimensions, row-major
// with the last dimension varying fastest (spec §4.1.7).
func (e *Encoder) writeDimensionedVariantBody(v *Variant) error {
	total, err := sliceLen(v.Value)
	if err != nil {
		return err
	}
	if err := validateDimensions(v.Dimensions, total); err != nil {
		return err
	}
	if err := e.checkArrayLimit(total); err != nil {
		return err
	}
	idx := 0
	return e.writeDimensionLevel(v.Dimensions, 0, v.Value, &idx)
}

func (e *Encoder) writeDimensionLevel(dims []int32, level int, flat interface{}, idx *int) error {
	if err := e.enter(); err != nil {
		return err
	}
	defer e.exit()
	e.w.beginArray()
	n := int(dims[level])
	for i := 0; i < n; i++ {
		e.w.element()
		if level == len(dims)-1 {
			if err := e.writeFlatElement(flat, *idx); err != nil {
				return err
			}
			*idx++
		} else {
			if err := e.writeDimensionLevel(dims, level+1, flat, idx); err != nil {
				return err
			}
		}
	}
	e.w.endArray()
	return e.w.err()
}

// --- ExtensionObject (spec §3.3/§4.1.8) ------------------------------------

func (e *Encoder) WriteExtensionObject(name *string, v *ExtensionObject) error {
	return e.writeNilableField(name, v == nil, func() error {
		if !e.opts.Reversible {
			return e.writeExtensionObjectBody(v)
		}
		if err := e.enter(); err != nil {
			return err
		}
		defer e.exit()
		e.w.beginObject()
		typeIDField := "TypeId"
		if err := e.WriteExpandedNodeID(&typeIDField, v.TypeID); err != nil {
			return err
		}
		encodingField := "Encoding"
		if err := e.WriteInt32(&encodingField, int32(v.Encoding)); err != nil {
			return err
		}
		e.w.field("Body")
		if err := e.writeExtensionObjectBody(v); err != nil {
			return err
		}
		e.w.endObject()
		return e.w.err()
	})
}

// writeExtensionObjectBody emits the bare body per spec §4.1.8, choosing
// Body, Bytes or XML by v.Encoding. The tag itself is written by
// WriteExtensionObject as the Encoding property in reversible form (elided
// when it is 0, structured).
// A request to encode a structured body whose type cannot be identified
// fails with EncodingError, exactly as spec §4.1.8 states.
func (e *Encoder) writeExtensionObjectBody(v *ExtensionObject) error {
	switch v.Encoding {
	case EncodingTypeStructured:
		if v.Body == nil {
			return newEncodingError("Body", "structured ExtensionObject has no Body value", nil)
		}
		if v.TypeID == nil {
			return newEncodingError("TypeId", "extension object type id is not known", nil)
		}
		return e.writeEncodableBody(v.Body)
	case EncodingTypeByteString:
		return e.WriteByteString(nil, v.Bytes)
	case EncodingTypeXML:
		return e.WriteXmlElement(nil, &v.XML)
	default:
		return newEncodingError("Encoding", fmt.Sprintf("unsupported encoding tag %d", v.Encoding), nil)
	}
}

// --- DataValue (spec §3.3) --------------------------------------------------

func (e *Encoder) WriteDataValue(name *string, v *DataValue) error {
	return e.writeNilableField(name, v == nil, func() error {
		if err := e.enter(); err != nil {
			return err
		}
		defer e.exit()
		e.w.beginObject()
		valueField := "Value"
		if err := e.WriteVariant(&valueField, v.Value); err != nil {
			return err
		}
		statusField := "Status"
		if err := e.WriteStatusCode(&statusField, v.Status); err != nil {
			return err
		}
		srcTSField := "SourceTimestamp"
		if err := e.WriteDateTime(&srcTSField, v.SourceTimestamp); err != nil {
			return err
		}
		srcPSField := "SourcePicoseconds"
		if err := e.WriteUInt16(&srcPSField, v.SourcePicoseconds); err != nil {
			return err
		}
		srvTSField := "ServerTimestamp"
		if err := e.WriteDateTime(&srvTSField, v.ServerTimestamp); err != nil {
			return err
		}
		srvPSField := "ServerPicoseconds"
		if err := e.WriteUInt16(&srvPSField, v.ServerPicoseconds); err != nil {
			return err
		}
		e.w.endObject()
		return e.w.err()
	})
}

// --- DiagnosticInfo (spec §3.3) ---------------------------------------------

func (e *Encoder) WriteDiagnosticInfo(name *string, v *DiagnosticInfo) error {
	return e.writeNilableField(name, v == nil, func() error {
		if err := e.enter(); err != nil {
			return err
		}
		defer e.exit()
		e.w.beginObject()
		if v.SymbolicID != diagnosticInfoAbsent {
			f := "SymbolicId"
			if err := e.writeScalarField(&f, false, func() { e.w.writeInt32(v.SymbolicID) }); err != nil {
				return err
			}
		}
		if v.NamespaceURI != diagnosticInfoAbsent {
			f := "NamespaceUri"
			if err := e.writeScalarField(&f, false, func() { e.w.writeInt32(v.NamespaceURI) }); err != nil {
				return err
			}
		}
		if v.Locale != diagnosticInfoAbsent {
			f := "Locale"
			if err := e.writeScalarField(&f, false, func() { e.w.writeInt32(v.Locale) }); err != nil {
				return err
			}
		}
		if v.LocalizedText != diagnosticInfoAbsent {
			f := "LocalizedText"
			if err := e.writeScalarField(&f, false, func() { e.w.writeInt32(v.LocalizedText) }); err != nil {
				return err
			}
		}
		if v.HasAdditionalInfo {
			f := "AdditionalInfo"
			s := v.AdditionalInfo
			if err := e.WriteString(&f, &s); err != nil {
				return err
			}
		}
		if v.HasInnerStatusCode {
			f := "InnerStatusCode"
			if err := e.WriteStatusCode(&f, v.InnerStatusCode); err != nil {
				return err
			}
		}
		if v.InnerDiagnosticInfo != nil {
			f := "InnerDiagnosticInfo"
			if err := e.WriteDiagnosticInfo(&f, v.InnerDiagnosticInfo); err != nil {
				return err
			}
		}
		e.w.endObject()
		return e.w.err()
	})
}

// --- Enumerations (spec §4.1.10) -------------------------------------------

// WriteEnum writes an Enumeration value: reversible is the bare i32,
// non-reversible is "Name_Value" (spec §4.1.10). v may be nil only when
// name == nil is never the case for enums (they are plain values, not
// references) — callers pass a non-nil Enumeration implementation.
func (e *Encoder) WriteEnum(name *string, v Enumeration) error {
	if e.opts.Reversible {
		return e.WriteInt32(name, v.EnumValue())
	}
	s := fmt.Sprintf("%s_%d", v.EnumSymbol(), v.EnumValue())
	return e.WriteString(name, &s)
}

// --- Encodable / request root (spec §4.1, §6.2) ----------------------------

// WriteEncodable writes value's structured JSON object under an optional
// named field, invoking value's own EncodeOpcuaJSON hook against this
// Encoder (spec §9 "recursive self-invocation").
func (e *Encoder) WriteEncodable(name *string, value Encodable) error {
	if value == nil {
		return e.writeNilableField(name, true, func() error { return nil })
	}
	if name != nil {
		e.w.field(*name)
	}
	return e.writeEncodableBody(value)
}

func (e *Encoder) writeEncodableBody(value Encodable) error {
	if err := e.enter(); err != nil {
		return err
	}
	defer e.exit()
	e.w.beginObject()
	if err := value.EncodeOpcuaJSON(e); err != nil {
		return err
	}
	e.w.endObject()
	return e.w.err()
}

// WriteRequest is the single top-level entry point (spec §6.2): it opens
// the implicit root object, invokes root's encode hook, and closes it.
func (e *Encoder) WriteRequest(root Encodable) error {
	if e.closed {
		return errClosed
	}
	return e.writeEncodableBody(root)
}

// PushNamespace/PopNamespace exist only for interface compatibility with
// other OPC UA encodings (spec §6.2); this codec resolves namespaces
// directly against the EncodingContext and never needs a namespace stack.
func (e *Encoder) PushNamespace(uri string) {}
func (e *Encoder) PopNamespace()            {}

// Flush flushes any buffered output to the underlying sink. It is
// idempotent on success (spec §4.1.11).
func (e *Encoder) Flush() error {
	return e.w.flush()
}

// Close disposes the encoder: flushes, then closes the sink unless the
// Provider was told to keep it open (spec §3.4/§5).
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.Flush(); err != nil {
		return err
	}
	if e.closeSink {
		if c, ok := e.sink.(io.Closer); ok {
			return c.Close()
		}
	}
	return nil
}
