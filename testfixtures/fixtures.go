// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package testfixtures provides fakes for the codec's collaborator
// interfaces (TypeLibrary, BinaryDecoder, XMLDecoder) so encoder/decoder
// tests do not need a real OPC UA type dictionary, mirroring the teacher's
// own testdata package shape.
package testfixtures

import (
	"fmt"
	"io"

	opcuajson "github.com/brightmesh-io/opcuajson"
)

// WidgetTypeID is the well-known ExpandedNodeID the fake type library
// registers Widget under.
var WidgetTypeID = &opcuajson.ExpandedNodeID{
	NodeID: opcuajson.NewNumericNodeID(1, 3000),
}

// WidgetTypeIDNamespaceZero is a second registration of Widget in namespace
// 0, the standard OPC UA namespace, which reversible-form encoding elides
// from the wire entirely. It exists so ExtensionObject tests can exercise
// the namespace-0 TypeId path instead of only ever seeing a populated
// Namespace property.
var WidgetTypeIDNamespaceZero = &opcuajson.ExpandedNodeID{
	NodeID: opcuajson.NewNumericNodeID(0, 3001),
}

// Widget is a small structured type standing in for a real OPC UA
// structured type: it implements Encodable directly, the way a generated
// service request/response type would.
type Widget struct {
	Name  string
	Count int32
}

func (w *Widget) EncodeOpcuaJSON(enc *opcuajson.Encoder) error {
	nameField := "Name"
	if err := enc.WriteString(&nameField, &w.Name); err != nil {
		return err
	}
	countField := "Count"
	return enc.WriteInt32(&countField, w.Count)
}

func (w *Widget) DecodeOpcuaJSON(dec *opcuajson.Decoder) error {
	nameField := "Name"
	name, err := dec.ReadString(&nameField)
	if err != nil {
		return err
	}
	if name != nil {
		w.Name = *name
	}
	countField := "Count"
	w.Count, err = dec.ReadInt32(&countField)
	return err
}

// TypeLibrary is a fake TypeLibrary (spec §6.3) registering exactly
// Widget, under WidgetTypeID and WidgetTypeIDNamespaceZero, enough to exercise ExtensionObject's
// structured-body path without a real OPC UA type dictionary.
type TypeLibrary struct{}

func (TypeLibrary) TypeFromBinaryEncodingID(id *opcuajson.ExpandedNodeID) (opcuajson.Encodable, bool) {
	if id == nil || id.NodeID == nil {
		return nil, false
	}
	if id.NodeID.IDType == opcuajson.IdTypeNumeric && id.NodeID.Namespace == WidgetTypeID.NodeID.Namespace &&
		id.NodeID.Numeric == WidgetTypeID.NodeID.Numeric {
		return &Widget{}, true
	}
	if id.NodeID.IDType == opcuajson.IdTypeNumeric && id.NodeID.Namespace == WidgetTypeIDNamespaceZero.NodeID.Namespace &&
		id.NodeID.Numeric == WidgetTypeIDNamespaceZero.NodeID.Numeric {
		return &Widget{}, true
	}
	return nil, false
}

func (TypeLibrary) BinaryEncodingIDFromType(value opcuajson.Encodable) (*opcuajson.ExpandedNodeID, bool) {
	if _, ok := value.(*Widget); ok {
		return WidgetTypeID, true
	}
	return nil, false
}

// binaryDecoder is a fake BinaryDecoder that parses the whole body as a
// decimal Count and sets Name to "binary", rather than reading a real OPC
// UA binary encoding, since only the collaborator boundary is under test.
type binaryDecoder struct {
	body []byte
}

func (b *binaryDecoder) DecodeInto(target opcuajson.Encodable) error {
	w, ok := target.(*Widget)
	if !ok {
		return fmt.Errorf("testfixtures: binary decoder only supports *Widget, got %T", target)
	}
	var count int32
	n, err := fmt.Sscanf(string(b.body), "%d", &count)
	if err != nil || n != 1 {
		return fmt.Errorf("testfixtures: malformed fake binary body %q", b.body)
	}
	w.Count = count
	w.Name = "binary"
	return nil
}

// BinaryDecoderFactory is a fake BinaryDecoderFactory (spec §6.3) standing
// in for GopcuaBinaryDecoderFactory in tests that exercise the
// ExtensionObject encoding-tag-1 path without a real gopcua dependency.
func BinaryDecoderFactory(source io.Reader, _ opcuajson.EncodingContext, _ bool) (opcuajson.BinaryDecoder, error) {
	body, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	return &binaryDecoder{body: body}, nil
}

// xmlDecoder is a fake XMLDecoder (spec §6.3) that decodes a Widget by
// setting its Name to the whole XML fragment, unparsed.
type xmlDecoder struct {
	xml opcuajson.XmlElement
}

func (x *xmlDecoder) DecodeInto(target opcuajson.Encodable) error {
	w, ok := target.(*Widget)
	if !ok {
		return fmt.Errorf("testfixtures: xml decoder only supports *Widget, got %T", target)
	}
	w.Name = string(x.xml)
	return nil
}

// XMLDecoderFactory is a fake XMLDecoderFactory (spec §6.3) for the typed
// ExtensionObject encoding-tag-2 path.
func XMLDecoderFactory(_ opcuajson.EncodingContext, xml opcuajson.XmlElement) (opcuajson.XMLDecoder, error) {
	return &xmlDecoder{xml: xml}, nil
}
