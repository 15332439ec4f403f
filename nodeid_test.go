// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeIDRoundTripAllIDTypes(t *testing.T) {
	guid := uuid.New()
	tests := []struct {
		name string
		node *NodeID
		json string
	}{
		{
			name: "numeric default namespace",
			node: NewNumericNodeID(0, 2253),
			json: `{"Id":2253}`,
		},
		{
			name: "string",
			node: NewStringNodeID(1, "MyObject"),
			json: `{"IdType":1,"Id":"MyObject","Namespace":1}`,
		},
		{
			name: "guid",
			node: &NodeID{IDType: IdTypeGuid, Namespace: 3, GUID: guid},
			json: `{"IdType":2,"Id":"` + guid.String() + `","Namespace":3}`,
		},
		{
			name: "opaque",
			node: &NodeID{IDType: IdTypeOpaque, Namespace: 4, Opaque: ByteString{1, 2, 3}},
			json: `{"IdType":3,"Id":"AQID","Namespace":4}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProvider(nil)
			got := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
				name := "Node"
				return e.WriteNodeID(&name, tt.node)
			})
			assert.JSONEq(t, `{"Node":`+tt.json+`}`, got)

			var decoded *NodeID
			decodeFromString(t, p, DefaultDecoderOptions(), got, func(d *Decoder) error {
				name := "Node"
				var err error
				decoded, err = d.ReadNodeID(&name)
				return err
			})
			require.NotNil(t, decoded)
			assert.Equal(t, tt.node, decoded)
		})
	}
}

func TestNodeIDNilElision(t *testing.T) {
	p := NewProvider(nil)
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "Node"
		return e.WriteNodeID(&name, nil)
	})
	assert.JSONEq(t, `{}`, json)

	opts := DefaultEncoderOptions()
	opts.Reversible = false
	nonRevJSON := encodeToString(t, p, opts, func(e *Encoder) error {
		name := "Node"
		return e.WriteNodeID(&name, nil)
	})
	assert.JSONEq(t, `{"Node":null}`, nonRevJSON)
}

func TestReadNodeIDInvalidIDType(t *testing.T) {
	p := NewProvider(nil)
	dec, err := p.NewBufferDecoder([]byte(`{"Node":{"IdType":9,"Id":1,"Namespace":0}}`), DefaultDecoderOptions())
	require.NoError(t, err)
	derr := dec.ReadResponse(&fnEncodable{decode: func(d *Decoder) error {
		name := "Node"
		_, err := d.ReadNodeID(&name)
		return err
	}})
	require.Error(t, derr)
	assert.True(t, IsEncodingError(derr))
}

func TestExpandedNodeIDReversible(t *testing.T) {
	p := NewProvider(nil)
	v := &ExpandedNodeID{
		NodeID:      NewStringNodeID(2, "Demo.Static.Scalar.UInt32"),
		ServerIndex: 7,
	}
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "Node"
		return e.WriteExpandedNodeID(&name, v)
	})
	assert.JSONEq(t, `{"Node":{"IdType":1,"Id":"Demo.Static.Scalar.UInt32","Namespace":2,"ServerUri":7}}`, json)

	var got *ExpandedNodeID
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "Node"
		var err error
		got, err = d.ReadExpandedNodeID(&name)
		return err
	})
	require.NotNil(t, got)
	assert.Equal(t, v.NodeID, got.NodeID)
	assert.Equal(t, v.ServerIndex, got.ServerIndex)
}

// TestExpandedNodeIDReversibleNamespaceZero exercises the reversible-form
// round-trip when the namespace index is the default (0), which the
// encoder elides entirely (writeExpandedNamespace → WriteUInt16 default
// elision) and the decoder must therefore reconstruct from an absent
// Namespace property, not skip assigning the result (spec §8.1 invariant
// 1; the common case, since most well-known NodeIds live in namespace 0).
func TestExpandedNodeIDReversibleNamespaceZero(t *testing.T) {
	p := NewProvider(nil)
	v := &ExpandedNodeID{NodeID: NewNumericNodeID(0, 2253)}
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "Node"
		return e.WriteExpandedNodeID(&name, v)
	})
	assert.JSONEq(t, `{"Node":{"Id":2253}}`, json)

	var got *ExpandedNodeID
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "Node"
		var err error
		got, err = d.ReadExpandedNodeID(&name)
		return err
	})
	require.NotNil(t, got)
	assert.Equal(t, v.NodeID, got.NodeID)
	assert.Equal(t, v.ServerIndex, got.ServerIndex)
}

// TestExpandedNodeIDNonReversibleNamespaceIndexQuirk exercises the spec §9
// open-question behavior: when the namespace index is > 1 in non-reversible
// form, NamespaceIndex is written alongside the resolved Namespace URI.
func TestExpandedNodeIDNonReversibleNamespaceIndexQuirk(t *testing.T) {
	ctx := NewDefaultContext()
	ctx.Namespaces = append(ctx.Namespaces, "http://example.com/NsA/", "http://example.com/NsB/")
	p := NewProvider(ctx)
	opts := DefaultEncoderOptions()
	opts.Reversible = false

	v := &ExpandedNodeID{NodeID: NewNumericNodeID(2, 100)}
	json := encodeToString(t, p, opts, func(e *Encoder) error {
		name := "Node"
		return e.WriteExpandedNodeID(&name, v)
	})
	assert.Contains(t, json, `"Namespace":"http://example.com/NsB/"`)
	assert.Contains(t, json, `"NamespaceIndex":2`)

	// Index == 1 must NOT trigger the double-write quirk.
	v1 := &ExpandedNodeID{NodeID: NewNumericNodeID(1, 100)}
	json1 := encodeToString(t, p, opts, func(e *Encoder) error {
		name := "Node"
		return e.WriteExpandedNodeID(&name, v1)
	})
	assert.NotContains(t, json1, "NamespaceIndex")
}

func TestExpandedNodeIDResolvesServerURI(t *testing.T) {
	ctx := NewDefaultContext()
	ctx.Servers = append(ctx.Servers, "http://example.com/OtherServer/")
	p := NewProvider(ctx)
	opts := DefaultEncoderOptions()
	opts.Reversible = false

	v := &ExpandedNodeID{NodeID: NewNumericNodeID(0, 1), ServerIndex: 1}
	json := encodeToString(t, p, opts, func(e *Encoder) error {
		name := "Node"
		return e.WriteExpandedNodeID(&name, v)
	})
	assert.Contains(t, json, `"ServerUri":"http://example.com/OtherServer/"`)
}

func TestParseGUID(t *testing.T) {
	id := uuid.New()
	parsed, err := ParseGUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseGUID("not-a-guid")
	assert.Error(t, err)
}
