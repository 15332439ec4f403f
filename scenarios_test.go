// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioS1ScalarRoundTrip exercises spec §8.2 S1: Int32(42) under
// field X, reversible, round-trips exactly.
func TestScenarioS1ScalarRoundTrip(t *testing.T) {
	p := NewProvider(nil)
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "X"
		return e.WriteInt32(&name, 42)
	})
	assert.JSONEq(t, `{"X":42}`, json)

	var got int32
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "X"
		var err error
		got, err = d.ReadInt32(&name)
		return err
	})
	assert.Equal(t, int32(42), got)
}

// TestScenarioS2DefaultElision exercises spec §8.2 S2: Int32(0) under field
// X, reversible, elides the property entirely, and decoding the missing
// field yields the zero value.
func TestScenarioS2DefaultElision(t *testing.T) {
	p := NewProvider(nil)
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "X"
		return e.WriteInt32(&name, 0)
	})
	assert.JSONEq(t, `{}`, json)

	var got int32 = -1
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "X"
		var err error
		got, err = d.ReadInt32(&name)
		return err
	})
	assert.Equal(t, int32(0), got)
}

// enumTimestampsToReturn is a fake Enumeration standing in for OPC UA's
// real TimestampsToReturn enumeration, used only by S3.
type enumTimestampsToReturn int32

const enumBoth enumTimestampsToReturn = 2

func (e enumTimestampsToReturn) EnumValue() int32  { return int32(e) }
func (e enumTimestampsToReturn) EnumSymbol() string { return "Both" }

// TestScenarioS3NonReversibleEnum exercises spec §8.2 S3: an enumeration
// with symbol Both and integer 2 emitted non-reversibly under field
// TimestampsToReturn produces "TimestampsToReturn":"Both_2".
func TestScenarioS3NonReversibleEnum(t *testing.T) {
	p := NewProvider(nil)
	opts := DefaultEncoderOptions()
	opts.Reversible = false
	json := encodeToString(t, p, opts, func(e *Encoder) error {
		name := "TimestampsToReturn"
		return e.WriteEnum(&name, enumBoth)
	})
	assert.Contains(t, json, `"TimestampsToReturn":"Both_2"`)
}

// TestScenarioS4StringNamespaceNodeID exercises spec §8.2 S4.
func TestScenarioS4StringNamespaceNodeID(t *testing.T) {
	p := NewProvider(nil)
	node := NewStringNodeID(2, "Demo.Static.Scalar.UInt32")
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "Node"
		return e.WriteNodeID(&name, node)
	})
	assert.JSONEq(t, `{"Node":{"IdType":1,"Id":"Demo.Static.Scalar.UInt32","Namespace":2}}`, json)

	var got *NodeID
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "Node"
		var err error
		got, err = d.ReadNodeID(&name)
		return err
	})
	require.NotNil(t, got)
	assert.Equal(t, node, got)
}

// TestScenarioS5MultiDimensionalVariant exercises spec §8.2 S5: a flat
// Int32 [1,2,3,4,5,6] with Dimensions=[2,3] encodes as nested [[1,2,3],
// [4,5,6]], and round-trips to the same flat layout.
func TestScenarioS5MultiDimensionalVariant(t *testing.T) {
	p := NewProvider(nil)
	v := &Variant{Type: VariantTypeInt32, Value: []int32{1, 2, 3, 4, 5, 6}, Dimensions: []int32{2, 3}}
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "V"
		return e.WriteVariant(&name, v)
	})
	assert.JSONEq(t, `{"V":{"Type":6,"Body":[[1,2,3],[4,5,6]],"Dimensions":[2,3]}}`, json)

	var got *Variant
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "V"
		var err error
		got, err = d.ReadVariant(&name)
		return err
	})
	require.NotNil(t, got)
	assert.Equal(t, VariantTypeInt32, got.Type)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, got.Value)
	assert.Equal(t, []int32{2, 3}, got.Dimensions)
}

// TestScenarioS6SixtyFourBitAsString exercises spec §8.2 S6: UInt64
// 9007199254740993 reversible encodes as a JSON string, and the decoder
// also accepts the numeric form, preserving the exact value either way.
func TestScenarioS6SixtyFourBitAsString(t *testing.T) {
	const val uint64 = 9007199254740993
	p := NewProvider(nil)
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "X"
		return e.WriteUInt64(&name, val)
	})
	assert.JSONEq(t, `{"X":"9007199254740993"}`, json)

	var got uint64
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "X"
		var err error
		got, err = d.ReadUInt64(&name)
		return err
	})
	assert.Equal(t, val, got)

	// Decoder also tolerates the raw numeric form (spec §4.2.2).
	var gotFromNumber uint64
	decodeFromString(t, p, DefaultDecoderOptions(), `{"X":9007199254740993}`, func(d *Decoder) error {
		name := "X"
		var err error
		gotFromNumber, err = d.ReadUInt64(&name)
		return err
	})
	assert.Equal(t, val, gotFromNumber)
}

// TestScenarioS7LimitExceededBeforeReading exercises spec §8.2 S7: a
// context with max_array_length=1000 must reject a Variant with
// Dimensions=[1001,1] as BadEncodingLimitsExceeded before reading any
// array contents.
func TestScenarioS7LimitExceededBeforeReading(t *testing.T) {
	ctx := NewDefaultContext()
	ctx.ArrayLimit = 1000
	p := NewProvider(ctx)

	// Body is deliberately malformed (an empty array rather than a
	// 1001x1 nested array) to prove the limit check happens strictly
	// before any element is read.
	doc := `{"V":{"Type":6,"Body":[],"Dimensions":[1001,1]}}`

	var decodeErr error
	dec, err := p.NewBufferDecoder([]byte(doc), DefaultDecoderOptions())
	require.NoError(t, err)
	decodeErr = dec.ReadResponse(&fnEncodable{decode: func(d *Decoder) error {
		name := "V"
		_, err := d.ReadVariant(&name)
		return err
	}})
	require.Error(t, decodeErr)
	assert.True(t, IsLimitsExceeded(decodeErr), "expected BadEncodingLimitsExceeded, got %v", decodeErr)
}
