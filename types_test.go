// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeRoundTripPreserves100nsResolution(t *testing.T) {
	p := NewProvider(nil)
	ts := time.Date(2026, 7, 29, 12, 0, 0, 123456700, time.UTC)
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "T"
		return e.WriteDateTime(&name, ts)
	})
	assert.JSONEq(t, `{"T":"2026-07-29T12:00:00.1234567Z"}`, json)

	var got DateTime
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "T"
		var err error
		got, err = d.ReadDateTime(&name)
		return err
	})
	assert.True(t, ts.Equal(got))
}

func TestDateTimeZeroValueElidesInReversibleForm(t *testing.T) {
	p := NewProvider(nil)
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "T"
		return e.WriteDateTime(&name, time.Time{})
	})
	assert.JSONEq(t, `{}`, json)
}

func TestSignedIntegerBoundaryValuesRoundTrip(t *testing.T) {
	p := NewProvider(nil)
	tests := []struct {
		name string
		v    int32
	}{
		{"min", -2147483648},
		{"max", 2147483647},
		{"negative one", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
				name := "V"
				return e.WriteInt32(&name, tt.v)
			})
			var got int32
			decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
				name := "V"
				var err error
				got, err = d.ReadInt32(&name)
				return err
			})
			assert.Equal(t, tt.v, got)
		})
	}
}

func TestFloatSpecialValuesRoundTrip(t *testing.T) {
	p := NewProvider(nil)
	tests := []float64{
		0,
		-0.5,
		1e300,
	}
	for _, v := range tests {
		json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
			name := "V"
			return e.WriteDouble(&name, v)
		})
		var got float64
		decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
			name := "V"
			var err error
			got, err = d.ReadDouble(&name)
			return err
		})
		assert.Equal(t, v, got)
	}
}

type fakeEnum struct {
	value  int32
	symbol string
}

func (f fakeEnum) EnumValue() int32  { return f.value }
func (f fakeEnum) EnumSymbol() string { return f.symbol }

func TestEnumReversibleIsPlainInteger(t *testing.T) {
	p := NewProvider(nil)
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "E"
		return e.WriteEnum(&name, fakeEnum{value: 2, symbol: "Ascending"})
	})
	assert.JSONEq(t, `{"E":2}`, json)

	var got int32
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "E"
		var err error
		got, err = d.ReadEnumValue(&name)
		return err
	})
	assert.Equal(t, int32(2), got)
}

func TestEnumNonReversibleIsNameUnderscoreValue(t *testing.T) {
	p := NewProvider(nil)
	opts := DefaultEncoderOptions()
	opts.Reversible = false
	json := encodeToString(t, p, opts, func(e *Encoder) error {
		name := "E"
		return e.WriteEnum(&name, fakeEnum{value: 2, symbol: "Ascending"})
	})
	assert.JSONEq(t, `{"E":"Ascending_2"}`, json)
}

func TestByteStringRoundTripIsBase64(t *testing.T) {
	p := NewProvider(nil)
	v := ByteString{1, 2, 3}
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "B"
		return e.WriteByteString(&name, v)
	})
	assert.JSONEq(t, `{"B":"AQID"}`, json)

	var got ByteString
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "B"
		var err error
		got, err = d.ReadByteString(&name)
		return err
	})
	require.Equal(t, v, got)
}
