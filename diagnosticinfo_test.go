// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticInfoAllAbsentElidesEverything(t *testing.T) {
	p := NewProvider(nil)
	v := &DiagnosticInfo{}
	v.SymbolicID, v.NamespaceURI, v.Locale, v.LocalizedText = defaultDiagnosticIndices()
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "DI"
		return e.WriteDiagnosticInfo(&name, v)
	})
	assert.JSONEq(t, `{"DI":{}}`, json)

	var got *DiagnosticInfo
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "DI"
		var err error
		got, err = d.ReadDiagnosticInfo(&name)
		return err
	})
	require.NotNil(t, got)
	assert.Equal(t, int32(diagnosticInfoAbsent), got.SymbolicID)
	assert.Equal(t, int32(diagnosticInfoAbsent), got.NamespaceURI)
	assert.Equal(t, int32(diagnosticInfoAbsent), got.Locale)
	assert.Equal(t, int32(diagnosticInfoAbsent), got.LocalizedText)
	assert.False(t, got.HasAdditionalInfo)
	assert.False(t, got.HasInnerStatusCode)
	assert.Nil(t, got.InnerDiagnosticInfo)
}

func TestDiagnosticInfoRoundTripWithChain(t *testing.T) {
	p := NewProvider(nil)
	v := &DiagnosticInfo{
		SymbolicID:        1,
		NamespaceURI:      2,
		Locale:            3,
		LocalizedText:     4,
		AdditionalInfo:    "extra context",
		HasAdditionalInfo: true,
		InnerStatusCode:    StatusBadTimeout,
		HasInnerStatusCode: true,
		InnerDiagnosticInfo: &DiagnosticInfo{
			SymbolicID:   10,
			NamespaceURI: diagnosticInfoAbsent,
			Locale:       diagnosticInfoAbsent,
			LocalizedText: diagnosticInfoAbsent,
		},
	}
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "DI"
		return e.WriteDiagnosticInfo(&name, v)
	})

	var got *DiagnosticInfo
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "DI"
		var err error
		got, err = d.ReadDiagnosticInfo(&name)
		return err
	})
	require.NotNil(t, got)
	assert.Equal(t, v, got)
}

func TestDiagnosticInfoNilElision(t *testing.T) {
	p := NewProvider(nil)
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "DI"
		return e.WriteDiagnosticInfo(&name, nil)
	})
	assert.JSONEq(t, `{}`, json)

	var got *DiagnosticInfo
	decodeFromString(t, p, DefaultDecoderOptions(), `{}`, func(d *Decoder) error {
		name := "DI"
		var err error
		got, err = d.ReadDiagnosticInfo(&name)
		return err
	})
	assert.Nil(t, got)
}
