// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualifiedNameRoundTrip(t *testing.T) {
	p := NewProvider(nil)
	v := &QualifiedName{Name: "Temperature", NamespaceIndex: 3}
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "QN"
		return e.WriteQualifiedName(&name, v)
	})
	assert.JSONEq(t, `{"QN":{"Name":"Temperature","NamespaceIndex":3}}`, json)

	var got *QualifiedName
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "QN"
		var err error
		got, err = d.ReadQualifiedName(&name)
		return err
	})
	require.NotNil(t, got)
	assert.Equal(t, v, got)
}

func TestQualifiedNameNilElision(t *testing.T) {
	p := NewProvider(nil)
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "QN"
		return e.WriteQualifiedName(&name, nil)
	})
	assert.JSONEq(t, `{}`, json)
}

func TestLocalizedTextReversible(t *testing.T) {
	p := NewProvider(nil)
	v := &LocalizedText{Locale: "en-US", Text: "Hello"}
	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "LT"
		return e.WriteLocalizedText(&name, v)
	})
	assert.JSONEq(t, `{"LT":{"Locale":"en-US","Text":"Hello"}}`, json)

	var got *LocalizedText
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "LT"
		var err error
		got, err = d.ReadLocalizedText(&name)
		return err
	})
	require.NotNil(t, got)
	assert.Equal(t, v, got)
}

func TestLocalizedTextNonReversibleBareText(t *testing.T) {
	p := NewProvider(nil)
	opts := DefaultEncoderOptions()
	opts.Reversible = false
	v := &LocalizedText{Locale: "en-US", Text: "Hello"}
	json := encodeToString(t, p, opts, func(e *Encoder) error {
		name := "LT"
		return e.WriteLocalizedText(&name, v)
	})
	assert.JSONEq(t, `{"LT":"Hello"}`, json)

	// The decoder accepts the bare-string form too.
	var got *LocalizedText
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "LT"
		var err error
		got, err = d.ReadLocalizedText(&name)
		return err
	})
	require.NotNil(t, got)
	assert.Equal(t, "Hello", got.Text)
	assert.Equal(t, "", got.Locale)
}
