// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDiagnosticChain builds a DiagnosticInfo with depth nested
// InnerDiagnosticInfo levels below the one it returns.
func buildDiagnosticChain(depth int) *DiagnosticInfo {
	var inner *DiagnosticInfo
	for i := 0; i < depth; i++ {
		next := &DiagnosticInfo{
			SymbolicID:    int32(i),
			NamespaceURI:  diagnosticInfoAbsent,
			Locale:        diagnosticInfoAbsent,
			LocalizedText: diagnosticInfoAbsent,
		}
		next.InnerDiagnosticInfo = inner
		inner = next
	}
	return inner
}

func TestDeeplyNestedDiagnosticInfoExceedsNestingLimit(t *testing.T) {
	p := NewProvider(nil)
	chain := buildDiagnosticChain(MaxNestingDepth + 10)

	enc, _ := p.NewBufferEncoder(DefaultEncoderOptions())
	err := enc.WriteRequest(&fnEncodable{encode: func(e *Encoder) error {
		name := "DI"
		return e.WriteDiagnosticInfo(&name, chain)
	}})
	require.Error(t, err)
	assert.True(t, IsLimitsExceeded(err))
}

func TestModeratelyNestedDiagnosticInfoRoundTrips(t *testing.T) {
	p := NewProvider(nil)
	chain := buildDiagnosticChain(5)

	json := encodeToString(t, p, DefaultEncoderOptions(), func(e *Encoder) error {
		name := "DI"
		return e.WriteDiagnosticInfo(&name, chain)
	})

	var got *DiagnosticInfo
	decodeFromString(t, p, DefaultDecoderOptions(), json, func(d *Decoder) error {
		name := "DI"
		var err error
		got, err = d.ReadDiagnosticInfo(&name)
		return err
	})
	require.NotNil(t, got)
	assert.Equal(t, chain, got)
}
