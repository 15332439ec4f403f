// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeIsFieldOrderIndependent verifies that permuting the order of
// top-level JSON properties never changes the decoded result, since the
// decoder holds the whole document and looks fields up by name rather than
// walking them in stream order.
func TestDecodeIsFieldOrderIndependent(t *testing.T) {
	p := NewProvider(nil)
	documents := []string{
		`{"A":1,"B":"two","C":3.5}`,
		`{"C":3.5,"A":1,"B":"two"}`,
		`{"B":"two","C":3.5,"A":1}`,
	}

	type result struct {
		a int32
		b string
		c float64
	}
	var results []result

	for _, doc := range documents {
		var r result
		decodeFromString(t, p, DefaultDecoderOptions(), doc, func(d *Decoder) error {
			nameA, nameB, nameC := "A", "B", "C"
			a, err := d.ReadInt32(&nameA)
			if err != nil {
				return err
			}
			b, err := d.ReadString(&nameB)
			if err != nil {
				return err
			}
			c, err := d.ReadDouble(&nameC)
			if err != nil {
				return err
			}
			r.a = a
			if b != nil {
				r.b = *b
			}
			r.c = c
			return nil
		})
		results = append(results, r)
	}

	require.Len(t, results, 3)
	for _, r := range results[1:] {
		assert.Equal(t, results[0], r)
	}
}
