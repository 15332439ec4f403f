// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultContext(t *testing.T) {
	ctx := NewDefaultContext()
	require.NoError(t, ctx.Validate())

	uri, ok := ctx.NamespaceURI(0)
	assert.True(t, ok)
	assert.Equal(t, "http://opcfoundation.org/UA/", uri)

	_, ok = ctx.NamespaceURI(5)
	assert.False(t, ok)

	srv, ok := ctx.ServerURI(0)
	assert.True(t, ok)
	assert.Equal(t, "", srv)
}

func TestDefaultContextValidate(t *testing.T) {
	tests := []struct {
		name    string
		ctx     *DefaultContext
		wantErr string
	}{
		{
			name: "empty namespace table",
			ctx:  &DefaultContext{Servers: []string{""}},
			wantErr: "namespace table must contain at least the base namespace at index 0",
		},
		{
			name: "empty server table",
			ctx:  &DefaultContext{Namespaces: []string{"http://opcfoundation.org/UA/"}},
			wantErr: "server table must contain at least the local server at index 0",
		},
		{
			name: "valid",
			ctx:  NewDefaultContext(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ctx.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultContextNamespaceRoundTrip(t *testing.T) {
	ctx := NewDefaultContext()
	ctx.Namespaces = append(ctx.Namespaces, "http://example.com/Demo/")

	idx, ok := ctx.NamespaceIndex("http://example.com/Demo/")
	require.True(t, ok)
	assert.Equal(t, uint16(1), idx)

	_, ok = ctx.NamespaceIndex("http://unknown.example/")
	assert.False(t, ok)
}

func TestDefaultContextServerRoundTrip(t *testing.T) {
	ctx := NewDefaultContext()
	ctx.Servers = append(ctx.Servers, "http://example.com/Server/")

	idx, ok := ctx.ServerIndex("http://example.com/Server/")
	require.True(t, ok)
	assert.Equal(t, uint32(1), idx)

	_, ok = ctx.ServerIndex("http://unknown.example/")
	assert.False(t, ok)
}
