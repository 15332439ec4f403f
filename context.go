// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import "fmt"

// EncodingContext is the environment shared by an Encoder and a Decoder for
// the duration of a codec session: length limits and the namespace/server
// URI tables used to resolve indices in non-reversible form (spec §4.3).
type EncodingContext interface {
	MaxStringLength() uint32
	MaxByteStringLength() uint32
	MaxArrayLength() uint32

	// NamespaceURI returns the URI registered at index, and whether the
	// index is populated. Index 0 is always the OPC UA base namespace.
	NamespaceURI(index uint16) (string, bool)
	// NamespaceIndex is the inverse of NamespaceURI, used by a decoder that
	// receives a URI in place of a namespace index.
	NamespaceIndex(uri string) (uint16, bool)

	// ServerURI returns the URI registered at index, and whether the index
	// is populated. Index 0 is always the local server.
	ServerURI(index uint32) (string, bool)
	ServerIndex(uri string) (uint32, bool)
}

// DefaultContext is a mutable, in-memory EncodingContext: empty namespace
// and server tables, every limit disabled (0), matching spec §4.3's
// "default implementation provides empty tables and all limits set to
// zero". Modeled on the teacher's Config struct (config.go) plus its
// Validate()/contains() idiom.
type DefaultContext struct {
	StringLimit     uint32
	ByteStringLimit uint32
	ArrayLimit      uint32

	Namespaces []string
	Servers    []string
}

// NewDefaultContext returns a DefaultContext with the base namespace and
// local server already populated at index 0, mirroring the teacher's
// createDefaultConfig default-value pattern.
func NewDefaultContext() *DefaultContext {
	return &DefaultContext{
		Namespaces: []string{"http://opcfoundation.org/UA/"},
		Servers:    []string{""},
	}
}

func (c *DefaultContext) MaxStringLength() uint32     { return c.StringLimit }
func (c *DefaultContext) MaxByteStringLength() uint32 { return c.ByteStringLimit }
func (c *DefaultContext) MaxArrayLength() uint32      { return c.ArrayLimit }

func (c *DefaultContext) NamespaceURI(index uint16) (string, bool) {
	if int(index) >= len(c.Namespaces) {
		return "", false
	}
	return c.Namespaces[index], true
}

func (c *DefaultContext) NamespaceIndex(uri string) (uint16, bool) {
	for i, u := range c.Namespaces {
		if u == uri {
			return uint16(i), true
		}
	}
	return 0, false
}

func (c *DefaultContext) ServerURI(index uint32) (string, bool) {
	if int(index) >= len(c.Servers) {
		return "", false
	}
	return c.Servers[index], true
}

func (c *DefaultContext) ServerIndex(uri string) (uint32, bool) {
	for i, u := range c.Servers {
		if u == uri {
			return uint32(i), true
		}
	}
	return 0, false
}

// Validate mirrors the teacher's Config.Validate: a cheap sanity pass a
// Provider can run before handing the context to an Encoder/Decoder.
func (c *DefaultContext) Validate() error {
	if len(c.Namespaces) == 0 {
		return fmt.Errorf("opcuajson: namespace table must contain at least the base namespace at index 0")
	}
	if len(c.Servers) == 0 {
		return fmt.Errorf("opcuajson: server table must contain at least the local server at index 0")
	}
	return nil
}
