// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import "go.uber.org/zap"

// MaxNestingDepth bounds recursive descent into Variant/ExtensionObject/
// array/DiagnosticInfo values (spec §5's "a prudent implementation
// enforces a recursion limit ... default ~100 levels suggested").
// Supplemented as an enforced constant rather than left advisory, the same
// way the teacher enforces hard-coded retry/timeout constants in client.go.
const MaxNestingDepth = 100

// EncoderOptions configures an Encoder (spec §4.4/§6.4), mirroring the
// teacher's factory.go createDefaultConfig defaults-struct shape.
type EncoderOptions struct {
	// Reversible selects the lossless wire form when true (the default) and
	// the human-readable, lossy form when false (spec §4.1.1).
	Reversible bool

	// Indented toggles pretty-printed output. Spec §4.4 places this purely
	// as a presentation toggle, not a distinct wire dialect.
	Indented bool

	// Logger receives the two Debug-level trace lines described in
	// SPEC_FULL.md's Logging section. A nil Logger is a silent no-op,
	// mirroring zap.NewNop() used throughout the teacher's own tests.
	Logger *zap.Logger
}

// DefaultEncoderOptions returns the spec-mandated defaults: reversible,
// not indented, no logger.
func DefaultEncoderOptions() EncoderOptions {
	return EncoderOptions{Reversible: true}
}

func (o EncoderOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// DecoderOptions configures a Decoder (spec §4.4/§6.4).
type DecoderOptions struct {
	// XMLDecoderFactory services the typed ExtensionObject encoding-tag-2
	// path (spec §4.2.6 step 5, case 2). Left nil, only the untyped path
	// (body kept as a raw XmlElement) succeeds.
	XMLDecoderFactory XMLDecoderFactory

	// BinaryDecoderFactory services the ExtensionObject encoding-tag-1
	// path (spec §4.2.6 step 5, case 1). binarygopcua.go supplies the
	// production implementation over github.com/gopcua/opcua; tests supply
	// a fake from the testfixtures package.
	BinaryDecoderFactory BinaryDecoderFactory

	// TypeLibrary resolves a structured type from an ExtensionObject's
	// TypeId (spec §4.2.6 step 3). Nil means every structured (tag 0) or
	// byte-string (tag 1) ExtensionObject decode fails with
	// BadEncodingError; XML-bodied (tag 2) ones still decode via the
	// untyped path.
	TypeLibrary TypeLibrary

	Logger *zap.Logger
}

// DefaultDecoderOptions returns the spec-mandated defaults: no XML
// factory, no binary factory, no type library, no logger.
func DefaultDecoderOptions() DecoderOptions {
	return DecoderOptions{}
}

func (o DecoderOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
