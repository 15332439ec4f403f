// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package opcuajson implements the OPC UA JSON data encoding (OPC UA Part 6,
// §5.4): a bidirectional codec between an in-memory tree of OPC UA built-in
// values and a UTF-8 JSON document, in both reversible (lossless) and
// non-reversible (human-readable) form.
//
// The package does not own a JSON tokenizer, an OPC UA type dictionary, or a
// binary/XML codec. JSON reading and writing is built directly on
// github.com/json-iterator/go. The type dictionary and the binary and XML
// decoders are consumed through small interfaces (TypeLibrary,
// BinaryDecoderFactory, XMLDecoderFactory) so that callers can plug in their
// own; GopcuaBinaryDecoderFactory is a ready-made binary decoder backed by
// github.com/gopcua/opcua.
package opcuajson // import "github.com/brightmesh-io/opcuajson"
