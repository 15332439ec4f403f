// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import (
	"bytes"
	"io"
)

// Provider is the factory described in spec §4.4: it constructs Encoders
// over a sink and Decoders over a source, all sharing one EncodingContext.
// Modeled on the teacher's factory.go (NewFactory / createDefaultConfig /
// createLogsReceiver): a small struct holding shared config, with
// constructor methods standing in for createXxxReceiver.
type Provider struct {
	Context EncodingContext
}

// NewProvider builds a Provider over ctx. A nil ctx is replaced with
// NewDefaultContext(), mirroring createDefaultConfig's "never hand back a
// half-built config" discipline.
func NewProvider(ctx EncodingContext) *Provider {
	if ctx == nil {
		ctx = NewDefaultContext()
	}
	return &Provider{Context: ctx}
}

// NewEncoder constructs an Encoder writing to sink (spec §4.4 "(a) a sink
// stream"). closeSink controls whether Close also closes sink, when sink
// implements io.Closer.
func (p *Provider) NewEncoder(sink io.Writer, opts EncoderOptions, closeSink bool) (*Encoder, error) {
	if sink == nil {
		return nil, errNilSink
	}
	return newEncoder(sink, p.Context, opts, closeSink), nil
}

// NewBufferEncoder constructs an Encoder writing into an in-memory buffer
// (spec §4.4 "(b) a byte-writer buffer"), returning the Encoder and the
// buffer it writes into. There is nothing to close on a bytes.Buffer, so
// closeSink is always false internally.
func (p *Provider) NewBufferEncoder(opts EncoderOptions) (*Encoder, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return newEncoder(buf, p.Context, opts, false), buf
}

// NewDecoder constructs a Decoder over source (spec §4.4 "(a) a source
// stream"), reading it to completion immediately (spec §3.4/§5: "construction
// of a decoder reads the entire input into an in-memory JSON document").
func (p *Provider) NewDecoder(source io.Reader, opts DecoderOptions, closeSource bool) (*Decoder, error) {
	if source == nil {
		return nil, errNilSource
	}
	data, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	closer, _ := source.(io.Closer)
	if !closeSource {
		closer = nil
	}
	return newDecoder(data, p.Context, opts, closer)
}

// NewBufferDecoder constructs a Decoder over a contiguous byte buffer
// (spec §4.4 "(b) a contiguous byte buffer").
func (p *Provider) NewBufferDecoder(data []byte, opts DecoderOptions) (*Decoder, error) {
	return newDecoder(data, p.Context, opts, nil)
}

// NewSegmentedBufferDecoder constructs a Decoder over a segmented byte
// buffer (spec §4.4 "(c) a segmented byte buffer"): the segments are
// concatenated up front since the underlying JSON document reader
// operates on one contiguous byte slice regardless of how the caller
// accumulated it.
func (p *Provider) NewSegmentedBufferDecoder(segments [][]byte, opts DecoderOptions) (*Decoder, error) {
	total := 0
	for _, s := range segments {
		total += len(s)
	}
	data := make([]byte, 0, total)
	for _, s := range segments {
		data = append(data, s...)
	}
	return newDecoder(data, p.Context, opts, nil)
}
