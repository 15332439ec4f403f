// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

import (
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// jsonWriter is the streaming UTF-8 JSON emitter spec §1 treats as an
// external collaborator. It wraps a jsoniter.Stream — the same JSON
// tokenizer the teacher's own dependency graph already pulls in via
// gopcua's indirect json-iterator/go requirement — and adds the
// comma/nesting bookkeeping jsoniter itself leaves to the caller.
type jsonWriter struct {
	stream *jsoniter.Stream
	marks  []bool // per open object/array: has an item already been written
}

func newJSONWriter(w io.Writer, indented bool) *jsonWriter {
	cfg := jsoniter.Config{}
	if indented {
		cfg.IndentionStep = 2
	}
	api := cfg.Froze()
	return &jsonWriter{stream: api.NewStream(api, w, 4096)}
}

func (w *jsonWriter) push()             { w.marks = append(w.marks, false) }
func (w *jsonWriter) pop()              { w.marks = w.marks[:len(w.marks)-1] }
func (w *jsonWriter) markWritten() bool { return len(w.marks) > 0 && w.marks[len(w.marks)-1] }
func (w *jsonWriter) setWritten() {
	if n := len(w.marks); n > 0 {
		w.marks[n-1] = true
	}
}

// beginObject/endObject and beginArray/endArray never insert a comma
// themselves: the caller must have already called field() (for a named
// property) or element() (for an array item) before opening a nested
// container, exactly as it must before writing a nested scalar.
func (w *jsonWriter) beginObject() {
	w.stream.WriteObjectStart()
	w.push()
}

func (w *jsonWriter) endObject() {
	w.stream.WriteObjectEnd()
	w.pop()
}

func (w *jsonWriter) beginArray() {
	w.stream.WriteArrayStart()
	w.push()
}

func (w *jsonWriter) endArray() {
	w.stream.WriteArrayEnd()
	w.pop()
}

// field must be called immediately before writing a named property's
// value (including when that value is itself an object or array).
func (w *jsonWriter) field(name string) {
	if w.markWritten() {
		w.stream.WriteMore()
	}
	w.setWritten()
	w.stream.WriteObjectField(name)
}

// element must be called immediately before writing each array element,
// including the first.
func (w *jsonWriter) element() {
	if w.markWritten() {
		w.stream.WriteMore()
	}
	w.setWritten()
}

func (w *jsonWriter) writeNil()            { w.stream.WriteNil() }
func (w *jsonWriter) writeBool(v bool)     { w.stream.WriteBool(v) }
func (w *jsonWriter) writeInt32(v int32)   { w.stream.WriteInt32(v) }
func (w *jsonWriter) writeUint32(v uint32) { w.stream.WriteUint32(v) }
func (w *jsonWriter) writeFloat32(v float32) { w.stream.WriteFloat32(v) }
func (w *jsonWriter) writeFloat64(v float64) { w.stream.WriteFloat64(v) }
func (w *jsonWriter) writeString(v string)   { w.stream.WriteString(v) }

// writeInt64String / writeUint64String implement the "64-bit integers are
// emitted as JSON strings" rule (spec §4.1.2) by handing jsoniter a decimal
// string rather than a number token.
func (w *jsonWriter) writeInt64String(v int64) {
	w.stream.WriteString(strconv.FormatInt(v, 10))
}

func (w *jsonWriter) writeUint64String(v uint64) {
	w.stream.WriteString(strconv.FormatUint(v, 10))
}

func (w *jsonWriter) flush() error {
	return w.stream.Flush()
}

func (w *jsonWriter) err() error {
	return w.stream.Error
}

// jsonDocument is the random-access JSON document reader spec §1 treats as
// an external collaborator: the whole input is parsed up front into a
// jsoniter.Any tree, and a navigation stack of Any values lets the decoder
// look up named children regardless of source field order (spec §4.2.1).
type jsonDocument struct {
	stack []jsoniter.Any
}

func parseJSONDocument(data []byte) (*jsonDocument, error) {
	any := jsoniter.Get(data)
	if any.ValueType() == jsoniter.InvalidValue {
		return nil, any.LastError()
	}
	return &jsonDocument{stack: []jsoniter.Any{any}}, nil
}

func (d *jsonDocument) top() jsoniter.Any { return d.stack[len(d.stack)-1] }

func (d *jsonDocument) push(v jsoniter.Any) { d.stack = append(d.stack, v) }

func (d *jsonDocument) pop() { d.stack = d.stack[:len(d.stack)-1] }

// pushField looks up name on the current top element and pushes it,
// pushing even an explicit JSON null so popField always has a matching
// element to discard (spec §4.2: "the pop happens on all exit paths").
// ok is false only when the property is entirely absent or the current
// top element is not a JSON object.
func (d *jsonDocument) pushField(name string) (ok bool) {
	top := d.top()
	if top.ValueType() != jsoniter.ObjectValue {
		return false
	}
	child := top.Get(name)
	if child.ValueType() == jsoniter.InvalidValue {
		return false
	}
	d.push(child)
	return true
}

func (d *jsonDocument) popField() { d.pop() }

// pushIndex pushes the element at i on the current top array element; the
// decoder's array readers always call this with i < the array's own Size(),
// so it never legitimately fails, but still reports ok defensively.
func (d *jsonDocument) pushIndex(i int) (ok bool) {
	top := d.top()
	if top.ValueType() != jsoniter.ArrayValue {
		return false
	}
	child := top.Get(i)
	if child.ValueType() == jsoniter.InvalidValue {
		return false
	}
	d.push(child)
	return true
}

func (d *jsonDocument) popIndex() { d.pop() }

func (d *jsonDocument) isNull() bool {
	return d.top().ValueType() == jsoniter.NilValue
}

func (d *jsonDocument) size() int {
	return d.top().Size()
}

func (d *jsonDocument) valueType() jsoniter.ValueType {
	return d.top().ValueType()
}
