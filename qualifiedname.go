// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

// QualifiedName is a name qualified by a namespace index (spec §3.2).
// Elision of a named QualifiedName property in reversible form is a plain
// nil-pointer check (spec §4.1.1 exception list), not a default-value
// check, so no IsNull helper is needed here.
type QualifiedName struct {
	Name           string
	NamespaceIndex uint16
}

// LocalizedText is a piece of text with an associated locale (spec §3.2).
type LocalizedText struct {
	Locale string
	Text   string
}
