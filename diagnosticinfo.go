// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package opcuajson

// DiagnosticInfo is a recursive record of indices into a caller-owned
// string table, chained for inner causes (spec §3.3). The index fields use
// -1 as the "absent" sentinel, matching the wire representation; this
// package does not own or validate the string table itself.
type DiagnosticInfo struct {
	SymbolicID          int32
	NamespaceURI        int32
	Locale              int32
	LocalizedText       int32
	AdditionalInfo      string
	HasAdditionalInfo   bool
	InnerStatusCode     StatusCode
	HasInnerStatusCode  bool
	InnerDiagnosticInfo *DiagnosticInfo
}

const diagnosticInfoAbsent int32 = -1

func defaultDiagnosticIndices() (symbolicID, namespaceURI, locale, localizedText int32) {
	return diagnosticInfoAbsent, diagnosticInfoAbsent, diagnosticInfoAbsent, diagnosticInfoAbsent
}
