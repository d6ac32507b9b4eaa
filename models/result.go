// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result is the outcome of one endpoint call. Exactly one of Data or Text is
// meaningful, selected by Kind.
type Result struct {
	Kind ResultKind

	// Data holds raw image bytes for BinaryImage results.
	Data []byte

	// Text holds the generated string for Text results.
	Text string
}

// ContentType returns the MIME type the result should be served with.
func (r Result) ContentType() string {
	if r.Kind == Text {
		return "text/plain; charset=utf-8"
	}
	return "image/png"
}

// Extension returns the file extension used when the result is saved.
func (r Result) Extension() string {
	if r.Kind == Text {
		return ".txt"
	}
	return ".png"
}

// Bytes returns the payload regardless of kind.
func (r Result) Bytes() []byte {
	if r.Kind == Text {
		return []byte(r.Text)
	}
	return r.Data
}
