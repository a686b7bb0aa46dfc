package types

// Document is a plain-text document handed to the analysis engine.
// It is produced by the text-extraction layer and treated as immutable
// by everything downstream.
type Document struct {
	// Text is the extracted plain-text content.
	Text string `json:"text"`
	// Err carries a human-readable extraction error message. When non-empty,
	// Text is unusable and the analyzer short-circuits.
	Err string `json:"error,omitempty"`
}

// NewDocument wraps successfully extracted text.
func NewDocument(text string) Document {
	return Document{Text: text}
}

// ErrorDocument wraps a failed extraction with its message.
func ErrorDocument(msg string) Document {
	return Document{Err: msg}
}

// Errored reports whether extraction failed for this document.
func (d Document) Errored() bool {
	return d.Err != ""
}
