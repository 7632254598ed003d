package combine

import (
	"bytes"
	"unicode/utf8"
)

// isTextContent reports whether data looks like UTF-8 text: no NUL byte in
// the first sniffSize bytes and valid UTF-8 throughout.
func isTextContent(data []byte) bool {
	head := data
	if len(head) > sniffSize {
		head = head[:sniffSize]
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return false
	}
	return utf8.Valid(data)
}
