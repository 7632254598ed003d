// Package minify classifies source files by extension and strips their
// comments and redundant whitespace.
package minify

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Tag identifies the comment syntax applied to a file.
type Tag string

// Supported language tags.
const (
	JavaScript Tag = "javascript"
	TypeScript Tag = "typescript"
	CSS        Tag = "css"
	HTML       Tag = "html"
	JSON       Tag = "json"
	Python     Tag = "python"
	Java       Tag = "java"
	C          Tag = "c"
	CPP        Tag = "cpp"
	PHP        Tag = "php"
	Svelte     Tag = "svelte"
	Vue        Tag = "vue"
	Unknown    Tag = "unknown"
)

// Mode controls what happens to extensions missing from ExtensionToTag.
type Mode int

const (
	// ModePermissive classifies unmapped extensions as Unknown.
	ModePermissive Mode = iota
	// ModeStrict rejects unmapped extensions so the file is skipped.
	ModeStrict
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	default:
		return "permissive"
	}
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "permissive":
		return ModePermissive, nil
	case "strict":
		return ModeStrict, nil
	}
	return ModePermissive, fmt.Errorf("unknown classification mode %q", s)
}

// ExtensionToTag maps lowercased file extensions (without dot) to tags.
var ExtensionToTag = map[string]Tag{
	"js": JavaScript, "jsx": JavaScript,
	"ts": TypeScript, "tsx": TypeScript,
	"css":  CSS,
	"html": HTML,
	"json": JSON,
	"py":   Python,
	"java": Java,
	"c":    C,
	"cpp":  CPP,
	"php":  PHP,
}

// Classify returns the tag for a file extension. The boolean is false when
// the extension is unmapped and mode is ModeStrict.
func Classify(ext string, mode Mode) (Tag, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	switch ext {
	case "svelte":
		return Svelte, true
	case "vue":
		return Vue, true
	}

	if tag, ok := ExtensionToTag[ext]; ok {
		return tag, true
	}
	if mode == ModeStrict {
		return "", false
	}
	return Unknown, true
}

// ClassifyPath classifies a file by the extension of its path.
func ClassifyPath(path string, mode Mode) (Tag, bool) {
	return Classify(filepath.Ext(path), mode)
}
