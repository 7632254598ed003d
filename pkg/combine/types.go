package combine

import (
	"fmt"

	"codeflat/pkg/minify"
)

// FileTask is a single file scheduled for processing.
type FileTask struct {
	Path  string // Absolute path of the file.
	Index int    // Position in traversal order; fixes the output slot.
}

// TraversalError reports a directory that could not be read during the walk.
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Path, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}

// ProcessConfig tunes the worker pool.
type ProcessConfig struct {
	Root          string      // Absolute root used to compute relative headers.
	Workers       int         // Number of workers; <= 0 means runtime.NumCPU().
	Mode          minify.Mode // Classification policy for unmapped extensions.
	MaxFileSizeKB int         // Files larger than this are skipped; 0 disables the limit.
}

// Constants
const (
	HeaderPrefix = "File: " // Prefix of the first line of every output block.
	sniffSize    = 512      // Bytes inspected when deciding whether content is binary.

	byteOrderMark = "\ufeff" // Stripped from the start of file content.
)
