package combine

import "codeflat/pkg/minify"

// Options holds the configuration of a single codeflat run.
type Options struct {
	Root          string      // Directory to scan; defaults to the current directory.
	Exclude       []string    // Literal substrings; matching paths are skipped.
	ExcludeFile   string      // Optional file with one exclusion substring per line.
	Workers       int         // Concurrent workers; <= 0 uses runtime.NumCPU().
	Mode          minify.Mode // Classification policy for unmapped extensions.
	MaxFileSizeKB int         // Larger files are skipped; 0 disables the limit.
	Tree          bool        // Prefix the output with a tree of included files.
}
