package combine

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Walk lazily yields the absolute path of every non-directory entry under
// root, depth first, in directory-listing order. Entries whose absolute path
// contains any of the exclude substrings are skipped, directories together
// with their subtree.
//
// A directory that cannot be read ends the sequence with a *TraversalError.
func Walk(root string, exclude []string, logger *zap.Logger) iter.Seq2[string, error] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(yield func(string, error) bool) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			logger.Debug("Failed to resolve walk root", zap.String("path", root), zap.Error(err))
			yield("", &TraversalError{Path: root, Err: err})
			return
		}
		logger.Debug("Starting traversal", zap.String("root", absRoot), zap.Strings("exclude", exclude))
		walkDir(absRoot, exclude, yield, logger)
	}
}

// walkDir reports whether the walk should continue.
func walkDir(dir string, exclude []string, yield func(string, error) bool, logger *zap.Logger) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Debug("Failed to read directory during traversal", zap.String("directory", dir), zap.Error(err))
		yield("", &TraversalError{Path: dir, Err: err})
		return false
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if s, ok := matchExclusion(path, exclude); ok {
			if entry.IsDir() {
				logger.Debug("Skipping ignored directory during traversal", zap.String("path", path), zap.String("exclusion", s))
			} else {
				logger.Debug("Skipping ignored file during traversal", zap.String("path", path), zap.String("exclusion", s))
			}
			continue
		}
		if entry.IsDir() {
			if !walkDir(path, exclude, yield, logger) {
				return false
			}
			continue
		}
		if !yield(path, nil) {
			return false
		}
	}
	return true
}

// matchExclusion returns the first exclusion substring contained in path.
func matchExclusion(path string, exclude []string) (string, bool) {
	for _, s := range exclude {
		if s != "" && strings.Contains(path, s) {
			return s, true
		}
	}
	return "", false
}

// CollectTasks drains a walk into indexed tasks, stopping at the first error.
func CollectTasks(seq iter.Seq2[string, error]) ([]FileTask, error) {
	var tasks []FileTask
	for path, err := range seq {
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, FileTask{Path: path, Index: len(tasks)})
	}
	return tasks, nil
}
