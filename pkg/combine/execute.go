package combine

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Run walks opts.Root, minifies every included file and writes the assembled
// text to out. Unreadable directories abort the run; individual files that
// cannot be processed are left out silently.
func Run(ctx context.Context, opts Options, out io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	root := opts.Root
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	logger.Debug("Starting codeflat run", zap.String("directory", absRoot), zap.Stringer("mode", opts.Mode))

	exclude := append([]string(nil), opts.Exclude...)
	fromFile, err := LoadExclusions(opts.ExcludeFile, logger)
	if err != nil {
		return fmt.Errorf("failed to load ignore patterns: %w", err)
	}
	exclude = append(exclude, fromFile...)
	logger.Debug("Loaded exclusions", zap.Strings("exclude", exclude))

	tasks, err := CollectTasks(Walk(absRoot, exclude, logger))
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}
	logger.Debug("Collected files", zap.Int("fileCount", len(tasks)))

	cfg := ProcessConfig{
		Root:          absRoot,
		Workers:       opts.Workers,
		Mode:          opts.Mode,
		MaxFileSizeKB: opts.MaxFileSizeKB,
	}
	slots, err := Process(ctx, tasks, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to process files: %w", err)
	}

	text := Assemble(slots)
	if opts.Tree {
		text = Assemble([]string{GenerateTree(includedPaths(tasks, slots, absRoot)), text})
	}
	if err := Emit(out, text); err != nil {
		return err
	}

	logger.Debug("Run completed",
		zap.Int("totalFiles", len(tasks)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
