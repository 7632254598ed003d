package combine

import (
	"os"
	"path/filepath"
	"strings"

	"codeflat/pkg/minify"

	"go.uber.org/zap"
)

// ProcessSingleFile reads, classifies and minifies one file and returns its
// formatted block. It returns "" when the file is skipped for any reason.
func ProcessSingleFile(filePath string, cfg ProcessConfig, logger *zap.Logger) string {
	tag, ok := minify.ClassifyPath(filePath, cfg.Mode)
	if !ok {
		logger.Debug("Skipping file with unmapped extension", zap.String("filePath", filePath))
		return ""
	}

	if cfg.MaxFileSizeKB > 0 {
		info, err := os.Stat(filePath)
		if err != nil {
			logger.Warn("Failed to stat file", zap.String("filePath", filePath), zap.Error(err))
			return ""
		}
		if info.Size() > int64(cfg.MaxFileSizeKB)*1024 {
			logger.Debug("Skipping file due to size limit",
				zap.String("filePath", filePath),
				zap.Int64("sizeBytes", info.Size()),
				zap.Int("maxSizeKB", cfg.MaxFileSizeKB))
			return ""
		}
	}

	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		logger.Warn("Failed to read file", zap.String("filePath", filePath), zap.Error(err))
		return ""
	}
	if !isTextContent(fileBytes) {
		logger.Debug("Skipping binary or non-UTF-8 file", zap.String("filePath", filePath))
		return ""
	}

	text := strings.TrimPrefix(string(fileBytes), byteOrderMark)
	return HeaderPrefix + relativePath(cfg.Root, filePath) + "\n" + minify.Minify(tag, text)
}

// relativePath returns filePath relative to root with forward slashes,
// falling back to the absolute path.
func relativePath(root, filePath string) string {
	rel, err := filepath.Rel(root, filePath)
	if err != nil {
		rel = filePath
	}
	return filepath.ToSlash(rel)
}
