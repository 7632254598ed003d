package combine

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// LoadExclusions reads exclusion substrings from filePath, one per line.
// Blank lines and lines starting with '#' are skipped. A missing file yields
// no exclusions.
func LoadExclusions(filePath string, logger *zap.Logger) ([]string, error) {
	if filePath == "" {
		return nil, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", filePath))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ignore file %s: %w", filePath, err)
	}

	var out []string
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
		logger.Debug("Loaded exclusion", zap.String("filePath", filePath), zap.Int("lineNo", i+1), zap.String("exclusion", line))
	}
	return out, nil
}

// SplitExclusions splits comma-separated flag values into substrings,
// dropping empty entries.
func SplitExclusions(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
