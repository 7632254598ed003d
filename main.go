package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"codeflat/cmd"
	"codeflat/pkg/logging"
	"codeflat/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	// Quiet default until the root command has parsed --verbose.
	if _, err := logging.Setup(false, version.AppName, version.Get().Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()

	logger := cmd.Logger()
	if err != nil {
		logger.Fatal("codeflat execution failed", zap.Error(err))
	}

	// Sync on a pipe or /dev/null fails with EINVAL; only flush real sinks.
	if stderrIsSyncable() {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// stderrIsSyncable reports whether the log sink is a terminal or a file
// redirect, the two cases where fsync on stderr is meaningful.
func stderrIsSyncable() bool {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return true
	}
	info, err := os.Stderr.Stat()
	return err == nil && info.Mode().IsRegular()
}
