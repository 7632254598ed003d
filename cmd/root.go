package cmd

import (
	"context"
	"fmt"
	"os"

	"codeflat/pkg/combine"
	"codeflat/pkg/logging"
	"codeflat/pkg/minify"
	"codeflat/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// IgnoreFileEnv names the environment variable read when --ignore-file is unset.
const IgnoreFileEnv = "CODEFLAT_IGNORE_FILE"

var (
	ignoreValues  []string
	ignoreFile    string
	workers       int
	strict        bool
	maxFileSizeKB int
	printTree     bool
	verbose       bool
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "codeflat [targetDir]",
	Short: "codeflat flattens a source tree into one comment-free text stream",
	Long: `codeflat walks a directory, strips comments and collapses whitespace per
language, and prints every file as a "File: <path>" block on standard output.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := logging.Setup(verbose, version.AppName, version.Get().Version); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(args)
		if err != nil {
			return err
		}
		return combine.Run(cmd.Context(), opts, cmd.OutOrStdout(), logging.Logger)
	},
}

func init() {
	flags := RootCmd.Flags()
	flags.StringArrayVarP(&ignoreValues, "ignore", "i", nil, "Comma-separated substrings; paths containing any of them are skipped")
	flags.StringVar(&ignoreFile, "ignore-file", "", "File with one ignore substring per line (default $"+IgnoreFileEnv+")")
	flags.IntVarP(&workers, "workers", "w", 0, "Number of concurrent workers (default: number of CPUs)")
	flags.BoolVar(&strict, "strict", false, "Skip files whose extension has no known language instead of stripping them best-effort")
	flags.IntVar(&maxFileSizeKB, "max-file-size", 0, "Skip files larger than this many KB (0 disables the limit)")
	flags.BoolVar(&printTree, "tree", false, "Print a tree of the included files before their contents")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped files and progress to stderr")
}

// optionsFromFlags builds run options from the parsed flags and arguments.
func optionsFromFlags(args []string) (combine.Options, error) {
	opts := combine.Options{
		Root:          ".",
		Exclude:       combine.SplitExclusions(ignoreValues...),
		ExcludeFile:   ignoreFile,
		Workers:       workers,
		Mode:          minify.ModePermissive,
		MaxFileSizeKB: maxFileSizeKB,
		Tree:          printTree,
	}
	if len(args) == 1 {
		opts.Root = args[0]
	}
	if opts.ExcludeFile == "" {
		opts.ExcludeFile = os.Getenv(IgnoreFileEnv)
	}
	if strict {
		opts.Mode = minify.ModeStrict
	}
	if opts.MaxFileSizeKB < 0 {
		return opts, fmt.Errorf("--max-file-size must not be negative, got %d", opts.MaxFileSizeKB)
	}
	return opts, nil
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// Logger returns the logger configured for the current invocation.
func Logger() *zap.Logger {
	return logging.Logger
}
