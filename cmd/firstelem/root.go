package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"firstelem/internal/config"
	apperrors "firstelem/internal/errors"
	"firstelem/internal/slogutil"
	"firstelem/internal/version"
)

// rootOptions holds the persistent flag values
type rootOptions struct {
	configPath string
	verbosity  int
	quiet      bool
	format     string
	style      string
	noHeader   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "firstelem",
		Short: "Read an array from standard input and print its first element",
		Long: `firstelem prints a banner, asks for an array length and that many integers,
then prints the first element. The lookup is a single indexed read, so it costs
the same whatever the length of the array.

Examples:
  firstelem
  printf '3\n7 2 9\n' | firstelem --no-header
  firstelem --style plain
  echo '1 42' | firstelem --format json`,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFirstElement(cmd, opts)
		},
	}
	cmd.SetVersionTemplate("firstelem version {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: .firstelem/config.{json,yaml,toml})")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all logs")
	flags.StringVar(&opts.format, "format", "", "Output format (human, json)")
	flags.StringVar(&opts.style, "style", "", "Banner style (emoji, plain)")
	flags.BoolVar(&opts.noHeader, "no-header", false, "Do not print the banner")

	cmd.AddCommand(newVerifyCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// execute runs the CLI and returns the process exit status.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	reportError(stderr, err)
	return apperrors.ExitCodeOf(err)
}

// reportError writes a one-line diagnostic followed by any suggested fixes.
func reportError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)

	fixes := apperrors.GetSuggestedFixes(apperrors.CodeOf(err))
	for _, fix := range fixes {
		switch {
		case fix.Command != "":
			_, _ = fmt.Fprintf(w, "  hint: %s ($ %s)\n", fix.Description, fix.Command)
		case fix.Key != "":
			_, _ = fmt.Fprintf(w, "  hint: %s (%s)\n", fix.Description, fix.Key)
		default:
			_, _ = fmt.Fprintf(w, "  hint: %s\n", fix.Description)
		}
	}
}

// getWorkDir returns the directory config lookups are relative to.
func getWorkDir() (string, error) {
	return os.Getwd()
}

// loadConfig resolves config and rejects invalid values.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfig reads config from file and environment, then applies flags.
// The result is not validated, so config show can print a broken config.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	workDir, err := getWorkDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(workDir, opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("style") {
		cfg.Header.Style = opts.style
	}
	if flags.Changed("no-header") {
		cfg.Header.Enabled = !opts.noHeader
	}
	return cfg, nil
}

// newLogger writes to the command's stderr at the level chosen by flags and config.
func newLogger(cmd *cobra.Command, cfg *config.Config, opts *rootOptions) *slog.Logger {
	level := slogutil.ResolveLevel(cfg.Logging.Level, opts.verbosity, opts.quiet)
	return slogutil.NewLogger(cmd.ErrOrStderr(), level)
}
