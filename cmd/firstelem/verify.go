package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"firstelem/internal/scenario"
)

func newVerifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <scenarios.toml>",
		Short: "Run declared input scenarios and check their first elements",
		Long: `Run every [[scenario]] in a TOML file through the same reader and lookup
as the interactive program, and compare against expect or expect_error.

Examples:
  firstelem verify testdata/scenarios.toml
  firstelem verify --format json cases.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts, args[0])
		},
	}
}

func runVerify(cmd *cobra.Command, opts *rootOptions, path string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	logger := newLogger(cmd, cfg, opts).With("run_id", runID)

	file, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}

	runner := &scenario.Runner{MaxLength: cfg.Input.MaxLength, Logger: logger}
	report := runner.RunAll(file)
	report.RunID = runID

	logger.Info("Scenarios evaluated", "file", path, "passed", report.Passed, "failed", report.Failed)

	output, err := FormatResponse(&VerifyResponseCLI{File: path, Report: report}, OutputFormat(cfg.Output.Format))
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)

	return report.Err()
}
