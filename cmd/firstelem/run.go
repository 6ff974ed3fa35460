package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"firstelem/internal/app"
	apperrors "firstelem/internal/errors"
)

func runFirstElement(cmd *cobra.Command, opts *rootOptions) error {
	start := time.Now()

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	logger := newLogger(cmd, cfg, opts).With("run_id", runID)

	a := &app.App{
		Config: cfg,
		Logger: logger,
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		RunID:  runID,
	}

	res, err := a.Run()
	if err != nil {
		logger.Info("Run aborted", "code", string(apperrors.CodeOf(err)))
		return err
	}

	resp := &FirstElementResponseCLI{
		RunID:  res.RunID,
		Length: res.Length,
		First:  res.First,
		Label:  a.ResultLabel(),
	}
	output, err := FormatResponse(resp, OutputFormat(cfg.Output.Format))
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)

	logger.Debug("Run completed",
		"length", res.Length,
		"duration", time.Since(start).Milliseconds(),
	)
	return nil
}
