package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"firstelem/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigExport(cmd, opts, "json")
		},
	})

	var exportAs string
	export := &cobra.Command{
		Use:   "export",
		Short: "Print the effective configuration as json, yaml or toml",
		Example: `  firstelem config export --as yaml > .firstelem/config.yaml
  firstelem config export --as toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigExport(cmd, opts, exportAs)
		},
	}
	export.Flags().StringVar(&exportAs, "as", "json", "Encoding (json, yaml, toml)")
	cmd.AddCommand(export)

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to .firstelem/config.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	return cmd
}

func runConfigExport(cmd *cobra.Command, opts *rootOptions, as string) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	data, err := config.Encode(cfg, as)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	workDir, err := getWorkDir()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	target := filepath.Join(workDir, config.DirName, "config.json")
	if _, err := os.Stat(target); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", target)
	}

	path, err := config.DefaultConfig().Save(workDir)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
