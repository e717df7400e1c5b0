package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"videofix/internal/config"
	"videofix/internal/util"
)

func newConfigCommand(cctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(cctx))
	configCmd.AddCommand(newConfigPathCommand(cctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := util.ExpandHome(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if overwrite && util.FileExists(target) {
				if err := os.Remove(target); err != nil {
					return fmt.Errorf("remove existing config: %w", err)
				}
			}

			if err := config.WriteSample(target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the targets to match your library, then run 'videofix check'.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Validate and print the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			contents, err := os.ReadFile(cctx.configPath)
			if err != nil {
				return fmt.Errorf("read config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", cctx.configPath)
			fmt.Fprint(out, string(contents))
			return nil
		},
	}
}

func newConfigPathCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cctx.requestedConfigPath()
			if path == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = defaultPath
			} else {
				expanded, err := util.ExpandHome(path)
				if err != nil {
					return err
				}
				path = expanded
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
