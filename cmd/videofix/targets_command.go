package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTargetsCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the configured format targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(cfg.Targets))
			for _, t := range cfg.Targets {
				name := t.Name
				if name == cfg.DefaultTarget {
					name += " (default)"
				}
				rows = append(rows, []string{
					name,
					t.Spec.Container.String(),
					t.Spec.Video.String(),
					t.Spec.Audio.String(),
					t.Spec.PixFmt.String(),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Target", "Container", "Video", "Audio", "Pixel Format"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
