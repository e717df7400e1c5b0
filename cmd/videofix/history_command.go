package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"videofix/internal/history"
)

func newHistoryCommand(cctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Scan history utilities",
	}

	historyCmd.AddCommand(newHistoryListCommand(cctx))
	historyCmd.AddCommand(newHistoryClearCommand(cctx))

	return historyCmd
}

func (c *commandContext) withHistory(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("scan history is disabled in the configuration")
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	return fn(store)
}

func newHistoryListCommand(cctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent scans, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withHistory(func(store *history.Store) error {
				entries, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No scans recorded yet")
					return nil
				}

				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{
						e.CreatedAt.Local().Format("2006-01-02 15:04"),
						e.Target,
						e.Path,
						yesNo(e.Validation.IsValid()),
						yesNo(e.Remediated),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"When", "Target", "File", "Compliant", "Fixed"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of scans to show")
	return cmd
}

func newHistoryClearCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded scans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withHistory(func(store *history.Store) error {
				deleted, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d scan(s)\n", deleted)
				return nil
			})
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
