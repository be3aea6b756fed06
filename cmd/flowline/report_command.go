package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"flowline/internal/ledger"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the artifacts recorded for this derivatives tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dbPath := filepath.Join(cfg.Paths.DerivativesRoot, ledger.FileName)
			if _, err := os.Stat(dbPath); err != nil {
				if os.IsNotExist(err) {
					fmt.Fprintln(cmd.OutOrStdout(), "No artifacts recorded yet; run the pipeline first.")
					return nil
				}
				return fmt.Errorf("inspect ledger: %w", err)
			}

			store, err := ledger.Open(cfg.Paths.DerivativesRoot)
			if err != nil {
				return err
			}
			defer store.Close()

			artifacts, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(artifacts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No artifacts recorded yet; run the pipeline first.")
				return nil
			}

			rows := make([][]string, 0, len(artifacts))
			for _, artifact := range artifacts {
				rows = append(rows, []string{
					artifact.CreatedAt.Local().Format(time.DateTime),
					artifact.Step,
					artifact.Name,
					formatBytes(artifact.SizeBytes),
					shortRunID(artifact.RunID),
					artifact.Path,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Created", "Step", "Output", "Size", "Run", "Path"}, rows, 4))
			return nil
		},
	}
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func shortRunID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}
