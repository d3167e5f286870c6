package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daoatlas/daoatlas/internal/store"
	"github.com/daoatlas/daoatlas/pkg/errors"
	"github.com/daoatlas/daoatlas/pkg/logging"
)

// NewCollectCommand creates the collect command: build the candidate
// catalog and write it for manual curation.
func (a *App) NewCollectCommand() *cobra.Command {
	var (
		outPath   string
		cachePath string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Build the candidate organization catalog",
		Long: `Collect cross-references the governance directory against the
metadata-aggregator extract and writes a candidate catalog CSV. The
aggregator extract is downloaded on first run and cached; later runs
reuse the cached file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cachePath != "" {
				a.config.CachePath = cachePath
			}
			if limit > 0 {
				a.config.OrgLimit = limit
			}

			p, err := a.Pipeline()
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), a.logger)
			ctx = logging.WithWorkflow(ctx, "collect")
			return p.Collect(ctx, outPath)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output CSV path (required)")
	cmd.Flags().StringVar(&cachePath, "cache", "", "aggregator extract cache path (default from config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "cap on accepted records (default 50)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// NewExpandCommand creates the expand command: enrich curated rows into the
// final catalog records.
func (a *App) NewExpandCommand() *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Enrich curated rows into final catalog records",
		Long: `Expand reads a manually curated CSV, keeps the rows marked clean,
enriches each with social counts, treasury size, and token valuation,
and writes the final catalog CSV.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !store.Exists(inPath) {
				return &errors.IOError{
					Operation: "open",
					Path:      inPath,
					Message:   "curated input file not found",
					Err:       fmt.Errorf("%w: %s", errors.ErrNotFound, inPath),
				}
			}

			p, err := a.Pipeline()
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), a.logger)
			ctx = logging.WithWorkflow(ctx, "expand")
			return p.Expand(ctx, inPath, outPath)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "curated input CSV path (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "output CSV path (required)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("daoatlas %s (commit %s, built %s)\n", a.version, a.commit, a.date)
		},
	}
}
