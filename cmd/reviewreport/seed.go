package main

import (
	"time"

	"github.com/spf13/cobra"

	sqliteadapter "github.com/ericfisherdev/reviewreport/internal/adapter/driven/sqlite"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a demo journal into the database",
	Long: `Creates the "demo" journal with reviewers, a review form and review
assignments in every overdue state, dated relative to now.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	seed := sqliteadapter.NewSeedRepo(a.db, a.cfg.Location)
	if err := sqliteadapter.SeedDemo(ctx, seed, time.Now().In(a.cfg.Location)); err != nil {
		return err
	}

	a.logger.Info("demo data loaded", "journal", sqliteadapter.DemoJournalPath, "db_path", a.db.Path())
	return nil
}
