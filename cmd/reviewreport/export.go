package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/reviewreport/internal/application"
)

var (
	exportJournal string
	exportLocale  string
	exportOut     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a journal's review report as CSV",
	Long: `Writes the review assignment report of a journal.

Without --out the report goes to stdout. When --out names a directory the
report is written there as reviews-YYYYMMDD.csv.

Example:
  reviewreport export --journal demo --locale fr_CA --out ./reports`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportJournal, "journal", "", "journal path (required)")
	exportCmd.Flags().StringVar(&exportLocale, "locale", "", "report locale, e.g. en or fr_CA (default: the journal's primary locale)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file or directory (default: stdout)")
	_ = exportCmd.MarkFlagRequired("journal")
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	report, err := a.reports.Prepare(ctx, exportJournal, exportLocale)
	if err != nil {
		return fmt.Errorf("prepare report for journal %q: %w", exportJournal, err)
	}

	path, err := writeReport(ctx, report, cmd.OutOrStdout(), exportOut)
	if err != nil {
		return err
	}

	a.logger.Info("review report exported",
		"journal", exportJournal,
		"locale", report.Locale,
		"rows", report.Rows(),
		"out", path,
	)
	return nil
}

// writeReport writes report to stdout, or to out when it names a file. A
// directory out receives the report under its default file name. It returns
// the path written, or "" for stdout.
func writeReport(ctx context.Context, report *application.ReviewReport, stdout io.Writer, out string) (string, error) {
	if out == "" || out == "-" {
		return "", report.WriteCSV(ctx, stdout)
	}

	path := out
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, report.Filename)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if err := report.WriteCSV(ctx, f); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	return path, nil
}
