package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "reviewreport",
	Short: "Review assignment reports for journals",
	Long: `reviewreport exports the review assignments of a journal as a CSV
report, annotated with overdue days and the reviewers' comments.

Configuration is read from REVIEWREPORT_* environment variables, optionally
loaded from a .env file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from this file")

	rootCmd.AddCommand(serveCmd, exportCmd, seedCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}
