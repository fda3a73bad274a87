// Package main provides the CLI entry point for drinklabels.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/output"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/reference"
	"github.com/ukaji3/drinklabels-go/pkg/drinklabels/render"
)

var (
	outputDir     string
	referencePath string
	sheet         string
	strict        bool
	workers       int
	only          []string
	withWorkbook  bool
	jsonPath      string
	pretty        bool
	verbose       bool
	quiet         bool
)

func main() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "drinklabels [orders.csv|orders.xlsx]",
		Short: "Print table cards, crate labels and a summary from a drinks order export",
		Long: `drinklabels reads the drinks pre-order export, merges rows for the same
table, totals drinks per coach end and writes Tables.pdf, Crates.pdf and
Summary.pdf.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&outputDir, "out", "o", envOr("DRINKLABELS_OUT", "."), "Directory for generated documents")
	rootCmd.Flags().StringVar(&referencePath, "reference", os.Getenv("DRINKLABELS_REFERENCE"), "Reference data YAML (default: built-in)")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read from an xlsx export (default: first sheet)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Abort on the first row that cannot be parsed")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Rows parsed concurrently (default: number of CPUs)")
	rootCmd.Flags().StringSliceVar(&only, "only", nil, "Documents to write: tables, crates, summary, workbook")
	rootCmd.Flags().BoolVar(&withWorkbook, "xlsx", false, "Also write Drinks.xlsx")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "Write the parsed result as JSON to this path (\"-\" for stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log dropped items and progress")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		stop()
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	logger := newLogger()

	docs, err := render.SelectDocuments(only, withWorkbook)
	if err != nil {
		return err
	}

	opts := drinklabels.DefaultOptions()
	opts.Sheet = sheet
	opts.Strict = strict
	opts.Logger = logger
	if workers > 0 {
		opts.Workers = workers
	}

	// Load reference data
	if referencePath != "" {
		ref, err := reference.Load(referencePath)
		if err != nil {
			return err
		}
		opts.Reference = ref
		logger.Info("loaded reference data", "path", referencePath)
	}

	result, err := drinklabels.Build(cmd.Context(), inputPath, opts)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	// Write JSON
	if jsonPath != "" {
		data, err := output.ToJSON(result, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if jsonPath == "-" {
			fmt.Println(string(data))
		} else if err := os.WriteFile(jsonPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write json: %w", err)
		}
	}

	written, err := render.WriteFiles(outputDir, result, docs)
	for _, path := range written {
		logger.Info("wrote document", "path", path)
	}
	if err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	if !quiet {
		printReport(os.Stderr, result, written)
	}
	return nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
