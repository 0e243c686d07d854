package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookpress/internal/batch"
	"github.com/pdiddy/bookpress/internal/history"
	"github.com/pdiddy/bookpress/internal/poppler"
	"github.com/pdiddy/bookpress/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input-dir]",
	Short: "Convert every PDF and EPUB in a directory",
	Long: `Convert enumerates the input directory, converts each .pdf and .epub
into a per-document book directory under the output root, and writes a
batch_report.csv summarizing outcomes. Scanned PDFs with no extractable
text are classified NeedsManualProcessing and skipped; a failure in one
file never stops the rest of the batch.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd, args)

	tool := poppler.New(cfg.Extract.PopplerBin)
	if !tool.Available() {
		fmt.Fprintf(os.Stderr, "warning: %s not found on PATH; PDF inputs will fail\n",
			cfg.Extract.PopplerBin)
	}

	outcomes, err := batch.Run(cfg, tool, os.Stdout)
	if err != nil {
		return err
	}

	reportPath := filepath.Join(cfg.Batch.OutDir, batch.ReportFile)
	if err := batch.WriteReport(reportPath, outcomes); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Report: %s\n", reportPath)

	store, err := history.Open(cfg.Batch.OutDir)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.RecordRun(context.Background(), time.Now(), outcomes)
}

// pipelineConfig builds the process-wide configuration once, from flags
// with config-file/environment fallbacks.
func pipelineConfig(cmd *cobra.Command, args []string) types.PipelineConfig {
	inputDir := "input"
	if len(args) > 0 {
		inputDir = args[0]
	}

	popplerBin, _ := cmd.Flags().GetString("poppler")
	if popplerBin == "" {
		popplerBin = viper.GetString("poppler")
	}
	if popplerBin == "" {
		popplerBin = "pdftohtml"
	}

	outDir, _ := cmd.Flags().GetString("out")
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	pattern, _ := cmd.Flags().GetString("heading-pattern")
	classifierKind, _ := cmd.Flags().GetString("classifier")
	style, _ := cmd.Flags().GetString("book-style")
	publisher, _ := cmd.Flags().GetString("publisher")
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	isbn, _ := cmd.Flags().GetString("isbn")
	doPackage, _ := cmd.Flags().GetBool("package")

	return types.PipelineConfig{
		Extract: types.ExtractConfig{
			PopplerBin:       popplerBin,
			HeadingThreshold: threshold,
			HeadingPattern:   pattern,
			Classifier:       types.ClassifierKind(classifierKind),
		},
		Emit: types.EmitConfig{
			Style:            types.BookStyle(style),
			DefaultPublisher: publisher,
			Info:             types.BookInfo{Title: title, Author: author, ISBN: isbn},
		},
		Batch: types.BatchConfig{
			InputDir: inputDir,
			OutDir:   outDir,
			Package:  doPackage,
		},
	}
}

func init() {
	convertCmd.Flags().String("out", "out", "output root directory")
	convertCmd.Flags().String("poppler", "", "pdftohtml executable (default: pdftohtml on PATH)")
	convertCmd.Flags().Float64("threshold", 14.0, "minimum font size for a PDF heading")
	convertCmd.Flags().String("classifier", "size", "PDF heading heuristic: size or pattern")
	convertCmd.Flags().String("heading-pattern", "", "override regex for the pattern classifier")
	convertCmd.Flags().String("book-style", "entity", "master book style: entity or href")
	convertCmd.Flags().String("publisher", "Rittenhouse", "publisher used when metadata has none")
	convertCmd.Flags().String("title", "", "override book title")
	convertCmd.Flags().String("author", "", "override book author")
	convertCmd.Flags().String("isbn", "", "override book ISBN")
	convertCmd.Flags().Bool("package", true, "zip each book directory after emission")

	rootCmd.AddCommand(convertCmd)
}
