package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookpress/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded conversion outcomes",
	Long: `History lists recent per-file conversion outcomes from the history
database under the output root, newest first. The CSV report remains
the authoritative record of a single batch; the database spans runs.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out")
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.Open(outDir)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No recorded outcomes.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-30s  %-5s  %s\n", "Run", "File", "Type", "Status")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))
	for _, e := range entries {
		file := e.File
		if len(file) > 30 {
			file = file[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-30s  %-5s  %s\n", e.RunAt, file, e.Type, e.Status)
	}
	fmt.Fprintf(os.Stdout, "\n%d rows\n", len(entries))
	return nil
}

func init() {
	historyCmd.Flags().String("out", "out", "output root directory holding the history database")
	historyCmd.Flags().Int("limit", 20, "maximum rows to list")

	rootCmd.AddCommand(historyCmd)
}
