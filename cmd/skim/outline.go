package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/skim"
)

var (
	flagOutlineInput  string
	flagOutlineOutput string
	flagPageOffset    int
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Extract title and heading outlines from PDFs",
	Long: `Outline processes every PDF in the input directory and writes one
JSON file per document containing its title and heading outline:

  {"title": "...", "outline": [{"level": "H1", "text": "...", "page": 1}]}

A document that cannot be processed is reported and skipped; the
remaining documents are still written.`,
	RunE: runOutline,
}

func init() {
	rootCmd.AddCommand(outlineCmd)

	outlineCmd.Flags().StringVar(&flagOutlineInput, "input", "./input", "Directory containing PDF files")
	outlineCmd.Flags().StringVar(&flagOutlineOutput, "output", "./output", "Directory for outline JSON files")
	outlineCmd.Flags().IntVar(&flagPageOffset, "offset", 0, "Offset added to outline page numbers")
}

func runOutline(cmd *cobra.Command, args []string) error {
	entries, err := os.ReadDir(flagOutlineInput)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}
	if err := os.MkdirAll(flagOutlineOutput, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	processed, failed := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}

		if err := outlineOne(entry.Name()); err != nil {
			failed++
			fmt.Println(errorStyle.Render("✗"), entry.Name(), dimStyle.Render(err.Error()))
			continue
		}
		processed++
		fmt.Println(successStyle.Render("✓"), entry.Name())
	}

	fmt.Println(summaryBoxStyle.Render(fmt.Sprintf("%s %d  %s %d",
		dimStyle.Render("Processed:"), processed,
		dimStyle.Render("Failed:"), failed,
	)))

	if processed == 0 && failed > 0 {
		return fmt.Errorf("no documents could be processed")
	}
	return nil
}

// outlineOne extracts and writes the outline for a single PDF.
func outlineOne(filename string) error {
	path := filepath.Join(flagOutlineInput, filename)

	result, warnings, err := skim.Open(path).PageOffset(flagPageOffset).Outline()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Println(dimStyle.Render("  " + w.String()))
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode outline: %w", err)
	}

	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	outPath := filepath.Join(flagOutlineOutput, base+".json")

	tmp := outPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write outline: %w", err)
	}
	if err := os.Rename(tmp, outPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to finalize outline: %w", err)
	}
	return nil
}
