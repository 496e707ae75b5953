package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skim",
	Short: "Infer structure and persona-relevant sections from PDF documents",
	Long: `skim turns unstructured PDF documents into structured, queryable
knowledge: a per-document title/outline of hierarchical headings with
page numbers, and a persona-driven extract of the most relevant
sections across a document set, each reduced to a short extractive
summary.`,
}

func init() {
	// Environment defaults may live in a .env file; a missing file is
	// not an error.
	_ = godotenv.Load()
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
