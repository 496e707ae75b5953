package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/skim/persona"
	"github.com/tsawler/skim/rank"
	"github.com/tsawler/skim/summarize"
)

var (
	flagRankConfig   string
	flagRankInput    string
	flagRankOutput   string
	flagRankTopK     int
	flagRankEndpoint string
	flagRankModel    string
	flagRankDataDir  string
	flagRankVerbose  bool
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank document sections for a persona and task",
	Long: `Rank reads a run configuration naming a persona, a task, and a set of
PDF documents, extracts sections from each document, ranks them by
relevance to the persona's task using an embedding model, and writes a
JSON report with the top sections and their extractive summaries.

The embedding server must speak the OpenAI /v1/embeddings format.
Endpoint and model default to the SKIM_EMBED_ENDPOINT and
SKIM_EMBED_MODEL environment variables; a .env file in the working
directory is honored.`,
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringVar(&flagRankConfig, "config", "input.json", "Run configuration file")
	rankCmd.Flags().StringVar(&flagRankInput, "input", "./input", "Directory containing the configured PDFs")
	rankCmd.Flags().StringVar(&flagRankOutput, "output", "./output/report.json", "Report output path")
	rankCmd.Flags().IntVar(&flagRankTopK, "top-k", 5, "Number of sections to report")
	rankCmd.Flags().StringVar(&flagRankEndpoint, "endpoint", "", "Embedding server base URL (default $SKIM_EMBED_ENDPOINT)")
	rankCmd.Flags().StringVar(&flagRankModel, "model", "", "Embedding model name (default $SKIM_EMBED_MODEL)")
	rankCmd.Flags().StringVar(&flagRankDataDir, "data-dir", "", "Tokenizer data directory (default $SKIM_DATA_DIR or ./data)")
	rankCmd.Flags().BoolVar(&flagRankVerbose, "verbose", false, "Enable debug logging")
}

func runRank(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagRankVerbose)

	cfg, err := persona.LoadConfig(flagRankConfig)
	if err != nil {
		return err
	}
	fmt.Println(titleStyle.Render("skim rank"))
	fmt.Println(dimStyle.Render("Persona:"), cfg.Persona.Role)
	fmt.Println(dimStyle.Render("Task:   "), cfg.JobToBeDone.Task)
	fmt.Println(dimStyle.Render("Docs:   "), len(cfg.Documents))

	endpoint := flagRankEndpoint
	if endpoint == "" {
		endpoint = os.Getenv("SKIM_EMBED_ENDPOINT")
	}
	model := flagRankModel
	if model == "" {
		model = os.Getenv("SKIM_EMBED_MODEL")
	}

	embedder, err := rank.NewHTTPEmbedder(rank.EmbedderConfig{
		Endpoint: endpoint,
		Model:    model,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	dataDir := flagRankDataDir
	if dataDir == "" {
		dataDir = envOr("SKIM_DATA_DIR", "./data")
	}
	tokenizer, err := summarize.NewTokenizer(dataDir)
	if err != nil {
		return err
	}

	ranker := rank.NewRankerWithConfig(embedder, rank.RankerConfig{
		TopK:         flagRankTopK,
		IncludeTitle: true,
	})
	summarizer := summarize.NewSummarizer(tokenizer)

	pipeline := persona.NewPipeline(ranker, summarizer, persona.WithLogger(logger))
	report, err := pipeline.Run(cmd.Context(), cfg, flagRankInput)
	if err != nil {
		return err
	}

	if err := report.WriteFile(flagRankOutput); err != nil {
		return err
	}

	fmt.Println(summaryBoxStyle.Render(renderReportSummary(report)))
	fmt.Println(successStyle.Render("✓"), "Report written to", flagRankOutput)
	return nil
}

// renderReportSummary lists the ranked sections for terminal display.
func renderReportSummary(report *persona.Report) string {
	out := titleStyle.Render("Top sections") + "\n"
	for _, sec := range report.ExtractedSections {
		out += fmt.Sprintf("%d. %s %s\n", sec.ImportanceRank, sec.SectionTitle,
			dimStyle.Render(fmt.Sprintf("(%s p.%d)", sec.Document, sec.PageNumber)))
	}
	return out
}

// newLogger builds the CLI logger; debug level when verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
