package persona

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tsawler/skim/model"
)

// Metadata describes a run: its inputs, query parts, and timestamp.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// ExtractedSection is one ranked section in the report.
type ExtractedSection struct {
	Document       string `json:"document"`
	PageNumber     int    `json:"page_number"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
}

// SubSectionAnalysis carries the refined text for one ranked section.
type SubSectionAnalysis struct {
	Document    string `json:"document"`
	PageNumber  int    `json:"page_number"`
	RefinedText string `json:"refined_text"`
}

// Report is the combined ranking output artifact.
type Report struct {
	Metadata           Metadata             `json:"metadata"`
	ExtractedSections  []ExtractedSection   `json:"extracted_sections"`
	SubSectionAnalysis []SubSectionAnalysis `json:"sub_section_analysis"`
}

// buildReport assembles the report from the ranked sections.
// Importance ranks are 1-based in rank order.
func buildReport(cfg *Config, top []model.ScoredSection) *Report {
	report := &Report{
		Metadata: Metadata{
			InputDocuments:      cfg.Filenames(),
			Persona:             cfg.Persona.Role,
			JobToBeDone:         cfg.JobToBeDone.Task,
			ProcessingTimestamp: time.Now().UTC().Format(time.RFC3339),
		},
		ExtractedSections:  make([]ExtractedSection, 0, len(top)),
		SubSectionAnalysis: make([]SubSectionAnalysis, 0, len(top)),
	}

	for i, sec := range top {
		report.ExtractedSections = append(report.ExtractedSections, ExtractedSection{
			Document:       sec.Source,
			PageNumber:     sec.Page,
			SectionTitle:   sec.Title,
			ImportanceRank: i + 1,
		})
		report.SubSectionAnalysis = append(report.SubSectionAnalysis, SubSectionAnalysis{
			Document:    sec.Source,
			PageNumber:  sec.Page,
			RefinedText: sec.RefinedText,
		})
	}

	return report
}

// WriteFile writes the report as indented JSON, atomically: the file is
// written to a temporary path and renamed into place, so consumers never
// observe a partial report.
func (r *Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to finalize report: %w", err)
	}
	return nil
}
