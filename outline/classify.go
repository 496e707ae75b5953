package outline

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/skim/model"
)

// ClassifierConfig holds configuration for heading classification.
type ClassifierConfig struct {
	// SizeThreshold is the minimum font size for a size to participate
	// in level assignment. Default: 11.5 points.
	SizeThreshold float64

	// MaxLevels caps how many distinct font sizes map to heading levels.
	// Default: 4 (H1-H4).
	MaxLevels int

	// MergeGap is the maximum vertical distance, in layout units,
	// between two same-level lines for them to merge into one heading.
	// Default: 25.
	MergeGap float64

	// LineTolerance is the Y-distance within which runs share a visual
	// baseline. Default: 0.5.
	LineTolerance float64

	// Rules are the classification rules in priority order.
	// Default: DefaultRules().
	Rules []Rule
}

// DefaultClassifierConfig returns sensible default configuration.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		SizeThreshold: 11.5,
		MaxLevels:     4,
		MergeGap:      25,
		LineTolerance: 0.5,
		Rules:         DefaultRules(),
	}
}

// Classifier classifies page lines into heading candidates.
type Classifier struct {
	config ClassifierConfig
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultClassifierConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration.
func NewClassifierWithConfig(config ClassifierConfig) *Classifier {
	if config.MaxLevels <= 0 || config.MaxLevels > int(model.HeadingLevel4) {
		config.MaxLevels = int(model.HeadingLevel4)
	}
	if len(config.Rules) == 0 {
		config.Rules = DefaultRules()
	}
	return &Classifier{config: config}
}

// ClassifyPage classifies a page's text runs into heading candidates.
// Runs are grouped into lines, each line is assigned a level by the rule
// list, and adjacent same-level lines are merged.
func (c *Classifier) ClassifyPage(runs []model.TextRun) []model.HeadingCandidate {
	lines := c.GroupLines(runs)
	ctx := c.buildContext(lines)

	type classified struct {
		line  model.Line
		level model.HeadingLevel
	}

	var kept []classified
	for _, line := range lines {
		level, ok := c.classifyLine(line, ctx)
		if !ok {
			continue
		}
		kept = append(kept, classified{line: line, level: level})
	}

	// Merge pass: append a line to the pending candidate when it shares
	// the previous line's level, sits within MergeGap of it, and is not
	// itself a fresh numbered item.
	var candidates []model.HeadingCandidate
	var buffer strings.Builder
	var pending model.HeadingCandidate
	active := false

	flush := func() {
		if !active {
			return
		}
		merged := strings.TrimSpace(buffer.String())
		if merged != "" && !isDateLike(merged) {
			pending.Text = merged
			candidates = append(candidates, pending)
		}
		buffer.Reset()
		active = false
	}

	var lastY float64
	for _, cl := range kept {
		sameLevel := active && cl.level == pending.Level
		near := math.Abs(cl.line.Y-lastY) <= c.config.MergeGap
		fresh := freshNumberedRe.MatchString(cl.line.Text)

		if sameLevel && near && !fresh {
			buffer.WriteByte(' ')
			buffer.WriteString(cl.line.Text)
		} else {
			flush()
			pending = model.HeadingCandidate{
				Level:     cl.level,
				PageIndex: cl.line.PageIndex,
				Y:         cl.line.Y,
			}
			buffer.WriteString(cl.line.Text)
			active = true
		}
		lastY = cl.line.Y
	}
	flush()

	return candidates
}

// GroupLines groups consecutive runs sharing a visual baseline into
// lines. A line's font size is the maximum among its runs.
func (c *Classifier) GroupLines(runs []model.TextRun) []model.Line {
	var lines []model.Line
	var current *model.Line

	for _, run := range runs {
		text := strings.TrimSpace(run.Text)
		if text == "" {
			continue
		}
		if current != nil && math.Abs(run.Y-current.Y) <= c.config.LineTolerance {
			current.Text += " " + text
			if run.FontSize > current.FontSize {
				current.FontSize = run.FontSize
			}
			continue
		}
		if current != nil {
			lines = append(lines, *current)
		}
		current = &model.Line{
			Text:      text,
			FontSize:  run.FontSize,
			Y:         run.Y,
			PageIndex: run.PageIndex,
		}
	}
	if current != nil {
		lines = append(lines, *current)
	}

	return lines
}

// buildContext derives the page's size-to-level mapping: distinct font
// sizes above the threshold, sorted descending, assigned to H1..H4.
func (c *Classifier) buildContext(lines []model.Line) RuleContext {
	distinct := make(map[float64]bool)
	for _, line := range lines {
		if line.FontSize > c.config.SizeThreshold {
			distinct[line.FontSize] = true
		}
	}

	sizes := make([]float64, 0, len(distinct))
	for size := range distinct {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	ctx := RuleContext{SizeToLevel: make(map[float64]model.HeadingLevel)}
	for i, size := range sizes {
		if i >= c.config.MaxLevels {
			break
		}
		ctx.SizeToLevel[size] = model.HeadingLevel(i + 1)
	}
	if len(sizes) > 0 {
		ctx.TopSize = sizes[0]
	}

	return ctx
}

// classifyLine runs the rule list over a line in priority order.
func (c *Classifier) classifyLine(line model.Line, ctx RuleContext) (model.HeadingLevel, bool) {
	for _, rule := range c.config.Rules {
		level, verdict := rule(line, ctx)
		switch verdict {
		case VerdictLevel:
			return level, true
		case VerdictReject:
			return model.HeadingLevelUnknown, false
		}
	}
	return model.HeadingLevelUnknown, false
}
