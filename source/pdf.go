package source

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tsawler/skim/model"
)

// blockGap is the vertical distance, in layout units, beyond which two
// consecutive runs are treated as belonging to different blocks when
// assembling raw-block mode output.
const blockGap = 18.0

// PDF reads text layout data from a PDF file using pdfcpu.
type PDF struct {
	filename string
	ctx      *pdfmodel.Context
	closed   bool

	// pages caches parsed runs per zero-based page index
	pages map[int][]model.TextRun
}

// OpenPDF opens a PDF file and prepares it for text extraction.
// The returned PDF must be closed when done.
func OpenPDF(filename string) (*PDF, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	conf := pdfmodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF %s: %w", filename, err)
	}

	return &PDF{
		filename: filename,
		ctx:      ctx,
		pages:    make(map[int][]model.TextRun),
	}, nil
}

// Filename returns the path the PDF was opened from.
func (p *PDF) Filename() string {
	return p.filename
}

// PageCount returns the number of pages in the document.
func (p *PDF) PageCount() int {
	if p.ctx == nil {
		return 0
	}
	return p.ctx.PageCount
}

// Page returns the text runs on the given zero-based page.
func (p *PDF) Page(index int) ([]model.TextRun, error) {
	if p.ctx == nil {
		return nil, fmt.Errorf("PDF is closed")
	}
	if index < 0 || index >= p.ctx.PageCount {
		return nil, fmt.Errorf("page index %d out of range [0,%d)", index, p.ctx.PageCount)
	}

	if runs, ok := p.pages[index]; ok {
		return runs, nil
	}

	r, err := pdfcpu.ExtractPageContent(p.ctx, index+1)
	if err != nil {
		return nil, fmt.Errorf("failed to extract content of page %d: %w", index+1, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content of page %d: %w", index+1, err)
	}

	runs := parseContentStream(data, index)

	// Image-only page: try OCR if compiled in. A failure here is not
	// fatal; the page simply yields no runs.
	if len(runs) == 0 && p.pageHasImages(index+1) {
		if text, ocrErr := p.recognizePage(index + 1); ocrErr == nil && text != "" {
			runs = runsFromPlainText(text, index)
		}
	}

	p.pages[index] = runs
	return runs, nil
}

// Blocks returns paragraph-level text blocks for the whole document.
// Runs are grouped into blocks by vertical proximity; font metadata is
// discarded.
func (p *PDF) Blocks() ([]model.Block, error) {
	if p.ctx == nil {
		return nil, fmt.Errorf("PDF is closed")
	}

	var blocks []model.Block
	for i := 0; i < p.ctx.PageCount; i++ {
		runs, err := p.Page(i)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, groupRunsIntoBlocks(runs, i+1)...)
	}
	return blocks, nil
}

// Close releases the pdfcpu context. It is safe to call Close multiple times.
func (p *PDF) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	p.ctx = nil
	p.pages = nil
	return nil
}

// pageHasImages reports whether the one-based page contains image XObjects.
func (p *PDF) pageHasImages(pageNr int) bool {
	if p.ctx == nil || p.ctx.Optimize == nil {
		return false
	}
	return len(pdfcpu.ImageObjNrs(p.ctx, pageNr)) > 0
}

// groupRunsIntoBlocks assembles runs into paragraph-level blocks using
// vertical gaps. A gap larger than blockGap starts a new block.
func groupRunsIntoBlocks(runs []model.TextRun, pageNumber int) []model.Block {
	var blocks []model.Block
	var buf strings.Builder
	var maxSize float64
	var lastY float64
	started := false

	flush := func() {
		text := strings.TrimSpace(buf.String())
		if text != "" {
			blocks = append(blocks, model.Block{Text: text, PageNumber: pageNumber, FontSize: maxSize})
		}
		buf.Reset()
		maxSize = 0
	}

	for _, run := range runs {
		if started && math.Abs(run.Y-lastY) > blockGap {
			flush()
		}
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(run.Text)
		if run.FontSize > maxSize {
			maxSize = run.FontSize
		}
		lastY = run.Y
		started = true
	}
	flush()

	return blocks
}

// runsFromPlainText converts OCR output into runs without font metadata.
// Each line becomes one run with a synthetic descending position so that
// block grouping still sees line boundaries.
func runsFromPlainText(text string, pageIndex int) []model.TextRun {
	var runs []model.TextRun
	y := 0.0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			y -= blockGap * 2
			continue
		}
		runs = append(runs, model.TextRun{Text: line, Y: y, PageIndex: pageIndex})
		y -= 12
	}
	return runs
}
