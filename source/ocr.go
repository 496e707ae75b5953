//go:build ocr

package source

import (
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/tsawler/skim/ocr"
)

// recognizePage extracts the embedded images of the one-based page and
// runs OCR over them, concatenating the recognized text in image order.
func (p *PDF) recognizePage(pageNr int) (string, error) {
	client, err := ocr.New()
	if err != nil {
		return "", err
	}
	defer client.Close()

	images, err := pdfcpu.ExtractPageImages(p.ctx, pageNr, false)
	if err != nil {
		return "", fmt.Errorf("failed to extract images of page %d: %w", pageNr, err)
	}

	var text string
	for _, img := range images {
		data, err := io.ReadAll(img)
		if err != nil {
			continue
		}
		recognized, err := client.RecognizeImage(data)
		if err != nil {
			continue
		}
		if recognized != "" {
			if text != "" {
				text += "\n"
			}
			text += recognized
		}
	}

	return text, nil
}
