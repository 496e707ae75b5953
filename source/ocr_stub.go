//go:build !ocr

package source

import "github.com/tsawler/skim/ocr"

// recognizePage is the stub used when OCR support is not compiled in.
// It always reports OCR as unavailable; image-only pages yield no runs.
func (p *PDF) recognizePage(pageNr int) (string, error) {
	return "", ocr.ErrOCRNotEnabled
}
