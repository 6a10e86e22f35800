// Package extractor turns source documents into pages of tables and
// raw text — the only contract the parsing layer requires of a
// document reader.
package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/insightdelivered/statement-ledger/internal/models"
)

// Open reads a document and returns its pages. The reader is chosen by
// file extension: PDFs yield text pages, XLSX workbooks yield one
// table per sheet. Which capability a page ends up offering is what
// routes it through the tabular or text recognizer downstream.
func Open(path string) ([]models.Page, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return ExtractPDF(path)
	case ".xlsx", ".xlsm":
		return ExtractXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported document type %q (expected .pdf or .xlsx)", ext)
	}
}
