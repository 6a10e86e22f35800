package extractor

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/insightdelivered/statement-ledger/internal/models"
)

// ExtractXLSX reads a workbook and returns one page per non-empty
// sheet, each carrying a single table of cell rows. Cell values come
// back as displayed strings; empty sheets are dropped.
func ExtractXLSX(path string) ([]models.Page, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	var pages []models.Page
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}
		pages = append(pages, models.Page{Tables: [][][]string{rows}})
	}
	return pages, nil
}
