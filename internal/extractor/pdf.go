package extractor

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"github.com/insightdelivered/statement-ledger/internal/models"
)

// ExtractPDF reads a PDF file and returns one text page per PDF page.
// PDF pages never carry tables here: statements that arrive as PDFs go
// through the text-line recognizer. If the structured library fails or
// returns garbage, falls back to the external pdftotext command
// (poppler-utils).
func ExtractPDF(filePath string) ([]models.Page, error) {
	texts, libErr := extractWithLibrary(filePath)
	if libErr == nil && isReadableText(texts) {
		return textPages(texts), nil
	}

	popplerTexts, popplerErr := extractWithPdftotext(filePath)
	if popplerErr == nil && isReadableText(popplerTexts) {
		return textPages(popplerTexts), nil
	}

	if libErr != nil {
		return nil, fmt.Errorf("PDF text extraction failed: %v. The PDF may use custom fonts or be image-based/scanned", libErr)
	}
	return nil, fmt.Errorf("no readable text could be extracted from PDF %q", filePath)
}

func textPages(texts []string) []models.Page {
	pages := make([]models.Page, 0, len(texts))
	for _, t := range texts {
		pages = append(pages, models.Page{Text: t})
	}
	return pages
}

// extractWithLibrary uses the ledongthuc/pdf library, reconstructing
// lines from GetTextByRow.
func extractWithLibrary(filePath string) (texts []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return nil, openErr
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		texts = append(texts, strings.Join(lines, "\n"))
	}
	return texts, nil
}

// extractWithPdftotext uses the external pdftotext command from
// poppler-utils, extracting each page separately to preserve page
// boundaries.
func extractWithPdftotext(filePath string) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %v", err)
	}

	numPages := 1
	if out, err := exec.Command("pdfinfo", filePath).Output(); err == nil {
		for _, line := range strings.Split(string(out), "\n") {
			if strings.HasPrefix(line, "Pages:") {
				if n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:"))); err == nil && n > 0 {
					numPages = n
				}
			}
		}
	}

	var texts []string
	for i := 1; i <= numPages; i++ {
		pageStr := strconv.Itoa(i)
		out, err := exec.Command("pdftotext", "-layout", "-f", pageStr, "-l", pageStr, filePath, "-").Output()
		if err != nil {
			continue
		}
		if text := strings.TrimSpace(string(out)); text != "" {
			texts = append(texts, text)
		}
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("pdftotext produced no output")
	}
	return texts, nil
}

// isReadableText checks that pages contain enough text and that it is
// mostly readable ASCII rather than binary garbage from
// identity-encoded fonts.
func isReadableText(texts []string) bool {
	total, readable := 0, 0
	for _, t := range texts {
		for _, r := range t {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(".,-/:;()'\"€$+*&@#?!=", r) {
				readable++
			}
		}
	}
	if total <= 50 {
		return false
	}
	return float64(readable)/float64(total) > 0.6
}
