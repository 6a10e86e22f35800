// Package categorizer assigns a category to each ledger row by keyword
// and fuzzy matching against a category config. It consumes the ledger
// and writes its own output file; the ledger itself is never touched.
package categorizer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/shopspring/decimal"
)

// Uncategorized is assigned when no category matches.
const Uncategorized = "to categorize"

// Category describes one configured category: the transaction type it
// applies to ("debit", "credit", or "" for either) and the keywords
// that identify it.
type Category struct {
	Type     string   `json:"type"`
	Keywords []string `json:"keywords"`
}

type Categorizer struct {
	categories map[string]Category
	logger     *slog.Logger
}

// Load reads a JSON category config of the form
// {"Groceries": {"type": "debit", "keywords": ["albert heijn"]}}.
func Load(path string, logger *slog.Logger) (*Categorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories config: %w", err)
	}

	var categories map[string]Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parsing categories config: %w", err)
	}
	return &Categorizer{categories: categories, logger: logger}, nil
}

// InferType classifies a row as "debit" or "credit" from whichever
// amount parses non-zero, or "unknown" when neither does.
func InferType(debit, credit string) string {
	if d, err := decimal.NewFromString(strings.TrimSpace(debit)); err == nil && !d.IsZero() {
		return "debit"
	}
	if c, err := decimal.NewFromString(strings.TrimSpace(credit)); err == nil && !c.IsZero() {
		return "credit"
	}
	return "unknown"
}

// Categorize picks the category whose keywords best match the
// description. A category bound to a transaction type is only
// considered for rows of that type. Exact substring matches win;
// otherwise the closest fuzzy keyword match is used. Ties go to the
// alphabetically first category name so repeated runs agree.
func (c *Categorizer) Categorize(description, txType string) string {
	lower := strings.ToLower(description)

	for _, name := range c.sortedNames() {
		cat := c.categories[name]
		if !typeMatches(cat.Type, txType) {
			continue
		}
		for _, kw := range cat.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return name
			}
		}
	}

	best := Uncategorized
	bestRank := -1
	for _, name := range c.sortedNames() {
		cat := c.categories[name]
		if !typeMatches(cat.Type, txType) {
			continue
		}
		for _, kw := range cat.Keywords {
			rank := fuzzy.RankMatchNormalizedFold(kw, description)
			if rank < 0 {
				continue
			}
			if bestRank < 0 || rank < bestRank {
				best = name
				bestRank = rank
			}
		}
	}
	return best
}

func (c *Categorizer) sortedNames() []string {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func typeMatches(categoryType, txType string) bool {
	return categoryType == "" || categoryType == txType
}

// Run reads the ledger CSV at inPath and writes a copy to outPath with
// two added columns, Category and Type. Descriptions have embedded
// newlines flattened so the output stays one row per transaction.
func (c *Categorizer) Run(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening ledger: %w", err)
	}
	defer in.Close()

	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return fmt.Errorf("reading ledger: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("ledger %s is empty", inPath)
	}

	header := records[0]
	descIdx := indexOf(header, "Description")
	debitIdx := indexOf(header, "Debit")
	creditIdx := indexOf(header, "Credit")
	if descIdx < 0 || debitIdx < 0 || creditIdx < 0 {
		return fmt.Errorf("ledger %s is missing expected columns", inPath)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	cw := csv.NewWriter(out)
	if err := cw.Write(append(append([]string{}, header...), "Category", "Type")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	categorized := 0
	for _, rec := range records[1:] {
		row := make([]string, len(header))
		copy(row, rec)

		txType := InferType(row[debitIdx], row[creditIdx])
		category := c.Categorize(row[descIdx], txType)
		if category != Uncategorized {
			categorized++
		}

		row[descIdx] = flatten(row[descIdx])
		if err := cw.Write(append(row, category, txType)); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	c.logger.Info("categorization complete",
		"input", inPath, "output", outPath,
		"rows", len(records)-1, "categorized", categorized)
	return nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func flatten(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
