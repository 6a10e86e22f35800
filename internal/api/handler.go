// Package api exposes the ingestion pipeline over HTTP.
package api

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/insightdelivered/statement-ledger/internal/ledger"
	"github.com/insightdelivered/statement-ledger/internal/models"
	"github.com/insightdelivered/statement-ledger/internal/pipeline"
)

// Handler holds the HTTP handlers for the API.
type Handler struct {
	LedgerPath string
	Logger     *slog.Logger
}

// IngestResponse is the JSON response from POST /api/ingest.
type IngestResponse struct {
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
	Documents   int    `json:"documents"`
	Extracted   int    `json:"extracted"`
	Appended    int    `json:"appended"`
	Skipped     int    `json:"skipped"`
	TotalDebit  string `json:"totalDebit"`
	TotalCredit string `json:"totalCredit"`
}

// LedgerResponse is the JSON response from GET /api/ledger.
type LedgerResponse struct {
	Count        int                  `json:"count"`
	Transactions []models.Transaction `json:"transactions"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "statement-ledger",
		BodyLimit: 32 << 20,
	})
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/ingest", h.HandleIngest)
	app.Get("/api/ledger", h.HandleLedger)
	return app
}

func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": "fiber",
	})
}

// HandleIngest accepts one or more statement documents as multipart
// form files under the field "file", runs the extraction pipeline and
// merges the results into the configured ledger.
func (h *Handler) HandleIngest(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return ingestError(c, fiber.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
	}

	files := form.File["file"]
	if len(files) == 0 {
		return ingestError(c, fiber.StatusBadRequest, "no file uploaded; use form field 'file'")
	}

	tmpDir, err := os.MkdirTemp("", "statement-ledger-upload-")
	if err != nil {
		return ingestError(c, fiber.StatusInternalServerError, fmt.Sprintf("creating upload dir: %v", err))
	}
	defer os.RemoveAll(tmpDir)

	var paths []string
	for i, fh := range files {
		dst := filepath.Join(tmpDir, fmt.Sprintf("%d_%s", i, filepath.Base(fh.Filename)))
		if err := c.SaveFile(fh, dst); err != nil {
			return ingestError(c, fiber.StatusInternalServerError, fmt.Sprintf("saving upload: %v", err))
		}
		paths = append(paths, dst)
	}

	report, err := pipeline.Run(h.Logger, paths, h.LedgerPath)
	if err != nil {
		return ingestError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(IngestResponse{
		Success:     true,
		Documents:   report.Documents,
		Extracted:   report.Extracted,
		Appended:    report.Appended,
		Skipped:     report.Skipped,
		TotalDebit:  report.TotalDebit.StringFixed(2),
		TotalCredit: report.TotalCredit.StringFixed(2),
	})
}

// HandleLedger returns the current ledger contents as JSON.
func (h *Handler) HandleLedger(c *fiber.Ctx) error {
	led := &ledger.Ledger{Path: h.LedgerPath}
	txns, err := led.ReadAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if txns == nil {
		txns = []models.Transaction{}
	}
	return c.JSON(LedgerResponse{Count: len(txns), Transactions: txns})
}

func ingestError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(IngestResponse{Success: false, Error: msg})
}
