package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/finbook/finbook/internal/adapter/http/middleware"
	"github.com/finbook/finbook/internal/domain"
	"github.com/finbook/finbook/internal/infrastructure/metrics"
	"github.com/finbook/finbook/internal/usecase"
)

// ExportService defines the behavior needed by ExportHandler.
type ExportService interface {
	Export(ctx context.Context, session domain.Session) (*usecase.ExportResult, error)
}

// ExportHandler serves the spreadsheet download.
type ExportHandler struct {
	exportUC ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportUC ExportService) *ExportHandler {
	return &ExportHandler{exportUC: exportUC}
}

// Download renders the owner's full collection as an xlsx attachment. Unlike
// the table view, a storage failure here surfaces as an error instead of an
// empty file.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	result, err := h.exportUC.Export(r.Context(), session)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export entries", err.Error())
		return
	}

	metrics.ObserveExport(result.Rows)

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(result.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
}
