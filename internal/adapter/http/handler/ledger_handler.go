package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finbook/finbook/internal/adapter/http/dto"
	"github.com/finbook/finbook/internal/adapter/http/middleware"
	"github.com/finbook/finbook/internal/domain"
	"github.com/finbook/finbook/internal/format"
	"github.com/finbook/finbook/internal/infrastructure/metrics"
	"github.com/finbook/finbook/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	ListEntries(ctx context.Context, session domain.Session, input usecase.ListEntriesInput) (*usecase.ListEntriesOutput, error)
	CreateEntry(ctx context.Context, session domain.Session, input domain.NewEntryInput) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, session domain.Session, id string) error
	Summary(ctx context.Context, session domain.Session) (*usecase.SummaryOutput, error)
}

// LedgerHandler handles ledger entry HTTP requests.
type LedgerHandler struct {
	ledgerUC LedgerService
	fmtr     *format.CurrencyFormatter
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService, fmtr *format.CurrencyFormatter) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, fmtr: fmtr}
}

// List returns the filtered, paginated table view for the session owner.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	input := usecase.ListEntriesInput{
		Filter: domain.Filter{
			Term:     r.URL.Query().Get("q"),
			Category: r.URL.Query().Get("category"),
		},
		Limit:  parseIntQuery(r, "limit", 0),
		Offset: parseIntQuery(r, "offset", 0),
	}

	out, err := h.ledgerUC.ListEntries(r.Context(), session, input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListEntriesResponse{
		Entries:  dto.EntriesFromDomain(out.Entries, h.fmtr),
		Matched:  out.Matched,
		Total:    out.Total,
		Degraded: out.Degraded,
	})
}

// Create records a new entry for the session owner.
func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToDomainInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	entry, err := h.ledgerUC.CreateEntry(r.Context(), session, input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create entry", err.Error())
		return
	}

	metrics.ObserveEntryCreated(entry.Profit.InexactFloat64(), entry.Loss.InexactFloat64())

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(*entry, h.fmtr))
}

// Delete removes one entry. Deleting an id that is already gone still
// returns 204.
func (h *LedgerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	if err := h.ledgerUC.DeleteEntry(r.Context(), session, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete entry", err.Error())
		return
	}

	metrics.EntriesDeleted.Inc()
	w.WriteHeader(http.StatusNoContent)
}

// Summary returns the aggregate figures over the owner's full collection.
func (h *LedgerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	out, err := h.ledgerUC.Summary(r.Context(), session)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute summary", err.Error())
		return
	}

	byCategory := make(map[domain.Category]dto.TotalsResponse, len(out.ByCategory))
	for c, t := range out.ByCategory {
		byCategory[c] = dto.TotalsFromDomain(t, h.fmtr)
	}

	writeJSON(w, http.StatusOK, dto.SummaryResponse{
		Totals:     dto.TotalsFromDomain(out.Totals, h.fmtr),
		ByCategory: byCategory,
		Count:      out.Count,
		Degraded:   out.Degraded,
	})
}
