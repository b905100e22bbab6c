package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/voucherpost/internal/adapter/http/dto"
	"github.com/iho/voucherpost/internal/domain"
)

// RateService defines the rate lookups needed by ReferenceHandler.
type RateService interface {
	ResolveRate(ctx context.Context, from, to string, asOf time.Time) (domain.ResolvedRate, error)
	ResolveRateWithDefault(ctx context.Context, from, to string, asOf time.Time, def decimal.Decimal) (domain.ResolvedRate, error)
}

// TaxService defines the tax lookups needed by ReferenceHandler.
type TaxService interface {
	ComputeTax(ctx context.Context, subtotal decimal.Decimal, taxCodeID string) (domain.TaxBreakdown, error)
	GetTaxCode(ctx context.Context, id string) (*domain.TaxCode, error)
}

// ReferenceHandler serves exchange rates and tax computation.
type ReferenceHandler struct {
	rates RateService
	taxes TaxService
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(rates RateService, taxes TaxService) *ReferenceHandler {
	return &ReferenceHandler{rates: rates, taxes: taxes}
}

// ResolveRate resolves ?from=&to=&date= with an optional ?default= fallback.
func (h *ReferenceHandler) ResolveRate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := strings.ToUpper(strings.TrimSpace(q.Get("from")))
	to := strings.ToUpper(strings.TrimSpace(q.Get("to")))
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required", "")
		return
	}

	asOf := time.Now().UTC()
	if d := q.Get("date"); d != "" {
		parsed, err := time.Parse(time.DateOnly, d)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
			return
		}
		asOf = parsed
	}

	var (
		rate domain.ResolvedRate
		err  error
	)
	if def := q.Get("default"); def != "" {
		fallback, perr := decimal.NewFromString(def)
		if perr != nil || !fallback.IsPositive() {
			writeError(w, http.StatusBadRequest, "invalid default rate", "must be a positive number")
			return
		}
		rate, err = h.rates.ResolveRateWithDefault(r.Context(), from, to, asOf, fallback)
	} else {
		rate, err = h.rates.ResolveRate(r.Context(), from, to, asOf)
	}
	if err != nil {
		writeDomainError(w, "failed to resolve rate", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.RateFromDomain(rate))
}

// ComputeTax applies a tax code to a subtotal.
func (h *ReferenceHandler) ComputeTax(w http.ResponseWriter, r *http.Request) {
	var req dto.ComputeTaxRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	subtotal, err := req.ParseSubtotal()
	if err != nil {
		writeDomainError(w, "invalid subtotal", err)
		return
	}

	breakdown, err := h.taxes.ComputeTax(r.Context(), subtotal, req.TaxCodeID)
	if err != nil {
		writeDomainError(w, "failed to compute tax", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TaxBreakdownFromDomain(breakdown))
}

// GetTaxCode returns a tax code with its components.
func (h *ReferenceHandler) GetTaxCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.taxes.GetTaxCode(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "failed to get tax code", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TaxCodeFromDomain(code))
}
