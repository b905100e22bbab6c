package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/voucherpost/internal/adapter/http/dto"
	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/usecase"
)

type rateServiceStub struct {
	resolveFn func(ctx context.Context, from, to string, asOf time.Time) (domain.ResolvedRate, error)
	defaultFn func(ctx context.Context, from, to string, asOf time.Time, def decimal.Decimal) (domain.ResolvedRate, error)
}

func (s *rateServiceStub) ResolveRate(ctx context.Context, from, to string, asOf time.Time) (domain.ResolvedRate, error) {
	return s.resolveFn(ctx, from, to, asOf)
}

func (s *rateServiceStub) ResolveRateWithDefault(ctx context.Context, from, to string, asOf time.Time, def decimal.Decimal) (domain.ResolvedRate, error) {
	return s.defaultFn(ctx, from, to, asOf, def)
}

func TestReferenceHandler_ResolveRate(t *testing.T) {
	h := NewReferenceHandler(&rateServiceStub{
		resolveFn: func(ctx context.Context, from, to string, asOf time.Time) (domain.ResolvedRate, error) {
			if from != "USD" || to != "GHS" || asOf.Format(time.DateOnly) != "2024-03-05" {
				t.Fatalf("unexpected args %s %s %s", from, to, asOf)
			}
			return domain.ResolvedRate{FromCurrencyID: from, ToCurrencyID: to, AsOf: asOf,
				Rate: decimal.RequireFromString("12.5"), Source: domain.RateSourceInverse}, nil
		},
	}, nil)

	rec := httptest.NewRecorder()
	h.ResolveRate(rec, httptest.NewRequest(http.MethodGet, "/rates/resolve?from=usd&to=ghs&date=2024-03-05", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp dto.RateResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Rate != "12.5" || resp.Source != "inverse" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestReferenceHandler_ResolveRateUnresolved(t *testing.T) {
	h := NewReferenceHandler(&rateServiceStub{
		resolveFn: func(ctx context.Context, from, to string, asOf time.Time) (domain.ResolvedRate, error) {
			return domain.ResolvedRate{}, &domain.RateUnresolvedError{FromCurrencyID: from, ToCurrencyID: to, AsOf: asOf}
		},
		defaultFn: func(ctx context.Context, from, to string, asOf time.Time, def decimal.Decimal) (domain.ResolvedRate, error) {
			return domain.ResolvedRate{FromCurrencyID: from, ToCurrencyID: to, Rate: def, Source: domain.RateSourceDefault}, nil
		},
	}, nil)

	rec := httptest.NewRecorder()
	h.ResolveRate(rec, httptest.NewRequest(http.MethodGet, "/rates/resolve?from=EUR&to=GHS", nil))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ResolveRate(rec, httptest.NewRequest(http.MethodGet, "/rates/resolve?from=EUR&to=GHS&default=1", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"source":"default"`) {
		t.Fatalf("expected default rate, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ResolveRate(rec, httptest.NewRequest(http.MethodGet, "/rates/resolve?from=EUR", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without to, got %d", rec.Code)
	}
}

func TestReferenceHandler_ComputeTax(t *testing.T) {
	taxes := usecase.NewTaxUseCase(nil, nil, 0)
	h := NewReferenceHandler(nil, taxes)

	rec := httptest.NewRecorder()
	h.ComputeTax(rec, httptest.NewRequest(http.MethodPost, "/tax/compute", strings.NewReader(`{"subtotal":"80"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp dto.TaxBreakdownResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != "0.00" || resp.GrandTotal != "80.00" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
