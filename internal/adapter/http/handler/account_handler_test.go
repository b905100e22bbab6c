package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/voucherpost/internal/adapter/http/dto"
	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/usecase"
)

type accountDirectoryStub struct {
	filter domain.AccountFilter
}

func (s *accountDirectoryStub) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error) {
	s.filter = filter
	if len(filter.IDs) == 1 && filter.IDs[0] == "missing" {
		return nil, nil
	}
	return []*domain.Account{{ID: "bank", Code: "1010", Name: "Main bank", CurrencyID: "GHS", Group: domain.GroupBank}}, nil
}

func TestAccountHandler_ListFiltersByGroup(t *testing.T) {
	dir := &accountDirectoryStub{}
	h := NewAccountHandler(usecase.NewAccountUseCase(dir))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/accounts?group=bank,%20cash&currency=ghs", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(dir.filter.Groups) != 2 || dir.filter.Groups[1] != domain.GroupCash || dir.filter.CurrencyID != "GHS" {
		t.Fatalf("unexpected filter: %+v", dir.filter)
	}

	var resp []dto.AccountResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp) != 1 || resp[0].Group != "BANK" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAccountHandler_ListRejectsUnknownGroup(t *testing.T) {
	h := NewAccountHandler(usecase.NewAccountUseCase(&accountDirectoryStub{}))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/accounts?group=equity", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccountHandler_GetNotFound(t *testing.T) {
	h := NewAccountHandler(usecase.NewAccountUseCase(&accountDirectoryStub{}))

	rec := httptest.NewRecorder()
	h.Get(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/accounts/missing", nil), "id", "missing"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
