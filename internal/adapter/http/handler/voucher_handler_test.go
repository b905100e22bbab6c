package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/voucherpost/internal/adapter/http/dto"
	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/usecase"
)

type voucherServiceStub struct {
	buildFn  func(ctx context.Context, input usecase.BuildLinesInput) ([]domain.VoucherLine, error)
	postFn   func(ctx context.Context, input usecase.PostVoucherInput) (*domain.Voucher, error)
	submitFn func(ctx context.Context, input usecase.SubmitFormInput) (*domain.Voucher, error)
	getFn    func(ctx context.Context, id string) (*domain.Voucher, error)
	listFn   func(ctx context.Context, input usecase.ListVouchersInput) ([]*domain.Voucher, error)
}

func (s *voucherServiceStub) BuildLines(ctx context.Context, input usecase.BuildLinesInput) ([]domain.VoucherLine, error) {
	return s.buildFn(ctx, input)
}

func (s *voucherServiceStub) Validate(lines []domain.VoucherLine) error {
	return domain.ValidateLines(lines)
}

func (s *voucherServiceStub) PostVoucher(ctx context.Context, input usecase.PostVoucherInput) (*domain.Voucher, error) {
	return s.postFn(ctx, input)
}

func (s *voucherServiceStub) SubmitForm(ctx context.Context, input usecase.SubmitFormInput) (*domain.Voucher, error) {
	return s.submitFn(ctx, input)
}

func (s *voucherServiceStub) GetVoucher(ctx context.Context, id string) (*domain.Voucher, error) {
	return s.getFn(ctx, id)
}

func (s *voucherServiceStub) ListVouchers(ctx context.Context, input usecase.ListVouchersInput) ([]*domain.Voucher, error) {
	return s.listFn(ctx, input)
}

func postedVoucher() *domain.Voucher {
	now := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	return &domain.Voucher{
		ID:           "v-1",
		Type:         domain.VoucherTypePayment,
		VoucherNo:    "PV-000001",
		Date:         now,
		CurrencyID:   "GHS",
		ExchangeRate: decimal.NewFromInt(1),
		Lines: []domain.VoucherLine{
			domain.DebitLine("rent", "", decimal.NewFromInt(300), ""),
			domain.CreditLine("bank", "", decimal.NewFromInt(300), ""),
		},
		Status:    domain.VoucherStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestVoucherHandler_Post_Success(t *testing.T) {
	var captured usecase.PostVoucherInput
	h := NewVoucherHandler(&voucherServiceStub{
		postFn: func(ctx context.Context, input usecase.PostVoucherInput) (*domain.Voucher, error) {
			captured = input
			return postedVoucher(), nil
		},
	})

	body := `{"voucher_type":"PV","voucher_date":"2024-03-05","lines":[
		{"account_id":"rent","debit":"300"},{"account_id":"bank","credit":"300"}]}`
	rec := httptest.NewRecorder()
	h.Post(rec, httptest.NewRequest(http.MethodPost, "/vouchers", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Type != domain.VoucherTypePayment || len(captured.Lines) != 2 {
		t.Fatalf("unexpected input: %+v", captured)
	}

	var resp dto.VoucherResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.VoucherNo != "PV-000001" || resp.TotalDebit != "300.00" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestVoucherHandler_Post_RejectsInvalidHeader(t *testing.T) {
	h := NewVoucherHandler(&voucherServiceStub{
		postFn: func(ctx context.Context, input usecase.PostVoucherInput) (*domain.Voucher, error) {
			t.Fatalf("use case must not be called")
			return nil, nil
		},
	})

	body := `{"voucher_type":"ZZ","voucher_date":"2024-03-05","lines":[]}`
	rec := httptest.NewRecorder()
	h.Post(rec, httptest.NewRequest(http.MethodPost, "/vouchers", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp dto.ErrorResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Fields["voucher_type"] != "oneof" {
		t.Fatalf("expected voucher_type field error, got %+v", resp)
	}
}

func TestVoucherHandler_Post_UnbalancedIs422(t *testing.T) {
	h := NewVoucherHandler(&voucherServiceStub{
		postFn: func(ctx context.Context, input usecase.PostVoucherInput) (*domain.Voucher, error) {
			return nil, domain.ValidateLines(input.Lines)
		},
	})

	body := `{"voucher_type":"JV","voucher_date":"2024-03-05","lines":[
		{"account_id":"a","debit":"10"},{"account_id":"b","credit":"9"}]}`
	rec := httptest.NewRecorder()
	h.Post(rec, httptest.NewRequest(http.MethodPost, "/vouchers", strings.NewReader(body)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestVoucherHandler_SubmitForm(t *testing.T) {
	var captured usecase.SubmitFormInput
	h := NewVoucherHandler(&voucherServiceStub{
		submitFn: func(ctx context.Context, input usecase.SubmitFormInput) (*domain.Voucher, error) {
			captured = input
			return postedVoucher(), nil
		},
	})

	body := `{"voucher_type":"PV","voucher_date":"2024-03-05","tax_code_id":"std",
		"form":{"party_account_id":"supplier","counter_account_id":"bank","items":[{"account_id":"rent","amount":"300"}]}}`
	rec := httptest.NewRecorder()
	h.SubmitForm(rec, httptest.NewRequest(http.MethodPost, "/vouchers/forms", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.TaxCodeID != "std" || captured.Form.CounterAccountID != "bank" || len(captured.Form.Items) != 1 {
		t.Fatalf("unexpected input: %+v", captured)
	}
}

func TestVoucherHandler_BuildLines(t *testing.T) {
	h := NewVoucherHandler(&voucherServiceStub{
		buildFn: func(ctx context.Context, input usecase.BuildLinesInput) ([]domain.VoucherLine, error) {
			return domain.BuildLines(input.Type, input.Form)
		},
	})

	body := `{"voucher_type":"CV","form":{"from_account_id":"cash","counter_account_id":"bank",
		"items":[{"amount":"50"},{"amount":"25"}]}}`
	rec := httptest.NewRecorder()
	h.BuildLines(rec, httptest.NewRequest(http.MethodPost, "/vouchers/build-lines", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp dto.BuiltLinesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TotalDebit != resp.TotalCredit || resp.TotalDebit != "75.00" {
		t.Fatalf("unexpected totals: %+v", resp)
	}
}

func TestVoucherHandler_Validate(t *testing.T) {
	h := NewVoucherHandler(&voucherServiceStub{})

	tests := []struct {
		name      string
		body      string
		valid     bool
		wantDelta string
	}{
		{"balanced", `{"lines":[{"account_id":"a","debit":"10"},{"account_id":"b","credit":"10"}]}`, true, ""},
		{"unbalanced", `{"lines":[{"account_id":"a","debit":"10"},{"account_id":"b","credit":"7.5"}]}`, false, "2.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Validate(rec, httptest.NewRequest(http.MethodPost, "/vouchers/validate", strings.NewReader(tt.body)))

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			var resp dto.ValidationResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Valid != tt.valid {
				t.Fatalf("valid = %v, want %v (%+v)", resp.Valid, tt.valid, resp)
			}
			if tt.wantDelta != "" && (resp.Delta == nil || *resp.Delta != tt.wantDelta) {
				t.Fatalf("expected delta %s, got %+v", tt.wantDelta, resp.Delta)
			}
		})
	}
}

func TestVoucherHandler_Get(t *testing.T) {
	h := NewVoucherHandler(&voucherServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Voucher, error) {
			if id != "v-1" {
				return nil, domain.ErrVoucherNotFound
			}
			return postedVoucher(), nil
		},
	})

	rec := httptest.NewRecorder()
	h.Get(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/vouchers/v-1", nil), "id", "v-1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Get(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/vouchers/nope", nil), "id", "nope"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestVoucherHandler_List(t *testing.T) {
	var captured usecase.ListVouchersInput
	h := NewVoucherHandler(&voucherServiceStub{
		listFn: func(ctx context.Context, input usecase.ListVouchersInput) ([]*domain.Voucher, error) {
			captured = input
			return []*domain.Voucher{postedVoucher()}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/vouchers?type=PV&limit=5&offset=10", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Type != domain.VoucherTypePayment || captured.Limit != 5 || captured.Offset != 10 {
		t.Fatalf("unexpected list input: %+v", captured)
	}
}
