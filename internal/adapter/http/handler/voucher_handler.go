package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/voucherpost/internal/adapter/http/dto"
	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/usecase"
)

// VoucherService defines the behavior needed by VoucherHandler.
type VoucherService interface {
	BuildLines(ctx context.Context, input usecase.BuildLinesInput) ([]domain.VoucherLine, error)
	Validate(lines []domain.VoucherLine) error
	PostVoucher(ctx context.Context, input usecase.PostVoucherInput) (*domain.Voucher, error)
	SubmitForm(ctx context.Context, input usecase.SubmitFormInput) (*domain.Voucher, error)
	GetVoucher(ctx context.Context, id string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, input usecase.ListVouchersInput) ([]*domain.Voucher, error)
}

// VoucherHandler handles voucher entry and posting.
type VoucherHandler struct {
	voucherUC VoucherService
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(voucherUC VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherUC: voucherUC}
}

// Post posts pre-built lines as a draft voucher.
func (h *VoucherHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req dto.PostVoucherRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid voucher", err)
		return
	}

	voucher, err := h.voucherUC.PostVoucher(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to post voucher", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.VoucherFromDomain(voucher))
}

// SubmitForm builds lines from a voucher form and posts them.
func (h *VoucherHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitFormRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid voucher form", err)
		return
	}

	voucher, err := h.voucherUC.SubmitForm(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to post voucher", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.VoucherFromDomain(voucher))
}

// BuildLines previews the lines a form would produce.
func (h *VoucherHandler) BuildLines(w http.ResponseWriter, r *http.Request) {
	var req dto.BuildLinesRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid voucher form", err)
		return
	}

	lines, err := h.voucherUC.BuildLines(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to build lines", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BuiltLinesFromDomain(lines))
}

// Validate checks lines against the double-entry rules. Rule violations
// are reported in the body with status 200.
func (h *VoucherHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateLinesRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	lines, err := req.ToDomain()
	if err != nil {
		writeDomainError(w, "invalid lines", err)
		return
	}

	err = h.voucherUC.Validate(lines)
	if err == nil {
		writeJSON(w, http.StatusOK, dto.ValidationResponse{Valid: true})
		return
	}

	resp := dto.ValidationResponse{Valid: false, Error: err.Error()}

	var balance *domain.BalanceError
	var structure *domain.StructureError
	switch {
	case errors.As(err, &balance):
		debit, credit, delta := balance.TotalDebit.StringFixed(2), balance.TotalCredit.StringFixed(2), balance.Delta().StringFixed(2)
		resp.TotalDebit, resp.TotalCredit, resp.Delta = &debit, &credit, &delta
	case errors.As(err, &structure):
		if structure.Line >= 0 {
			line := structure.Line
			resp.Line = &line
		}
	default:
		writeDomainError(w, "failed to validate lines", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get retrieves a voucher by ID.
func (h *VoucherHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	voucher, err := h.voucherUC.GetVoucher(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to get voucher", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.VoucherFromDomain(voucher))
}

// List lists vouchers, optionally filtered by ?type=.
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListVouchersInput{
		Type:   domain.VoucherType(r.URL.Query().Get("type")),
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	}

	vouchers, err := h.voucherUC.ListVouchers(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to list vouchers", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.VouchersFromDomain(vouchers))
}
