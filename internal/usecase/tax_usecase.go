package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/voucherpost/internal/domain"
)

// TaxUseCase computes tax from tax code setup.
type TaxUseCase struct {
	taxRepo  TaxRepository
	cache    Cache
	cacheTTL time.Duration
}

// NewTaxUseCase creates a new TaxUseCase. cache may be nil.
func NewTaxUseCase(taxRepo TaxRepository, cache Cache, cacheTTL time.Duration) *TaxUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultTaxCacheTTL
	}
	return &TaxUseCase{taxRepo: taxRepo, cache: cache, cacheTTL: cacheTTL}
}

// ComputeTax applies a tax code to subtotal. An empty taxCodeID yields no tax.
func (uc *TaxUseCase) ComputeTax(ctx context.Context, subtotal decimal.Decimal, taxCodeID string) (domain.TaxBreakdown, error) {
	if subtotal.IsNegative() {
		return domain.TaxBreakdown{}, domain.NewValidationError("subtotal", "must not be negative")
	}
	if strings.TrimSpace(taxCodeID) == "" {
		return domain.NoTax(subtotal), nil
	}

	code, err := uc.GetTaxCode(ctx, taxCodeID)
	if err != nil {
		return domain.TaxBreakdown{}, err
	}
	return domain.ComputeTax(subtotal, code), nil
}

// GetTaxCode loads a tax code with its components.
func (uc *TaxUseCase) GetTaxCode(ctx context.Context, id string) (*domain.TaxCode, error) {
	key := "tax:" + id
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, key); err == nil {
			var code domain.TaxCode
			if json.Unmarshal(raw, &code) == nil {
				return &code, nil
			}
		}
	}

	code, err := uc.taxRepo.GetTaxCode(ctx, id)
	if err != nil {
		return nil, err
	}
	components, err := uc.taxRepo.GetTaxComponents(ctx, id)
	if err != nil {
		return nil, err
	}
	code.Components = components

	if uc.cache != nil {
		if raw, err := json.Marshal(code); err == nil {
			_ = uc.cache.Set(ctx, key, raw, uc.cacheTTL)
		}
	}
	return code, nil
}
