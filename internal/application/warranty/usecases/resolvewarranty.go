// Package usecases exposes warranty determination as an application operation.
package usecases

import (
	"context"
	"time"

	"warrantly/internal/domain/warranty"
	"warrantly/internal/shared/errors"
	"warrantly/internal/shared/logger"
)

type ResolveWarrantyQuery struct {
	SKU       string
	OrderDate time.Time
}

type ResolveWarrantyResult struct {
	SKU            string
	ProductType    string
	DurationMonths int
	ExpiryDate     time.Time
	IsValid        bool
}

type ResolveWarrantyUseCase struct {
	resolver *warranty.Resolver
	logger   logger.Interface
}

func NewResolveWarrantyUseCase(resolver *warranty.Resolver, logger logger.Interface) *ResolveWarrantyUseCase {
	return &ResolveWarrantyUseCase{
		resolver: resolver,
		logger:   logger,
	}
}

func (uc *ResolveWarrantyUseCase) Execute(ctx context.Context, query ResolveWarrantyQuery) (*ResolveWarrantyResult, error) {
	var fields []string
	if query.SKU == "" {
		fields = append(fields, "sku is required")
	}
	if query.OrderDate.IsZero() {
		fields = append(fields, "order_date is required")
	}
	if len(fields) > 0 {
		return nil, errors.NewValidationErrors(fields)
	}

	det, err := uc.resolver.Resolve(ctx, query.SKU, query.OrderDate)
	if err != nil {
		uc.logger.Errorw("warranty determination failed", "sku", query.SKU, "error", err)
		return nil, err
	}

	return &ResolveWarrantyResult{
		SKU:            query.SKU,
		ProductType:    det.ProductType,
		DurationMonths: det.DurationMonths,
		ExpiryDate:     det.ExpiryDate,
		IsValid:        det.IsValid,
	}, nil
}
