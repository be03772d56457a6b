package usecases

import "context"

type ResolveWarrantyExecutor interface {
	Execute(ctx context.Context, query ResolveWarrantyQuery) (*ResolveWarrantyResult, error)
}
