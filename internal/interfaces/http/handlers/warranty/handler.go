// Package warranty exposes the warranty determination lookup over HTTP.
package warranty

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warrantly/internal/application/warranty/usecases"
	"warrantly/internal/shared/biztime"
	"warrantly/internal/shared/errors"
	"warrantly/internal/shared/logger"
	"warrantly/internal/shared/utils"
)

type Handler struct {
	resolveWarrantyUC usecases.ResolveWarrantyExecutor
	logger            logger.Interface
}

func NewHandler(resolveWarrantyUC usecases.ResolveWarrantyExecutor) *Handler {
	return &Handler{
		resolveWarrantyUC: resolveWarrantyUC,
		logger:            logger.NewLogger(),
	}
}

type ResolveRequest struct {
	SKU       string `json:"sku" validate:"required"`
	OrderDate string `json:"order_date" validate:"required"`
}

// Resolve answers the "is this SKU still under warranty" question without
// creating anything.
func (h *Handler) Resolve(c *gin.Context) {
	req := ResolveRequest{
		SKU:       c.Query("sku"),
		OrderDate: c.Query("order_date"),
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	orderDate, err := biztime.ParseDateInBizTimezone(req.OrderDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("order_date must be a YYYY-MM-DD date"))
		return
	}

	query := usecases.ResolveWarrantyQuery{SKU: req.SKU, OrderDate: orderDate}

	result, err := h.resolveWarrantyUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
