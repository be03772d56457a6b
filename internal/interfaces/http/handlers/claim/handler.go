// Package claim exposes the claim lifecycle over HTTP.
package claim

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"warrantly/internal/application/claim/usecases"
	"warrantly/internal/interfaces/http/middleware"
	"warrantly/internal/shared/biztime"
	"warrantly/internal/shared/errors"
	"warrantly/internal/shared/logger"
	"warrantly/internal/shared/utils"
)

type Handler struct {
	createClaimUC  usecases.CreateClaimExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	addNoteUC      usecases.AddNoteExecutor
	getClaimUC     usecases.GetClaimExecutor
	listClaimsUC   usecases.ListClaimsExecutor
	logger         logger.Interface
}

func NewHandler(
	createClaimUC usecases.CreateClaimExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	addNoteUC usecases.AddNoteExecutor,
	getClaimUC usecases.GetClaimExecutor,
	listClaimsUC usecases.ListClaimsExecutor,
) *Handler {
	return &Handler{
		createClaimUC:  createClaimUC,
		changeStatusUC: changeStatusUC,
		addNoteUC:      addNoteUC,
		getClaimUC:     getClaimUC,
		listClaimsUC:   listClaimsUC,
		logger:         logger.NewLogger(),
	}
}

type CreateClaimItemRequest struct {
	SKU         string `json:"sku" binding:"required"`
	ProductName string `json:"product_name"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	Quantity    int    `json:"quantity"`
	Issue       string `json:"issue"`
}

type CreateClaimMediaRequest struct {
	Type      string `json:"type" binding:"required,oneof=photo video"`
	URL       string `json:"url" binding:"required"`
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
	ItemSKU   string `json:"item_sku"`
}

type CreateClaimRequest struct {
	OrderID       string                    `json:"order_id" binding:"required"`
	OrderDate     string                    `json:"order_date" binding:"required"`
	CustomerName  string                    `json:"customer_name" binding:"required"`
	CustomerEmail string                    `json:"customer_email"`
	CustomerPhone string                    `json:"customer_phone"`
	DeliveryDate  string                    `json:"delivery_date"`
	Items         []CreateClaimItemRequest  `json:"items" binding:"required,min=1"`
	Media         []CreateClaimMediaRequest `json:"media"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

type AddNoteRequest struct {
	Body string `json:"body" binding:"required"`
}

func (h *Handler) CreateClaim(c *gin.Context) {
	var req CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create claim", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("order_date must be an RFC 3339 timestamp or YYYY-MM-DD date"))
		return
	}

	cmd := usecases.CreateClaimCommand{
		OrderID:       req.OrderID,
		OrderDate:     orderDate,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	}

	if req.DeliveryDate != "" {
		deliveryDate, err := parseDate(req.DeliveryDate)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("delivery_date must be an RFC 3339 timestamp or YYYY-MM-DD date"))
			return
		}
		cmd.DeliveryDate = deliveryDate
	}

	// Staff-filed claims record the creator; customer channel requests
	// arrive without an actor and leave CreatedBy zero.
	if actor, ok := middleware.GetActor(c); ok {
		cmd.CreatedBy = actor.ID
	}

	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, usecases.CreateClaimItemInput{
			SKU:         item.SKU,
			ProductName: item.ProductName,
			CategoryID:  item.CategoryID,
			Quantity:    item.Quantity,
			Issue:       item.Issue,
		})
	}

	for _, media := range req.Media {
		cmd.Media = append(cmd.Media, usecases.CreateClaimMediaInput{
			Type:      media.Type,
			URL:       media.URL,
			Filename:  media.Filename,
			SizeBytes: media.SizeBytes,
			ItemSKU:   media.ItemSKU,
		})
	}

	result, err := h.createClaimUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Claim created successfully")
}

func (h *Handler) GetClaim(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("claim ID must be a positive integer"))
		return
	}

	result, err := h.getClaimUC.Execute(c.Request.Context(), usecases.GetClaimQuery{ClaimID: uint(id)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) GetClaimByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("claim number is required"))
		return
	}

	result, err := h.getClaimUC.Execute(c.Request.Context(), usecases.GetClaimQuery{ClaimNumber: number})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) ListClaims(c *gin.Context) {
	query := usecases.ListClaimsQuery{
		Status:  c.Query("status"),
		OrderID: c.Query("order_id"),
	}

	if categoryID := c.Query("category_id"); categoryID != "" {
		id, err := strconv.ParseUint(categoryID, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("category_id must be a positive integer"))
			return
		}
		query.CategoryID = uint(id)
	}

	if since := c.Query("since"); since != "" {
		t, err := parseDate(since)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("since must be an RFC 3339 timestamp or YYYY-MM-DD date"))
			return
		}
		query.Since = t
	}

	if page := c.Query("page"); page != "" {
		query.Page, _ = strconv.Atoi(page)
	}
	if pageSize := c.Query("page_size"); pageSize != "" {
		query.PageSize, _ = strconv.Atoi(pageSize)
	}

	result, err := h.listClaimsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Claims, result.Total, result.Page, result.PageSize)
}

func (h *Handler) ChangeStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("claim ID must be a positive integer"))
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "actor identity required")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ChangeStatusCommand{
		ClaimID:   uint(id),
		NewStatus: req.Status,
		Note:      req.Note,
		Actor:     actor,
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *Handler) AddNote(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("claim ID must be a positive integer"))
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "actor identity required")
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add note", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.AddNoteCommand{
		ClaimID: uint(id),
		Body:    req.Body,
		Actor:   actor,
	}

	result, err := h.addNoteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Note added successfully")
}

// parseDate accepts either a full RFC 3339 timestamp or a bare date, which is
// interpreted in the business timezone.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return biztime.ParseDateInBizTimezone(value)
}
