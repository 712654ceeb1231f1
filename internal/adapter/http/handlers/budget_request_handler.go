package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "budget_service/internal/adapter/http/dto/request"
	response "budget_service/internal/adapter/http/dto/response"
	"budget_service/internal/adapter/http/middleware"
	"budget_service/internal/infrastructure/metrics"
	"budget_service/internal/usecase"
	"budget_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetRequestPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_REQUEST_INPUT", "Invalid budget request payload", http.StatusBadRequest)
	errMissingCaller               = pkg.NewDomainErrorSimple("UNAUTHORIZED", "X-User-ID header is required", http.StatusUnauthorized)
)

// BudgetRequestHandler handles HTTP requests for budget requests.
type BudgetRequestHandler struct {
	usecase usecase.IBudgetRequestUseCase
	metrics *metrics.Metrics
}

func NewBudgetRequestHandler(uc usecase.IBudgetRequestUseCase, m *metrics.Metrics) *BudgetRequestHandler {
	return &BudgetRequestHandler{usecase: uc, metrics: m}
}

// CreateBudgetRequest godoc
// @Summary      Create a budget request
// @Description  Validates the answers against the catalog and computes amount and hours from team rates.
// @Tags         budget-requests
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateBudgetRequestRequest  true  "Client answers"
// @Success      201   {object}  response.BudgetRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /budget-requests [post]
func (h *BudgetRequestHandler) CreateBudgetRequest(c *gin.Context) {
	var payload request.CreateBudgetRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetRequestPayload.HTTPStatus, errInvalidBudgetRequestPayload.ToHTTPError())
		return
	}

	br, err := h.usecase.CreateBudgetRequest(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	h.metrics.BudgetRequestsCreated.Inc()

	c.JSON(http.StatusCreated, response.FromBudgetRequest(br))
}

// ApproveBudgetRequest signs the stage matching the caller's role.
//
// @Summary      Approve a budget request
// @Tags         budget-requests
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                               true  "Caller id"
// @Param        body       body      request.ApproveBudgetRequestRequest  true  "Approval"
// @Success      200        {object}  response.BudgetRequestResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      401        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Router       /budget-requests/approve [patch]
func (h *BudgetRequestHandler) ApproveBudgetRequest(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var payload request.ApproveBudgetRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetRequestPayload.HTTPStatus, errInvalidBudgetRequestPayload.ToHTTPError())
		return
	}

	br, err := h.usecase.ApproveBudgetRequest(c.Request.Context(), userID, payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	h.metrics.ObserveApproval(string(br.Status))

	c.JSON(http.StatusOK, response.FromBudgetRequest(br))
}

// FindAllBudgetRequests godoc
// @Summary      List budget requests awaiting the caller's role
// @Tags         budget-requests
// @Produce      json
// @Param        X-User-ID  header  string  true  "Caller id"
// @Success      200  {array}   response.BudgetRequestSummaryResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /budget-requests [get]
func (h *BudgetRequestHandler) FindAllBudgetRequests(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	items, err := h.usecase.FindAllBudgetRequests(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRequestSummaries(items))
}

// FindBudgetRequestByID godoc
// @Summary      Get a budget request with its client and answers
// @Tags         budget-requests
// @Produce      json
// @Param        id   path      string  true  "Budget request id"
// @Success      200  {object}  response.BudgetRequestDetailsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /budget-requests/{id} [get]
func (h *BudgetRequestHandler) FindBudgetRequestByID(c *gin.Context) {
	details, err := h.usecase.FindBudgetRequestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRequestDetails(details))
}

// UpdateBudgetRequest godoc
// @Summary      Override answer rates or hours and recompute totals
// @Tags         budget-requests
// @Accept       json
// @Produce      json
// @Param        id    path      string                              true  "Budget request id"
// @Param        body  body      request.UpdateBudgetRequestRequest  true  "Answer updates"
// @Success      200   {object}  response.BudgetRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /budget-requests/{id} [patch]
func (h *BudgetRequestHandler) UpdateBudgetRequest(c *gin.Context) {
	var payload request.UpdateBudgetRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetRequestPayload.HTTPStatus, errInvalidBudgetRequestPayload.ToHTTPError())
		return
	}

	br, err := h.usecase.UpdateBudgetRequest(c.Request.Context(), c.Param("id"), payload.ToUpdates())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRequest(br))
}

// DeleteBudgetRequest godoc
// @Summary      Delete a budget request and its answers
// @Tags         budget-requests
// @Param        id   path  string  true  "Budget request id"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /budget-requests/{id} [delete]
func (h *BudgetRequestHandler) DeleteBudgetRequest(c *gin.Context) {
	if err := h.usecase.DeleteBudgetRequestByID(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func callerID(c *gin.Context) (string, bool) {
	userID := strings.TrimSpace(c.GetHeader(middleware.UserIDHeader))
	if userID == "" {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return "", false
	}
	return userID, true
}

func writeError(c *gin.Context, err error) {
	appErr := mapBudgetRequestError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[budget][handler] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapBudgetRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBudgetRequestNotFound), errors.Is(err, usecase.ErrNoBudgetRequestFound):
		return pkg.NewDomainError("BUDGET_REQUEST_NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrRoleNotAuthorized):
		return pkg.NewDomainError("ROLE_NOT_AUTHORIZED", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, pkg.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, pkg.ErrInvalidArgument):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, pkg.ErrConflict):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
