package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "contract_tracker/internal/adapter/http/dto/request"
	response "contract_tracker/internal/adapter/http/dto/response"
	"contract_tracker/internal/usecase"
	"contract_tracker/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)
	errInvalidContractID      = pkg.NewDomainErrorSimple("INVALID_CONTRACT_ID", "Contract id must be a number", http.StatusBadRequest)
	errContractNotFound       = pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	errConfirmationRequired   = pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Repeat the request with confirm=true", http.StatusPreconditionRequired)
)

// ContractHandler serves the dashboard, the creation form and the pipeline
// actions.
//
// Revoke and delete are destructive and only run with ?confirm=true.

type ContractHandler struct {
	contracts usecase.IContractStore
	form      usecase.IContractFormUseCase
	printer   usecase.IPrintUseCase
}

func NewContractHandler(contracts usecase.IContractStore, form usecase.IContractFormUseCase, printer usecase.IPrintUseCase) *ContractHandler {
	return &ContractHandler{contracts: contracts, form: form, printer: printer}
}

// Dashboard godoc
// @Summary      Contract dashboard
// @Description  Contracts matching the status filter, with per-status counts and available actions
// @Tags         contracts
// @Produce      json
// @Param        status  query     string  false  "All, Created, Approved, Sent, Signed, Locked or Revoked"
// @Success      200     {object}  response.DashboardResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /dashboard [get]
func (h *ContractHandler) Dashboard(c *gin.Context) {
	filter, err := usecase.ParseStatusFilter(c.Query("status"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result := h.contracts.Filter(filter)
	c.JSON(http.StatusOK, response.FromDashboard(filter, result, h.contracts.List()))
}

// ListContracts godoc
// @Summary      List contracts
// @Tags         contracts
// @Produce      json
// @Success      200  {object}  response.ContractListResponse
// @Router       /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromContracts(h.contracts.List()))
}

// GetContract godoc
// @Summary      Get a contract
// @Tags         contracts
// @Produce      json
// @Param        id   path      int  true  "Contract id"
// @Success      200  {object}  response.ContractResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, ok := h.lookup(c)
	if !ok {
		return
	}
	contract, _ := h.contracts.Get(id)
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// NewContractForm godoc
// @Summary      Contract creation form
// @Description  Blueprint options, contract types and, with ?blueprint=, the pre-selected blueprint and its initial values
// @Tags         contracts
// @Produce      json
// @Param        blueprint  query     string  false  "Blueprint id to pre-select"
// @Success      200        {object}  response.ContractFormResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /contracts/new [get]
func (h *ContractHandler) NewContractForm(c *gin.Context) {
	form, err := h.form.Form(c.Query("blueprint"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContractForm(form))
}

// CreateContract godoc
// @Summary      Create a contract
// @Description  Submits the creation form, from a blueprint or from the standard fields. New contracts start at Created.
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ContractRequest  true  "Contract form"
// @Success      201      {object}  response.ContractResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	sub, ok := bindSubmission(c)
	if !ok {
		return
	}

	contract, err := h.form.Submit(c.Request.Context(), sub)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromContract(contract))
}

// PreviewContract godoc
// @Summary      Print preview of an unsaved contract
// @Tags         contracts
// @Accept       json
// @Produce      html
// @Produce      plain
// @Param        format   query     string                   false  "html (default) or text"
// @Param        payload  body      request.ContractRequest  true   "Contract form"
// @Success      200      {string}  string
// @Failure      400      {object}  pkg.HTTPError
// @Router       /contracts/preview [post]
func (h *ContractHandler) PreviewContract(c *gin.Context) {
	sub, ok := bindSubmission(c)
	if !ok {
		return
	}

	rendered, err := h.printer.RenderPreview(c.Request.Context(), sub, c.Query("format"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, rendered.ContentType, rendered.Body)
}

// AdvanceContract godoc
// @Summary      Advance a contract to its next stage
// @Description  Locked and Revoked contracts are returned unchanged.
// @Tags         contracts
// @Produce      json
// @Param        id   path      int  true  "Contract id"
// @Success      200  {object}  response.ContractResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /contracts/{id}/advance [post]
func (h *ContractHandler) AdvanceContract(c *gin.Context) {
	h.runAction(c, false, h.contracts.Advance)
}

// RevokeContract godoc
// @Summary      Revoke a contract
// @Tags         contracts
// @Produce      json
// @Param        id       path      int   true  "Contract id"
// @Param        confirm  query     bool  true  "Must be true"
// @Success      200      {object}  response.ContractResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      428      {object}  pkg.HTTPError
// @Router       /contracts/{id}/revoke [post]
func (h *ContractHandler) RevokeContract(c *gin.Context) {
	h.runAction(c, true, h.contracts.Revoke)
}

// DeleteContract godoc
// @Summary      Delete a contract
// @Tags         contracts
// @Param        id       path  int   true  "Contract id"
// @Param        confirm  query bool  true  "Must be true"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      428  {object}  pkg.HTTPError
// @Router       /contracts/{id} [delete]
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	if !confirmed(c) {
		return
	}
	id, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := h.contracts.Delete(c.Request.Context(), id); err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// PrintContract godoc
// @Summary      Printable contract
// @Tags         contracts
// @Produce      html
// @Produce      plain
// @Param        id      path      int     true   "Contract id"
// @Param        format  query     string  false  "html (default) or text"
// @Success      200     {string}  string
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /contracts/{id}/print [get]
func (h *ContractHandler) PrintContract(c *gin.Context) {
	id, ok := parseContractID(c)
	if !ok {
		return
	}
	rendered, err := h.printer.RenderContract(c.Request.Context(), id, c.Query("format"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, rendered.ContentType, rendered.Body)
}

func (h *ContractHandler) runAction(c *gin.Context, destructive bool, action func(ctx context.Context, id int) error) {
	if destructive && !confirmed(c) {
		return
	}
	id, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := action(c.Request.Context(), id); err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	contract, _ := h.contracts.Get(id)
	c.JSON(http.StatusOK, response.FromContract(contract))
}

// lookup resolves the :id param to an existing contract, writing the error
// response when it cannot.
func (h *ContractHandler) lookup(c *gin.Context) (int, bool) {
	id, ok := parseContractID(c)
	if !ok {
		return 0, false
	}
	if _, found := h.contracts.Get(id); !found {
		c.JSON(errContractNotFound.HTTPStatus, errContractNotFound.ToHTTPError())
		return 0, false
	}
	return id, true
}

func parseContractID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidContractID.HTTPStatus, errInvalidContractID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func bindSubmission(c *gin.Context) (usecase.ContractSubmission, bool) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return usecase.ContractSubmission{}, false
	}
	if err := payload.Validate(); err != nil {
		appErr := errInvalidContractPayload.WithMessage(err.Error())
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return usecase.ContractSubmission{}, false
	}
	return payload.ToSubmission(), true
}

// confirmed reports whether the request carries confirm=true and writes the
// 428 response when it does not.
func confirmed(c *gin.Context) bool {
	if ok, _ := strconv.ParseBool(c.Query("confirm")); ok {
		return true
	}
	c.JSON(errConfirmationRequired.HTTPStatus, errConfirmationRequired.ToHTTPError())
	return false
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContractNameRequired),
		errors.Is(err, usecase.ErrSignatureRequired),
		errors.Is(err, usecase.ErrInvalidContractType),
		errors.Is(err, usecase.ErrRequiredFieldMissing):
		return pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusFilter):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_FILTER", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return errContractNotFound
	case errors.Is(err, usecase.ErrBlueprintNotFound):
		return errBlueprintNotFound
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
