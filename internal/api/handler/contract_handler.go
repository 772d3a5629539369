package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentia/contracts-system/internal/api/metrics"
	"github.com/talentia/contracts-system/internal/core/domain"
	"github.com/talentia/contracts-system/internal/core/ports"
)

// ContractHandler handles HTTP requests for contract lifecycle operations.
type ContractHandler struct {
	service  ports.ContractService
	notifier ports.Notifier
}

func NewContractHandler(service ports.ContractService, notifier ports.Notifier) *ContractHandler {
	return &ContractHandler{service: service, notifier: notifier}
}

// Create handles POST /v1/contracts.
//
// @Summary      Create a contract in draft
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createContractRequest  true  "Contract details"
// @Success      201   {object}  createContractResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/contracts [post]
func (h *ContractHandler) Create(c echo.Context) error {
	var req createContractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.CreateContract(c.Request().Context(), toCreateContractInput(req))
	if err != nil {
		return err
	}

	metrics.ContractsCreatedTotal.WithLabelValues(req.PaymentTerms).Inc()
	return c.JSON(http.StatusCreated, toCreateContractResponse(result))
}

// Get handles GET /v1/contracts/:id.
//
// @Summary      Get a contract by id
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contract id (e.g. CT-7A8B9C2D)"
// @Success      200  {object}  domain.Contract
// @Failure      404  {object}  map[string]string
// @Router       /v1/contracts/{id} [get]
func (h *ContractHandler) Get(c echo.Context) error {
	contract, err := h.service.GetContract(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contract)
}

// Update handles PATCH /v1/contracts/:id.
//
// @Summary      Partially update a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Contract id"
// @Param        body  body      updateContractRequest  true  "Fields to update"
// @Success      200   {object}  domain.Contract
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/contracts/{id} [patch]
func (h *ContractHandler) Update(c echo.Context) error {
	var req updateContractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	contract, err := h.service.UpdateContract(c.Request().Context(), c.Param("id"), toUpdateContractInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contract)
}

// Sign handles POST /v1/contracts/:id/signatures. The signer identity comes
// from the JWT claims, never from the request body.
//
// @Summary      Sign a contract as the authenticated user
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true   "Contract id"
// @Param        body  body      signContractRequest  false  "Optional wallet proof"
// @Success      200   {object}  signContractResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/contracts/{id}/signatures [post]
func (h *ContractHandler) Sign(c echo.Context) error {
	var req signContractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	input := ports.SignContractInput{
		ContractID: c.Param("id"),
		UserID:     claims.UserID,
		UserName:   claims.UserName,
		Role:       claims.Role,
		IPAddress:  c.RealIP(),
	}
	if req.Wallet != nil {
		input.Wallet = &ports.WalletProof{
			WalletAddress: req.Wallet.WalletAddress,
			Signature:     req.Wallet.Signature,
			ContentHash:   req.Wallet.ContentHash,
		}
	}

	result, err := h.service.SignContract(c.Request().Context(), input)
	if err != nil {
		metrics.SignaturesTotal.WithLabelValues("rejected").Inc()
		return err
	}
	metrics.SignaturesTotal.WithLabelValues(result.Status).Inc()

	if result.FullyExecuted {
		h.notifyFullyExecuted(c, result.ContractID)
	}

	return c.JSON(http.StatusOK, toSignContractResponse(result))
}

// notifyFullyExecuted emits the dual-recipient contract_signed pair. The
// signature already succeeded; notification problems only get logged.
func (h *ContractHandler) notifyFullyExecuted(c echo.Context, contractID string) {
	ctx := c.Request().Context()
	contract, err := h.service.GetContract(ctx, contractID)
	if err != nil {
		c.Logger().Warnf("contract %s signed but could not be reloaded for notification: %v", contractID, err)
		return
	}
	title := contract.Freelancer.Name + " – " + contract.Client.Name
	if err := h.notifier.ContractSigned(ctx, contract.Freelancer.ID, contract.Client.ID, title, contract.ID); err != nil {
		c.Logger().Warnf("contract %s signed but notification failed: %v", contractID, err)
		return
	}
	metrics.NotificationEventsTotal.WithLabelValues(string(domain.NotifContractSigned)).Inc()
}

// Complete handles POST /v1/contracts/:id/complete.
//
// @Summary      Mark an active contract as completed
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contract id"
// @Success      200  {object}  domain.Contract
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/contracts/{id}/complete [post]
func (h *ContractHandler) Complete(c echo.Context) error {
	ctx := c.Request().Context()
	contract, err := h.service.CompleteContract(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	title := contract.Freelancer.Name + " – " + contract.Client.Name
	if err := h.notifier.ProjectCompleted(ctx, contract.Freelancer.ID, contract.Client.ID, title, contract.ID); err != nil {
		c.Logger().Warnf("contract %s completed but notification failed: %v", contract.ID, err)
	} else {
		metrics.NotificationEventsTotal.WithLabelValues(string(domain.NotifProjectCompleted)).Inc()
	}

	return c.JSON(http.StatusOK, contract)
}

// Cancel handles POST /v1/contracts/:id/cancel.
//
// @Summary      Cancel a contract
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contract id"
// @Success      200  {object}  domain.Contract
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/contracts/{id}/cancel [post]
func (h *ContractHandler) Cancel(c echo.Context) error {
	contract, err := h.service.CancelContract(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contract)
}

// UpdateMilestone handles PATCH /v1/contracts/:id/milestones/:milestone_id.
//
// @Summary      Change a milestone's status
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id            path      string                  true  "Contract id"
// @Param        milestone_id  path      string                  true  "Milestone id"
// @Param        body          body      updateMilestoneRequest  true  "New status"
// @Success      200           {object}  domain.Milestone
// @Failure      404           {object}  map[string]string
// @Failure      422           {object}  map[string]string
// @Router       /v1/contracts/{id}/milestones/{milestone_id} [patch]
func (h *ContractHandler) UpdateMilestone(c echo.Context) error {
	var req updateMilestoneRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	milestone, err := h.service.UpdateMilestoneStatus(
		c.Request().Context(),
		c.Param("id"),
		c.Param("milestone_id"),
		domain.MilestoneStatus(req.Status),
	)
	if err != nil {
		return err
	}

	metrics.MilestoneTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, milestone)
}

// List handles GET /v1/contracts?freelancer_id=|client_id=.
//
// @Summary      List contracts by party
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        freelancer_id  query     string  false  "Filter by freelancer party id"
// @Param        client_id      query     string  false  "Filter by client party id"
// @Success      200            {array}   domain.Contract
// @Failure      400            {object}  map[string]string
// @Router       /v1/contracts [get]
func (h *ContractHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if freelancerID := c.QueryParam("freelancer_id"); freelancerID != "" {
		contracts, err := h.service.ListByFreelancer(ctx, freelancerID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, contracts)
	}
	if clientID := c.QueryParam("client_id"); clientID != "" {
		contracts, err := h.service.ListByClient(ctx, clientID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, contracts)
	}

	return echo.NewHTTPError(http.StatusBadRequest, "freelancer_id or client_id query parameter required")
}
