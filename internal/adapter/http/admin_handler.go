package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	adminUC "fundbridge-backend/internal/usecase/admin"
	loanUC "fundbridge-backend/internal/usecase/loan"
)

type AdminHandler struct {
	uc    *adminUC.Usecase
	loans *loanUC.Usecase
}

func NewAdminHandler(uc *adminUC.Usecase, loans *loanUC.Usecase) *AdminHandler {
	return &AdminHandler{uc: uc, loans: loans}
}

type reasonRequest struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type decideLoanRequest struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	out, err := h.uc.Dashboard(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *AdminHandler) PendingCampaigns(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	out, err := h.uc.PendingCampaigns(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *AdminHandler) PendingLoans(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	out, err := h.uc.PendingLoans(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *AdminHandler) ApproveCampaign(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	out, err := h.uc.ApproveCampaign(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *AdminHandler) RejectCampaign(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	var req reasonRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	out, err := h.uc.RejectCampaign(c.Request().Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

// DecideLoan settles the approve/reject decision on a requested loan.
func (h *AdminHandler) DecideLoan(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	var req decideLoanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	out, err := h.loans.Decide(c.Request().Context(), c.Param("id"), actor, loanUC.DecideLoanInput{
		Approved: req.Approved,
		Reason:   req.Reason,
	})
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *AdminHandler) BlockUser(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	var req reasonRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	out, err := h.uc.BlockUser(c.Request().Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *AdminHandler) UnblockUser(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	out, err := h.uc.UnblockUser(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *AdminHandler) MarkLoanDefaulted(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	var req reasonRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	out, err := h.uc.MarkLoanDefaulted(c.Request().Context(), actor, c.Param("id"), req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *AdminHandler) AuditLogs(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	out, total, err := h.uc.AuditLogs(c.Request().Context(), actor, queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		return fail(c, err)
	}
	return listResponse(c, out, total)
}
