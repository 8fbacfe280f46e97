package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	domain "fundbridge-backend/internal/domain/loan"
	loanUC "fundbridge-backend/internal/usecase/loan"
)

type LoanHandler struct {
	uc *loanUC.Usecase
}

func NewLoanHandler(uc *loanUC.Usecase) *LoanHandler {
	return &LoanHandler{uc: uc}
}

type requestLoanRequest struct {
	Title           string          `json:"title" validate:"required,min=3,max=200"`
	Description     string          `json:"description" validate:"required"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	Duration        int             `json:"duration" validate:"required,min=1,max=360"`
	Purpose         string          `json:"purpose" validate:"required,max=500"`
}

type fundLoanRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	ExternalTxID string          `json:"external_tx_id,omitempty" validate:"omitempty,max=100"`
}

type recordRepaymentRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	ExternalTxID string          `json:"external_tx_id,omitempty" validate:"omitempty,max=100"`
}

func (h *LoanHandler) Request(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}

	var req requestLoanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	out, err := h.uc.Request(c.Request().Context(), actor, loanUC.RequestLoanInput{
		Title:           req.Title,
		Description:     req.Description,
		RequestedAmount: req.RequestedAmount,
		InterestRate:    req.InterestRate,
		Duration:        req.Duration,
		Purpose:         req.Purpose,
	})
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusCreated, out)
}

func (h *LoanHandler) Fund(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}

	var req fundLoanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	out, err := h.uc.Fund(c.Request().Context(), c.Param("id"), actor, loanUC.FundLoanInput{
		Amount:       req.Amount,
		ExternalTxID: req.ExternalTxID,
	})
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusCreated, out)
}

func (h *LoanHandler) RecordRepayment(c echo.Context) error {
	if _, ok := actorID(c); !ok {
		return missingActor(c)
	}

	var req recordRepaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	out, err := h.uc.RecordRepayment(c.Request().Context(), c.Param("id"), c.Param("repaymentId"), loanUC.RecordRepaymentInput{
		Amount:       req.Amount,
		ExternalTxID: req.ExternalTxID,
	})
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *LoanHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *LoanHandler) List(c echo.Context) error {
	out, total, err := h.uc.List(c.Request().Context(),
		domain.Status(c.QueryParam("status")), queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		return fail(c, err)
	}
	return listResponse(c, out, total)
}

// Mine lists the caller's own loans.
func (h *LoanHandler) Mine(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	out, total, err := h.uc.ListByBorrower(c.Request().Context(), actor, queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		return fail(c, err)
	}
	return listResponse(c, out, total)
}

func (h *LoanHandler) Fundings(c echo.Context) error {
	out, err := h.uc.Fundings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *LoanHandler) Repayments(c echo.Context) error {
	out, err := h.uc.Repayments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}
