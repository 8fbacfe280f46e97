package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	donationUC "fundbridge-backend/internal/usecase/donation"
)

type DonationHandler struct {
	uc *donationUC.Usecase
}

func NewDonationHandler(uc *donationUC.Usecase) *DonationHandler {
	return &DonationHandler{uc: uc}
}

type createDonationRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	IsAnonymous  bool            `json:"is_anonymous"`
	Message      string          `json:"message,omitempty" validate:"omitempty,max=500"`
	ExternalTxID string          `json:"external_tx_id,omitempty" validate:"omitempty,max=100"`
}

func (h *DonationHandler) Create(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}

	var req createDonationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	out, err := h.uc.Record(c.Request().Context(), actor, c.Param("id"), donationUC.CreateDonationInput{
		Amount:       req.Amount,
		IsAnonymous:  req.IsAnonymous,
		Message:      req.Message,
		ExternalTxID: req.ExternalTxID,
	})
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusCreated, out)
}

// Mine lists the caller's own donation history.
func (h *DonationHandler) Mine(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	out, total, err := h.uc.ListByDonor(c.Request().Context(), actor, queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		return fail(c, err)
	}
	return listResponse(c, out, total)
}

func (h *DonationHandler) MyTotal(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	total, err := h.uc.TotalDonated(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, map[string]any{"total_donated": total})
}
