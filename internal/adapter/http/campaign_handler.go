package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	domain "fundbridge-backend/internal/domain/campaign"
	campaignUC "fundbridge-backend/internal/usecase/campaign"
	donationUC "fundbridge-backend/internal/usecase/donation"
)

type CampaignHandler struct {
	uc        *campaignUC.Usecase
	donations *donationUC.Usecase
}

func NewCampaignHandler(uc *campaignUC.Usecase, donations *donationUC.Usecase) *CampaignHandler {
	return &CampaignHandler{uc: uc, donations: donations}
}

type createCampaignRequest struct {
	Title       string          `json:"title" validate:"required,min=3,max=200"`
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category" validate:"required,oneof=TECHNOLOGY CREATIVE COMMUNITY EDUCATION HEALTHCARE ENVIRONMENT BUSINESS SOCIAL OTHER"`
	GoalAmount  decimal.Decimal `json:"goal_amount"`
	StartDate   time.Time       `json:"start_date" validate:"required"`
	EndDate     time.Time       `json:"end_date" validate:"required"`
}

type updateCampaignRequest struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description *string          `json:"description,omitempty"`
	GoalAmount  *decimal.Decimal `json:"goal_amount,omitempty"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
}

func (h *CampaignHandler) Create(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}

	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	out, err := h.uc.Create(c.Request().Context(), actor, campaignUC.CreateCampaignInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.Category(req.Category),
		GoalAmount:  req.GoalAmount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusCreated, out)
}

func (h *CampaignHandler) Update(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}

	var req updateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), actor, campaignUC.UpdateCampaignInput{
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *CampaignHandler) Publish(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	out, err := h.uc.Publish(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *CampaignHandler) Cancel(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	out, err := h.uc.Cancel(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *CampaignHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *CampaignHandler) List(c echo.Context) error {
	f := domain.ListFilter{
		Status:   domain.Status(c.QueryParam("status")),
		Category: domain.Category(c.QueryParam("category")),
		Search:   c.QueryParam("search"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 20),
	}
	out, total, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return fail(c, err)
	}
	return listResponse(c, out, total)
}

func (h *CampaignHandler) Stats(c echo.Context) error {
	out, err := h.uc.Stats(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

// Donations lists the most recent donations on a campaign.
func (h *CampaignHandler) Donations(c echo.Context) error {
	out, err := h.donations.ListByCampaign(c.Request().Context(), c.Param("id"), queryInt(c, "limit", 50))
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}
