package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domain "fundbridge-backend/internal/domain/user"
	userUC "fundbridge-backend/internal/usecase/user"
)

type UserHandler struct {
	uc *userUC.Usecase
}

func NewUserHandler(uc *userUC.Usecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type registerRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	FirstName string   `json:"first_name" validate:"required,max=100"`
	LastName  string   `json:"last_name" validate:"required,max=100"`
	Roles     []string `json:"roles" validate:"required,min=1,dive,oneof=ADMIN CAMPAIGN_CREATOR LENDER BORROWER"`
}

type updateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	roles := make([]domain.Role, 0, len(req.Roles))
	for _, r := range req.Roles {
		roles = append(roles, domain.Role(r))
	}

	out, err := h.uc.Register(c.Request().Context(), userUC.RegisterInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Roles:     roles,
	})
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusCreated, out)
}

// Me returns the caller's own profile.
func (h *UserHandler) Me(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	out, err := h.uc.Get(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

func (h *UserHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}

// MyTransactions lists the caller's ledger history.
func (h *UserHandler) MyTransactions(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}
	out, total, err := h.uc.Transactions(c.Request().Context(), actor, queryInt(c, "page", 1), queryInt(c, "limit", 20))
	if err != nil {
		return fail(c, err)
	}
	return listResponse(c, out, total)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return missingActor(c)
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	out, err := h.uc.UpdateProfile(c.Request().Context(), actor, userUC.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return fail(c, err)
	}
	return dataResponse(c, http.StatusOK, out)
}
