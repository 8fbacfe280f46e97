package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"fundbridge-backend/internal/domain/apperr"
)

// ---- helpers ----

// actorID pulls the authenticated caller's id from the X-User-Id
// header. Token verification happens upstream of this service; by the
// time a request lands here the gateway has resolved it to a user id.
func actorID(c echo.Context) (string, bool) {
	v := strings.TrimSpace(c.Request().Header.Get("X-User-Id"))
	if !reHex32.MatchString(v) {
		return "", false
	}
	return v, true
}

func missingActor(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid X-User-Id header"})
}

func dataResponse(c echo.Context, code int, v any) error {
	return c.JSON(code, map[string]any{"data": v})
}

func listResponse(c echo.Context, v any, total int64) error {
	return c.JSON(http.StatusOK, map[string]any{"data": v, "total": total})
}

// fail translates a usecase error into the JSON error envelope.
func fail(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindForbidden:
		status = http.StatusForbidden
	case apperr.KindInvalidState, apperr.KindInvalidAmount, apperr.KindExpired:
		status = http.StatusBadRequest
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindValidation:
		status = http.StatusUnprocessableEntity
	}
	msg := err.Error()
	if status == http.StatusInternalServerError {
		// don't leak internals
		msg = "internal error"
	}
	return c.JSON(status, ErrorResponse{Error: msg, Code: apperr.CodeOf(err)})
}

func queryInt(c echo.Context, name string, def int) int {
	if v := c.QueryParam(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
