package api

import (
	"errors"
	"net/http"

	"gamelog/internal/apperr"

	"github.com/labstack/echo/v4"
)

// StatusOf 依錯誤種類對應 HTTP 狀態碼，未知錯誤為 500
func StatusOf(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError 以 {message} 回傳錯誤；內部錯誤只記 log，不把細節回給客戶端
func WriteError(c echo.Context, err error) error {
	return WriteErrorStatus(c, StatusOf(err), err)
}

// WriteErrorStatus 同 WriteError，但由呼叫端指定狀態碼
func WriteErrorStatus(c echo.Context, status int, err error) error {
	if status >= http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(status, ErrorResponse{Message: "internal server error"})
	}
	msg := err.Error()
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		msg = appErr.Msg
	}
	return c.JSON(status, ErrorResponse{Message: msg})
}
