package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/mock_ecom/internal/service"
	"github.com/Skotchmaster/mock_ecom/internal/transport"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrPaymentDeclined):
		return http.StatusPaymentRequired
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {"error": msg} and logs it under op.
func writeError(c echo.Context, l *slog.Logger, op string, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		l.Error(op+"_error", "status", status, "error", err)
	} else {
		l.Warn(op+"_error", "status", status, "reason", err.Error())
	}
	return c.JSON(status, transport.ErrorResponse{Error: err.Error()})
}

func badRequest(c echo.Context, l *slog.Logger, op, msg string, cause error) error {
	l.Warn(op+"_error", "status", http.StatusBadRequest, "reason", msg, "error", cause)
	return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: msg})
}

// ErrorHandler keeps the {"error": msg} shape for errors raised outside handlers.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	msg := http.StatusText(status)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(status)
		}
	} else {
		status = statusFor(err)
		msg = err.Error()
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, transport.ErrorResponse{Error: msg})
}
