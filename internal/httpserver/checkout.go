package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/mock_ecom/internal/service"
	"github.com/Skotchmaster/mock_ecom/internal/transport"
	"github.com/Skotchmaster/mock_ecom/pkg/config"
	"github.com/Skotchmaster/mock_ecom/pkg/logging"
)

type CheckoutHTTP struct {
	Svc      *service.CheckoutService
	Payments *service.PaymentService
	Auth     Verifier
	Scope    string
}

func (h *CheckoutHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout", "scope", h.Scope)

	if h.Scope == config.CheckoutScopeUser {
		id, err := requireIdentity(c, h.Auth)
		if err != nil {
			return writeError(c, l, "checkout", err)
		}
		receipt, err := h.Svc.CheckoutForUser(ctx, id)
		if err != nil {
			return writeError(c, l, "checkout", err)
		}
		l.Info("order confirmed", "order_id", receipt.OrderID, "user_id", id.UserID)
		return c.JSON(http.StatusOK, receipt)
	}

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil || req.CartItems == nil {
		return badRequest(c, l, "checkout", "cartItems array is required", err)
	}

	receipt, err := h.Svc.Checkout(ctx, req.Snapshot())
	if err != nil {
		return writeError(c, l, "checkout", err)
	}
	l.Info("order confirmed", "order_id", receipt.OrderID)
	return c.JSON(http.StatusOK, receipt)
}

func (h *CheckoutHTTP) ProcessPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "process.payment")

	var req service.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, l, "process_payment", "Invalid payment data", err)
	}

	res, err := h.Payments.ProcessPayment(ctx, req)
	if err != nil {
		return writeError(c, l, "process_payment", err)
	}
	return c.JSON(http.StatusOK, res)
}
