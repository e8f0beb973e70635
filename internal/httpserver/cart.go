package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/mock_ecom/internal/service"
	"github.com/Skotchmaster/mock_ecom/internal/transport"
	"github.com/Skotchmaster/mock_ecom/pkg/logging"
)

type CartHTTP struct {
	Svc  *service.CartService
	Auth Verifier
}

func lineID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.cart")

	id, err := requireIdentity(c, h.Auth)
	if err != nil {
		return writeError(c, l, "get_cart", err)
	}

	view, err := h.Svc.GetCart(ctx, id)
	if err != nil {
		return writeError(c, l, "get_cart", err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "add.cart")

	id, err := requireIdentity(c, h.Auth)
	if err != nil {
		return writeError(c, l, "add_to_cart", err)
	}

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, l, "add_to_cart", "productId and qty are required", err)
	}

	item, err := h.Svc.AddItem(ctx, id, req.ProductID, req.Qty)
	if err != nil {
		return writeError(c, l, "add_to_cart", err)
	}

	l.Info("item added to cart", "user_id", id.UserID, "line_id", item.ID)
	return c.JSON(http.StatusOK, transport.AddToCartResponse{ID: item.ID, ProductID: item.ProductID, Qty: item.Quantity})
}

func (h *CartHTTP) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "update.cart")

	id, err := requireIdentity(c, h.Auth)
	if err != nil {
		return writeError(c, l, "update_cart", err)
	}

	var req transport.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, l, "update_cart", "qty must be at least 1", err)
	}
	if req.Qty < 1 {
		return badRequest(c, l, "update_cart", "qty must be at least 1", nil)
	}
	line, ok := lineID(c)
	if !ok {
		return writeError(c, l, "update_cart", &service.Error{Kind: service.ErrNotFound, Msg: "Item not found"})
	}

	if err := h.Svc.UpdateQuantity(ctx, id, line, req.Qty); err != nil {
		return writeError(c, l, "update_cart", err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Quantity updated"})
}

func (h *CartHTTP) DeleteFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete.cart")

	id, err := requireIdentity(c, h.Auth)
	if err != nil {
		return writeError(c, l, "delete_from_cart", err)
	}

	line, ok := lineID(c)
	if !ok {
		return writeError(c, l, "delete_from_cart", &service.Error{Kind: service.ErrNotFound, Msg: "Item not found"})
	}

	if err := h.Svc.RemoveItem(ctx, id, line); err != nil {
		return writeError(c, l, "delete_from_cart", err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Item removed"})
}
