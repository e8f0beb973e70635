package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/mock_ecom/internal/service"
	"github.com/Skotchmaster/mock_ecom/internal/transport"
	"github.com/Skotchmaster/mock_ecom/internal/util"
	"github.com/Skotchmaster/mock_ecom/pkg/logging"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.products")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	limit := util.ParseIntDefault(c.QueryParam("limit"), util.DefaultPageSize)

	res, err := h.Svc.ListProducts(ctx, page, limit)
	if err != nil {
		return writeError(c, l, "get_products", err)
	}
	return c.JSON(http.StatusOK, transport.NewProductPageResponse(res))
}
