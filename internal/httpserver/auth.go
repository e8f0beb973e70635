package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/mock_ecom/internal/service"
	"github.com/Skotchmaster/mock_ecom/internal/transport"
	"github.com/Skotchmaster/mock_ecom/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, l, "signup", "All fields required", err)
	}

	if err := h.Svc.Signup(ctx, req.Name, req.Email, req.Password); err != nil {
		return writeError(c, l, "signup", err)
	}

	l.Info("user signed up")
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Signup successful!"})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, l, "login", "invalid body", err)
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return writeError(c, l, "login", err)
	}

	l.Info("user logged in", "user_id", res.User.ID)
	return c.JSON(http.StatusOK, transport.LoginResponse{
		Message: "Login successful",
		Token:   res.Token,
		User:    res.User,
	})
}

func (h *AuthHTTP) Profile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.profile")

	id, err := requireIdentity(c, h.Svc)
	if err != nil {
		return writeError(c, l, "profile", err)
	}

	user, err := h.Svc.Profile(ctx, id)
	if err != nil {
		return writeError(c, l, "profile", err)
	}
	return c.JSON(http.StatusOK, user)
}
