package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/che1nov/tea-shop/internal/api/metrics"
	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/ports"
	"github.com/che1nov/tea-shop/internal/core/service"
)

// AuthHandler proxies registration and login to the users service and
// feeds the local session store.
type AuthHandler struct {
	client  ports.ShopClient
	session *service.SessionStore
}

func NewAuthHandler(client ports.ShopClient, session *service.SessionStore) *AuthHandler {
	return &AuthHandler{client: client, session: session}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
	Role          string       `json:"role,omitempty"`
	Admin         bool         `json:"admin"`
}

// Register creates a new account upstream. It does not sign the session in;
// the UI sends the user to login afterwards.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.client.Register(c.Request().Context(), req.Email, req.Name, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates upstream and establishes the local session on success.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.client.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.session.SetAuth(c.Request().Context(), *user, token)
	metrics.SessionEventsTotal.WithLabelValues("login").Inc()

	return c.JSON(http.StatusOK, h.sessionView())
}

// Logout clears the session and its persisted slots.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())
	metrics.SessionEventsTotal.WithLabelValues("logout").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current session state to the UI.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, h.sessionView())
}

func (h *AuthHandler) sessionView() sessionResponse {
	user, ok := h.session.Current()
	if !ok {
		return sessionResponse{Authenticated: false}
	}
	return sessionResponse{
		Authenticated: true,
		User:          &user,
		Role:          h.session.Role(),
		Admin:         h.session.IsAdmin(),
	}
}
