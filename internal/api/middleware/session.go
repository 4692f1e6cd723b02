package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/service"
)

// RequireAuth rejects requests while the session is signed out. The UI
// treats the 401 as its redirect-to-login signal.
func RequireAuth(session *service.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.IsAuthenticated() {
				return domain.ErrNotAuthenticated
			}
			return next(c)
		}
	}
}

// RequireAdmin guards operator routes. The admin verdict is recomputed
// from the current bearer token on every request.
func RequireAdmin(session *service.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.IsAuthenticated() {
				return domain.ErrNotAuthenticated
			}
			if !session.IsAdmin() {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
