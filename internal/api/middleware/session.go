package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gatehouse/gatehouse/internal/api/metrics"
	"github.com/gatehouse/gatehouse/internal/core/ports"
	"github.com/gatehouse/gatehouse/internal/core/session"
)

// AccountKey is the echo context key the restored account is stored under.
const AccountKey = "account"

// Session restores the authenticated account from the session cookie and
// injects it into the request context. Anything short of a valid token that
// resolves to a stored account (no cookie, bad signature, expired token,
// deleted account) redirects to the login page; none of it is an error.
func Session(sessions *session.Manager, accounts ports.AccountService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return toLogin(c)
			}

			subject, err := sessions.Parse(cookie.Value)
			if err != nil {
				metrics.SessionRestoresTotal.WithLabelValues("miss").Inc()
				c.SetCookie(session.ClearCookie())
				return toLogin(c)
			}

			account, err := accounts.Load(c.Request().Context(), subject)
			if err != nil {
				metrics.SessionRestoresTotal.WithLabelValues("miss").Inc()
				c.SetCookie(session.ClearCookie())
				return toLogin(c)
			}

			metrics.SessionRestoresTotal.WithLabelValues("hit").Inc()
			c.Set(AccountKey, account)
			return next(c)
		}
	}
}

func toLogin(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/login")
}
