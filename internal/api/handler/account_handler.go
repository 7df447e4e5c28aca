package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gatehouse/gatehouse/internal/api/metrics"
	"github.com/gatehouse/gatehouse/internal/core/domain"
	"github.com/gatehouse/gatehouse/internal/core/ports"
	"github.com/gatehouse/gatehouse/internal/core/session"
)

// AccountHandler serves the registration, login, logout, and landing pages.
type AccountHandler struct {
	accounts ports.AccountService
	sessions *session.Manager
}

func NewAccountHandler(accounts ports.AccountService, sessions *session.Manager) *AccountHandler {
	return &AccountHandler{accounts: accounts, sessions: sessions}
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Remember string `form:"remember"`
}

type registerForm struct {
	Name         string `form:"name" validate:"required"`
	Email        string `form:"email" validate:"required"`
	Password     string `form:"password" validate:"required"`
	Confirmation string `form:"confirmation"`
}

// Index renders the landing page. Registered for both GET and POST; the
// session middleware has already guaranteed an authenticated account.
func (h *AccountHandler) Index(c echo.Context) error {
	account, err := ctxAccount(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index.html", account)
}

// ShowLogin renders the login form.
func (h *AccountHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

// Login verifies credentials and establishes a session. Any value in the
// remember field extends the session lifetime and persists the cookie.
func (h *AccountHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return domain.ErrMissingCredentials
	}

	account, err := h.accounts.Authenticate(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	remember := form.Remember != ""
	token, ttl, err := h.sessions.Issue(account.ID, remember)
	if err != nil {
		return err
	}
	c.SetCookie(session.Cookie(token, ttl, remember))

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session cookie and returns to the login page. There is
// nothing server-side to destroy, so this always succeeds.
func (h *AccountHandler) Logout(c echo.Context) error {
	c.SetCookie(session.ClearCookie())
	return c.Redirect(http.StatusSeeOther, "/login")
}

// ShowRegister renders the registration form.
func (h *AccountHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", nil)
}

// Register creates an account and sends the user to the login page. No
// session is established here; the new user logs in explicitly.
func (h *AccountHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	_, err := h.accounts.Register(c.Request().Context(), form.Name, form.Email, form.Password, form.Confirmation)
	if err != nil {
		result := "invalid"
		if err == domain.ErrEmailTaken {
			result = "conflict"
		}
		metrics.RegistrationsTotal.WithLabelValues(result).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusSeeOther, "/login")
}
