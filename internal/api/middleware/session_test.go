package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gatehouse/gatehouse/internal/core/domain"
	"github.com/gatehouse/gatehouse/internal/core/session"
)

type stubLoader struct {
	loadFn func(ctx context.Context, id string) (*domain.Account, error)
}

func (s *stubLoader) Register(ctx context.Context, name, email, password, confirmation string) (*domain.Account, error) {
	panic("not used")
}

func (s *stubLoader) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	panic("not used")
}

func (s *stubLoader) Load(ctx context.Context, id string) (*domain.Account, error) {
	return s.loadFn(ctx, id)
}

func TestSessionMiddleware_ValidCookie(t *testing.T) {
	e := echo.New()
	mgr := session.NewManager("secret", time.Hour, 0)
	token, ttl, err := mgr.Issue(42, false)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	loader := &stubLoader{
		loadFn: func(ctx context.Context, id string) (*domain.Account, error) {
			if id != "42" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Account{ID: 42, Name: "Alice"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(session.Cookie(token, ttl, false))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(mgr, loader)(func(c echo.Context) error {
		called = true
		account, _ := c.Get(AccountKey).(*domain.Account)
		if account == nil || account.ID != 42 {
			t.Fatalf("account not injected: %+v", account)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSessionMiddleware_NoCookie(t *testing.T) {
	e := echo.New()
	mgr := session.NewManager("secret", time.Hour, 0)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(mgr, &stubLoader{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestSessionMiddleware_BadToken(t *testing.T) {
	e := echo.New()
	mgr := session.NewManager("secret", time.Hour, 0)

	// Token signed with a different secret.
	forged, ttl, err := session.NewManager("other", time.Hour, 0).Issue(42, false)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(session.Cookie(forged, ttl, false))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(mgr, &stubLoader{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestSessionMiddleware_AccountGone(t *testing.T) {
	e := echo.New()
	mgr := session.NewManager("secret", time.Hour, 0)
	token, ttl, err := mgr.Issue(42, false)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	loader := &stubLoader{
		loadFn: func(ctx context.Context, id string) (*domain.Account, error) {
			return nil, domain.ErrAccountNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(session.Cookie(token, ttl, false))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(mgr, loader)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}

	// The dead cookie gets cleared on the way out.
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == session.CookieName && cookie.MaxAge == -1 {
			return
		}
	}
	t.Fatalf("expected session cookie to be cleared")
}
