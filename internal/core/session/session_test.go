package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestManager_IssueParse(t *testing.T) {
	mgr := NewManager("secret", time.Hour, 0)

	token, ttl, err := mgr.Issue(42, false)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}

	subject, err := mgr.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if subject != "42" {
		t.Fatalf("expected subject 42, got %q", subject)
	}
}

func TestManager_Issue_RememberExtendsTTL(t *testing.T) {
	mgr := NewManager("secret", time.Hour, 48*time.Hour)

	_, ttl, err := mgr.Issue(1, true)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if ttl != 48*time.Hour {
		t.Fatalf("expected remember ttl, got %v", ttl)
	}
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	token, _, err := NewManager("secret", time.Hour, 0).Issue(7, false)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewManager("other", time.Hour, 0).Parse(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_Parse_Expired(t *testing.T) {
	mgr := NewManager("secret", time.Hour, 0)

	claims := jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := mgr.Parse(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestManager_Parse_WrongAlgorithm(t *testing.T) {
	mgr := NewManager("secret", time.Hour, 0)

	// alg=none tokens must never validate.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "7"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := mgr.Parse(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_Parse_Garbage(t *testing.T) {
	mgr := NewManager("secret", time.Hour, 0)
	if _, err := mgr.Parse("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCookie(t *testing.T) {
	c := Cookie("tok", 48*time.Hour, false)
	if c.MaxAge != 0 {
		t.Fatalf("session cookie should have no MaxAge, got %d", c.MaxAge)
	}
	if !c.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}

	c = Cookie("tok", 48*time.Hour, true)
	if c.MaxAge != int((48 * time.Hour).Seconds()) {
		t.Fatalf("remember cookie MaxAge wrong: %d", c.MaxAge)
	}

	if ClearCookie().MaxAge != -1 {
		t.Fatalf("clear cookie must expire immediately")
	}
}
