package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/session"
)

// recordingProvider wraps a JWTProvider and counts sign-outs.
type recordingProvider struct {
	*session.JWTProvider
	signedOut []string
	fail      error
}

func (p *recordingProvider) Authenticate(ctx context.Context, token string) (*session.Session, error) {
	if p.fail != nil {
		return nil, p.fail
	}
	return p.JWTProvider.Authenticate(ctx, token)
}

func (p *recordingProvider) SignOut(_ context.Context, s *session.Session) error {
	p.signedOut = append(p.signedOut, s.UserID)
	return nil
}

type staticAllowList struct {
	emails map[string]bool
	err    error
}

func (a staticAllowList) IsAllowListed(_ context.Context, email string) (bool, error) {
	return a.emails[session.NormalizeEmail(email)], a.err
}

func setupGateRouter(p session.Provider, allow AllowListChecker) *gin.Engine {
	r := gin.New()
	r.Use(AccessGate(p, allow))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(UserIDKey), "email": c.GetString(EmailKey)})
	})
	return r
}

func doGateRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAccessGate(t *testing.T) {
	jwtProvider := session.NewJWTProvider("gate-secret", "authenticated")
	allow := staticAllowList{emails: map[string]bool{"owner@example.com": true}}

	ownerToken, err := jwtProvider.IssueToken("0190f5b4-1c2d-7a3b-8c4d-5e6f7a8b9c0d", "Owner@Example.com", time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	strangerToken, err := jwtProvider.IssueToken("0190f5b4-1c2d-7a3b-8c4d-000000000001", "stranger@example.com", time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	t.Run("allow_listed", func(t *testing.T) {
		p := &recordingProvider{JWTProvider: jwtProvider}
		rec := doGateRequest(setupGateRouter(p, allow), "Bearer "+ownerToken)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseBody(t, rec)
		if body["user_id"] != "0190f5b4-1c2d-7a3b-8c4d-5e6f7a8b9c0d" || body["email"] != "owner@example.com" {
			t.Errorf("unexpected context values %v", body)
		}
		if len(p.signedOut) != 0 {
			t.Error("expected no sign-out")
		}
	})

	t.Run("not_allow_listed_signs_out", func(t *testing.T) {
		p := &recordingProvider{JWTProvider: jwtProvider}
		rec := doGateRequest(setupGateRouter(p, allow), "Bearer "+strangerToken)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "NOT_ALLOW_LISTED" {
			t.Errorf("expected NOT_ALLOW_LISTED, got %q", code)
		}
		if len(p.signedOut) != 1 || p.signedOut[0] != "0190f5b4-1c2d-7a3b-8c4d-000000000001" {
			t.Errorf("expected stranger to be signed out, got %v", p.signedOut)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		p := &recordingProvider{JWTProvider: jwtProvider}
		for _, header := range []string{"", "Token abc", "Bearer", "Bearer a b"} {
			rec := doGateRequest(setupGateRouter(p, allow), header)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("header %q: expected 401, got %d", header, rec.Code)
				continue
			}
			if code := errorCode(t, rec); code != "UNAUTHORIZED" {
				t.Errorf("header %q: expected UNAUTHORIZED, got %q", header, code)
			}
		}
	})

	t.Run("invalid_session", func(t *testing.T) {
		p := &recordingProvider{JWTProvider: jwtProvider}
		rec := doGateRequest(setupGateRouter(p, allow), "bearer not.a.token")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "INVALID_SESSION" {
			t.Errorf("expected INVALID_SESSION, got %q", code)
		}
	})

	t.Run("provider_unavailable", func(t *testing.T) {
		p := &recordingProvider{JWTProvider: jwtProvider, fail: errors.New("identity provider down")}
		rec := doGateRequest(setupGateRouter(p, allow), "Bearer "+ownerToken)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("allow_list_failure", func(t *testing.T) {
		p := &recordingProvider{JWTProvider: jwtProvider}
		broken := staticAllowList{err: errors.New("db down")}
		rec := doGateRequest(setupGateRouter(p, broken), "Bearer "+ownerToken)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if len(p.signedOut) != 0 {
			t.Error("expected no sign-out when the allow-list is unavailable")
		}
	})
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS("https://app.example.com"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", http.NoBody)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("unexpected allow-origin %q", got)
	}
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}
