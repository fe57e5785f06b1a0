package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventcraft/globals"

	"github.com/julienschmidt/httprouter"
)

func init() {
	globals.JwtSecret = []byte("test-secret")
}

func protectedEcho() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		userID, _ := r.Context().Value(globals.UserIDKey).(string)
		w.Write([]byte(userID))
	}
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/profile", nil)

	Authenticate(protectedEcho())(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticateRejectsMalformedHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/profile", nil)
	req.Header.Set("Authorization", "Token abc")

	Authenticate(protectedEcho())(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticateRejectsBadSignature(t *testing.T) {
	globals.JwtSecret = []byte("other-secret")
	token, err := GenerateToken("u123", "user")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	globals.JwtSecret = []byte("test-secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	Authenticate(protectedEcho())(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticatePassesClaimsThroughContext(t *testing.T) {
	token, err := GenerateToken("u123", "user")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	Authenticate(protectedEcho())(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "u123" {
		t.Fatalf("expected user id in context, got %q", rec.Body.String())
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := Authenticate(RequireAdmin(protectedEcho()))

	userToken, _ := GenerateToken("u123", "user")
	adminToken, _ := GenerateToken("u999", "admin")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/contacts", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	handler(rec, req, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("user token: expected 403, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/contacts", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	handler(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin token: expected 200, got %d", rec.Code)
	}
}

func TestOptionalAuthWithoutToken(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/pricing/quote", nil)

	OptionalAuth(protectedEcho())(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "" {
		t.Fatalf("expected empty user id, got %q", rec.Body.String())
	}
}

func TestValidateJWTRoundTrip(t *testing.T) {
	token, err := GenerateToken("u42", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateJWT("Bearer " + token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "u42" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}
