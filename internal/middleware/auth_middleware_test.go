package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/models/dto"
	"github.com/wilsonXeem/clong-backend/internal/pkg/auth"
)

func newAuthTestService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    exp,
		TokenIssuer: "clong.org",
	})
}

func issueToken(t *testing.T, svc *auth.JWTService, role models.Role) string {
	t.Helper()
	token, _, err := svc.GenerateToken(&models.User{
		ID:    "user-1",
		Email: "donor@example.com",
		Role:  role,
	})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func decodeError(t *testing.T, body []byte) *dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return &resp
}

// echoIdentity reports what the auth middleware put in the context.
func echoIdentity(c *gin.Context) {
	id, _ := CurrentUserID(c)
	c.JSON(http.StatusOK, gin.H{"userId": id, "role": string(CurrentRole(c))})
}

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newAuthTestService(time.Hour)
	mw := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected", mw.JWTAuth(), echoIdentity)

	request := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		w := request("")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		resp := decodeError(t, w.Body.Bytes())
		if resp.Error.Code != dto.ErrorCodeUnauthorized {
			t.Errorf("code = %s, want %s", resp.Error.Code, dto.ErrorCodeUnauthorized)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		w := request("Basic abc123")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired := issueToken(t, newAuthTestService(-time.Minute), models.RoleUser)
		w := request("Bearer " + expired)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		resp := decodeError(t, w.Body.Bytes())
		if resp.Error.Code != dto.ErrorCodeExpiredToken {
			t.Errorf("code = %s, want %s", resp.Error.Code, dto.ErrorCodeExpiredToken)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		w := request("Bearer not.a.token")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		resp := decodeError(t, w.Body.Bytes())
		if resp.Error.Code != dto.ErrorCodeInvalidToken {
			t.Errorf("code = %s, want %s", resp.Error.Code, dto.ErrorCodeInvalidToken)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		w := request("Bearer " + issueToken(t, jwtService, models.RoleUser))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["userId"] != "user-1" {
			t.Errorf("userId = %q, want user-1", body["userId"])
		}
		if body["role"] != string(models.RoleUser) {
			t.Errorf("role = %q, want user", body["role"])
		}
	})
}

func TestOptionalJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newAuthTestService(time.Hour)
	mw := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/open", mw.OptionalJWTAuth(), echoIdentity)

	t.Run("anonymous passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["userId"] != "" {
			t.Errorf("userId = %q, want empty for anonymous caller", body["userId"])
		}
	})

	t.Run("invalid token still passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Bearer broken")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("valid token loads identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["userId"] != "user-1" {
			t.Errorf("userId = %q, want user-1", body["userId"])
		}
	})
}

func TestAdminRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newAuthTestService(time.Hour)
	mw := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/admin", mw.JWTAuth(), mw.AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("regular user is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleUser))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
		resp := decodeError(t, w.Body.Bytes())
		if resp.Error.Code != dto.ErrorCodeForbidden {
			t.Errorf("code = %s, want %s", resp.Error.Code, dto.ErrorCodeForbidden)
		}
	})

	t.Run("admin is allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleAdmin))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", w.Code)
		}
	})
}
