package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"society_connect/internal/authz"
	"society_connect/internal/models"
)

func TestTokenRoundtrip(t *testing.T) {
	auth := NewAuth("test-secret", time.Hour, nil, nil)

	token, err := auth.GenerateToken(42, "tenant")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := auth.parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id, _ := claims["user_id"].(float64); uint(id) != 42 {
		t.Errorf("user_id = %v, want 42", claims["user_id"])
	}
	if role, _ := claims["role"].(string); role != "tenant" {
		t.Errorf("role = %v, want tenant", claims["role"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Error("token must carry a jti")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	auth := NewAuth("test-secret", time.Hour, nil, nil)
	other := NewAuth("other-secret", time.Hour, nil, nil)

	token, err := auth.GenerateToken(1, "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := other.parse(token); err == nil {
		t.Fatal("token signed with another secret must not parse")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	auth := NewAuth("test-secret", -time.Minute, nil, nil)
	token, err := auth.GenerateToken(1, "owner")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := auth.parse(token); err == nil {
		t.Fatal("expired token must not parse")
	}
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(user *models.User, roles ...authz.Role) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if user != nil {
			c.Set(currentUserKey, *user)
		}
		RequireRoles(roles...)(c)
		if !c.IsAborted() {
			w.WriteHeader(http.StatusOK)
		}
		return w
	}

	t.Run("allowed role passes", func(t *testing.T) {
		w := run(&models.User{Role: "committee"}, authz.RoleCommittee, authz.RoleAdmin)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		w := run(&models.User{Role: "tenant"}, authz.RoleCommittee, authz.RoleAdmin)
		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("missing user is unauthorized", func(t *testing.T) {
		w := run(nil, authz.RoleAdmin)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}
