package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/utils"

	"github.com/gin-gonic/gin"
)

func TestRequireManager(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		p    *entity.Principal
		want int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"customer", &entity.Principal{UserID: 1}, http.StatusForbidden},
		{"delivery crew", &entity.Principal{UserID: 2, Roles: []entity.Role{entity.RoleDeliveryCrew}}, http.StatusForbidden},
		{"manager", &entity.Principal{UserID: 3, Roles: []entity.Role{entity.RoleManager}}, http.StatusOK},
		{"admin", &entity.Principal{UserID: 4, IsAdmin: true}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) {
				if tt.p != nil {
					utils.SetPrincipal(c, *tt.p)
				}
				c.Next()
			}, RequireManager(), func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestBearer(t *testing.T) {
	tests := []struct {
		header string
		tok    string
		ok     bool
	}{
		{"Bearer abc.def", "abc.def", true},
		{"Bearer   abc ", "abc", true},
		{"Bearer ", "", false},
		{"Token abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			c.Request.Header.Set("Authorization", tt.header)
		}
		tok, ok := bearer(c)
		if tok != tt.tok || ok != tt.ok {
			t.Errorf("bearer(%q) = %q,%v; want %q,%v", tt.header, tok, ok, tt.tok, tt.ok)
		}
	}
}
