package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexlopesbr/little-lemon-api/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestPaging(t *testing.T) {
	tests := []struct {
		query         string
		page, perPage int
		bad           bool
	}{
		{"/", 1, 20, false},
		{"/?page=3&perpage=5", 3, 5, false},
		{"/?perpage=500", 1, 100, false},
		{"/?page=0", 0, 0, true},
		{"/?perpage=x", 0, 0, true},
	}
	for _, tt := range tests {
		p, err := paging(testContext(tt.query))
		if tt.bad {
			if !apperr.Is(err, apperr.KindInvalidInput) {
				t.Errorf("%s: err = %v, want invalid input", tt.query, err)
			}
			continue
		}
		if err != nil || p.Page != tt.page || p.PerPage != tt.perPage {
			t.Errorf("%s: got %+v, %v; want page %d perpage %d", tt.query, p, err, tt.page, tt.perPage)
		}
	}
}

func TestIDParam(t *testing.T) {
	for _, v := range []string{"0", "-1", "abc", ""} {
		c := testContext("/")
		c.Params = gin.Params{{Key: "id", Value: v}}
		if _, err := idParam(c, "id"); !apperr.Is(err, apperr.KindNotFound) {
			t.Errorf("idParam(%q) err = %v, want not found", v, err)
		}
	}
	c := testContext("/")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	if id, err := idParam(c, "id"); err != nil || id != 42 {
		t.Errorf("idParam(42) = %d, %v", id, err)
	}
}
