package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexlopesbr/little-lemon-api/entity"
	"github.com/alexlopesbr/little-lemon-api/utils"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	steps := []struct {
		advance time.Duration
		key     string
		want    bool
	}{
		{0, "a", true},
		{0, "a", true},
		{0, "a", false},
		{0, "b", true},
		{30 * time.Second, "a", true},
		{0, "a", false},
	}
	for i, s := range steps {
		now = now.Add(s.advance)
		if got := rl.Allow(s.key); got != s.want {
			t.Fatalf("step %d: Allow(%q) = %v, want %v", i, s.key, got, s.want)
		}
	}
}

func TestRateLimiter_PrunesIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(10)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("old")
	now = now.Add(visitorIdle + time.Second)
	rl.Allow("new")

	if _, ok := rl.visitors["old"]; ok {
		t.Fatalf("idle visitor kept")
	}
	if len(rl.visitors) != 1 {
		t.Fatalf("visitors = %d, want 1", len(rl.visitors))
	}
}

func TestThrottle_KeysByUserOrIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	anon, user := NewRateLimiter(1), NewRateLimiter(1)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if c.GetHeader("X-User") != "" {
			utils.SetPrincipal(c, entity.Principal{UserID: 7})
		}
		c.Next()
	}, Throttle(anon, user))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(asUser bool) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if asUser {
			req.Header.Set("X-User", "1")
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := hit(false); code != http.StatusOK {
		t.Fatalf("first anonymous = %d", code)
	}
	if code := hit(false); code != http.StatusTooManyRequests {
		t.Fatalf("second anonymous = %d, want 429", code)
	}
	// the user bucket is separate from the caller's IP
	if code := hit(true); code != http.StatusOK {
		t.Fatalf("first user = %d", code)
	}
	if code := hit(true); code != http.StatusTooManyRequests {
		t.Fatalf("second user = %d, want 429", code)
	}
}
