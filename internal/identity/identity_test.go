package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, mutate func(*http.Request)) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodGet, "/progress", nil)
	if mutate != nil {
		mutate(req)
	}
	c.Request = req
	return c
}

func TestUserID(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*http.Request)
		want   string
	}{
		{"anonymous", nil, ""},
		{"header", func(r *http.Request) {
			r.Header.Set(HeaderName, "u42")
		}, "u42"},
		{"header trimmed", func(r *http.Request) {
			r.Header.Set(HeaderName, "  u42  ")
		}, "u42"},
		{"cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-user"})
		}, "cookie-user"},
		{"header wins over cookie", func(r *http.Request) {
			r.Header.Set(HeaderName, "header-user")
			r.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-user"})
		}, "header-user"},
		{"blank header falls back to cookie", func(r *http.Request) {
			r.Header.Set(HeaderName, "   ")
			r.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-user"})
		}, "cookie-user"},
	}
	for _, tt := range tests {
		if got := UserID(testContext(t, tt.mutate)); got != tt.want {
			t.Errorf("%s: UserID() = %q; want %q", tt.name, got, tt.want)
		}
	}
}
