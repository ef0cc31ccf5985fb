package middleware

import (
	"bookmart/models"
	"bookmart/repositories"
	"bookmart/store"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const cookieName = "bookmart_session"

func init() {
	gin.SetMode(gin.TestMode)
}

func newGuardedRouter(registry *store.Registry, now time.Time) *gin.Engine {
	r := gin.New()
	r.Use(SessionMiddleware(registry, cookieName, false))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, State(c).ID)
	})
	clock := func() time.Time { return now }
	r.GET("/cart", AuthMiddleware(clock), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/admin", AuthMiddleware(clock), AdminMiddleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func request(r http.Handler, path, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: sessionID})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionMiddlewareIssuesAndReusesCookie(t *testing.T) {
	registry := store.NewRegistry(repositories.NewMemoryRepository())
	r := newGuardedRouter(registry, time.Now())

	w := request(r, "/whoami", "")
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != cookieName {
		t.Fatalf("cookies = %v", cookies)
	}
	issued := cookies[0].Value
	if w.Body.String() != issued {
		t.Errorf("state id %q differs from cookie %q", w.Body.String(), issued)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie is not HttpOnly")
	}

	w = request(r, "/whoami", issued)
	if w.Body.String() != issued {
		t.Errorf("existing cookie not reused: %q", w.Body.String())
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("cookie reissued for a valid session")
	}

	w = request(r, "/whoami", "../../etc/passwd")
	if w.Body.String() == "../../etc/passwd" {
		t.Error("malformed session id accepted")
	}
}

func TestGuards(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	registry := store.NewRegistry(repositories.NewMemoryRepository())
	r := newGuardedRouter(registry, now)

	const userSession = "6f1c2a0e-5b9d-4c59-9d1e-2f0f5d7d9c11"
	const adminSession = "0c9f4f5e-8a41-4c4a-8f0f-3a4c9e6b7d22"
	const guestSession = "9b7e2d48-1f3a-4c1e-a6b2-7c5d8e9f0a33"

	user, _ := registry.Get(context.Background(), userSession)
	user.Session.SetUser(&models.Identity{ID: "u1", Role: models.RoleUser, AccessToken: "opaque"})
	admin, _ := registry.Get(context.Background(), adminSession)
	admin.Session.SetUser(&models.Identity{ID: "u2", Role: models.RoleAdmin, AccessToken: "opaque"})

	for _, tc := range []struct {
		path, session string
		want          int
	}{
		{"/cart", guestSession, http.StatusUnauthorized},
		{"/cart", userSession, http.StatusNoContent},
		{"/admin", guestSession, http.StatusUnauthorized},
		{"/admin", userSession, http.StatusForbidden},
		{"/admin", adminSession, http.StatusNoContent},
	} {
		if w := request(r, tc.path, tc.session); w.Code != tc.want {
			t.Errorf("%s as %s: status %d, want %d", tc.path, tc.session[:8], w.Code, tc.want)
		}
	}
}

func TestAuthMiddlewareLogsOutExpiredToken(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	registry := store.NewRegistry(repositories.NewMemoryRepository())
	r := newGuardedRouter(registry, now)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	const sessionID = "6f1c2a0e-5b9d-4c59-9d1e-2f0f5d7d9c11"
	state, _ := registry.Get(context.Background(), sessionID)
	state.Session.SetUser(&models.Identity{ID: "u1", Role: models.RoleUser, AccessToken: token})
	state.Cart.AddItem(models.Book{ID: "b1", Price: 10}, 1)

	if w := request(r, "/cart", sessionID); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if state.Session.IsAuthenticated() {
		t.Error("expired session still authenticated")
	}
	if state.Cart.TotalItems() != 1 {
		t.Error("expiry logout cleared the cart")
	}
}

func TestAllowedOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"http://localhost:5173"}},
		{"https://bookmart.app/", []string{"http://localhost:5173", "https://bookmart.app"}},
		{"https://a.app, https://b.app,,http://localhost:5173", []string{"http://localhost:5173", "https://a.app", "https://b.app"}},
	}
	for _, tt := range tests {
		got := AllowedOrigins(tt.in)
		if strings.Join(got, " ") != strings.Join(tt.want, " ") {
			t.Errorf("AllowedOrigins(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("https://bookmart.app"))
	r.GET("/api/cart", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodOptions, "/api/cart", nil)
	req.Header.Set("Origin", "https://bookmart.app")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://bookmart.app" {
		t.Errorf("allow origin = %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("allow credentials = %q", got)
	}
}
