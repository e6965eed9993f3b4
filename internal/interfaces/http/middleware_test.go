package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storemax-web/internal/domain/access"
	"github.com/jhoicas/storemax-web/internal/domain/entity"
	"github.com/jhoicas/storemax-web/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/storemax-web/internal/interfaces/http"
)

// buildGateApp app mínima: sesión + RequireRole + handler dummy.
func buildGateApp(t *testing.T, store *memory.SessionStore, req access.Requirement) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(apphttp.SessionMiddleware(apphttp.SessionConfig{
		Store: store, CookieName: testCookie, Secret: testSecret, Issuer: testIssuer,
	}))
	app.Get("/protected", apphttp.RequireRole(req, nil), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetSession(c).Role})
	})
	return app
}

func gateRequest(t *testing.T, app *fiber.App, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireRole_Tabla(t *testing.T) {
	cases := []struct {
		name     string
		session  *entity.Session
		req      access.Requirement
		status   int
		location string
	}{
		{"sin sesión", nil, access.AnyRole(), http.StatusFound, "/"},
		{"admin en Only(Admin)", &entity.Session{AccessToken: "t", Role: entity.RoleAdmin}, access.Only(entity.RoleAdmin), http.StatusOK, ""},
		{"manager en Only(Admin)", &entity.Session{AccessToken: "t", Role: entity.RoleManager}, access.Only(entity.RoleAdmin), http.StatusFound, "/unauthorized"},
		{"manager en OneOf", &entity.Session{AccessToken: "t", Role: entity.RoleManager}, access.OneOf(entity.RoleManager, entity.RoleAdmin), http.StatusOK, ""},
		{"token sin rol", &entity.Session{AccessToken: "t"}, access.AnyRole(), http.StatusFound, "/unauthorized"},
		{"rol sin token", &entity.Session{Role: entity.RoleAdmin}, access.AnyRole(), http.StatusFound, "/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := memory.NewSessionStore()
			app := buildGateApp(t, store, tc.req)
			var cookie *http.Cookie
			if tc.session != nil {
				require.NoError(t, store.Write(context.Background(), "sid", *tc.session))
				cookie = cookieFor(t, "sid")
			}
			resp := gateRequest(t, app, cookie)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.location, resp.Header.Get("Location"))
		})
	}
}

type brokenSessions struct{}

func (brokenSessions) Write(context.Context, string, entity.Session) error { return nil }
func (brokenSessions) Clear(context.Context, string) error                 { return nil }
func (brokenSessions) Read(context.Context, string) (entity.Session, error) {
	return entity.Session{}, errors.New("connection refused")
}

func TestSessionMiddleware_AlmacenCaidoResponde503(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.SessionMiddleware(apphttp.SessionConfig{
		Store: brokenSessions{}, CookieName: testCookie, Secret: testSecret, Issuer: testIssuer,
	}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRateLimit_BloqueaTrasElLimite(t *testing.T) {
	app := fiber.New()
	app.Post("/login", apphttp.RateLimit(memory.NewRateLimitStore(), "login", 2, time.Minute, nil), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))
}

func TestRateLimit_SinAlmacenNoLimita(t *testing.T) {
	app := fiber.New()
	app.Post("/login", apphttp.RateLimit(nil, "login", 1, time.Minute, nil), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
