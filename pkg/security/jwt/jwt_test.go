package jwt

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnreact/job-portal/pkg/auth"
)

var recruiter = auth.User{ID: uuid.New(), Role: auth.RoleRecruiter}

func TestGenerateParse(t *testing.T) {
	g := NewGenerator("secret", "job-portal", time.Hour)
	tok, err := g.Generate(context.Background(), recruiter)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tok.ExpiresAt, time.Minute)

	claims, err := g.Parse(tok.Value)
	require.NoError(t, err)
	assert.Equal(t, recruiter.ID.String(), claims.Subject)
	assert.Equal(t, auth.RoleRecruiter, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestParseRejects(t *testing.T) {
	g := NewGenerator("secret", "job-portal", time.Hour)
	tok, err := g.Generate(context.Background(), recruiter)
	require.NoError(t, err)

	_, err = NewGenerator("other", "job-portal", time.Hour).Parse(tok.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewGenerator("secret", "someone-else", time.Hour).Parse(tok.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewGenerator("secret", "job-portal", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Generate(context.Background(), recruiter)
	require.NoError(t, err)
	_, err = g.Parse(old.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = g.Parse("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

type memDenylist struct {
	mu   sync.Mutex
	ids  map[string]time.Time
	fail bool
}

func (m *memDenylist) Add(_ context.Context, jti string, until time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ids == nil {
		m.ids = map[string]time.Time{}
	}
	m.ids[jti] = until
	return nil
}

func (m *memDenylist) Contains(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return false, errors.New("redis down")
	}
	_, ok := m.ids[jti]
	return ok, nil
}

func newApp(g *Generator, list Denylist) *fiber.App {
	app := fiber.New()
	protected := app.Group("/", NewAuthMiddleware(g, list, zerolog.Nop()))
	protected.Get("/me", func(c *fiber.Ctx) error {
		id, ok := UserID(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.SendString(id.String() + " " + string(Role(c)))
	})
	protected.Get("/recruiters", RequireRole(auth.RoleRecruiter), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	protected.Get("/students", RequireRole(auth.RoleStudent), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func do(t *testing.T, app *fiber.App, path string, set func(*http.Request)) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if set != nil {
		set(req)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestMiddleware(t *testing.T) {
	g := NewGenerator("secret", "job-portal", time.Hour)
	tok, err := g.Generate(context.Background(), recruiter)
	require.NoError(t, err)
	want := recruiter.ID.String() + " recruiter"

	app := newApp(g, nil)

	code, body := do(t, app, "/me", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: CookieName, Value: tok.Value})
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, want, body)

	code, body = do(t, app, "/me", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok.Value) })
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, want, body)

	code, _ = do(t, app, "/me", func(r *http.Request) { r.Header.Set("Authorization", tok.Value) })
	assert.Equal(t, http.StatusOK, code)

	code, body = do(t, app, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.JSONEq(t, `{"message":"User not authenticated","success":false}`, body)

	code, body = do(t, app, "/me", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") })
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.JSONEq(t, `{"message":"Invalid token","success":false}`, body)
}

func TestRequireRole(t *testing.T) {
	g := NewGenerator("secret", "job-portal", time.Hour)
	tok, err := g.Generate(context.Background(), recruiter)
	require.NoError(t, err)
	app := newApp(g, nil)
	bearer := func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok.Value) }

	code, _ := do(t, app, "/recruiters", bearer)
	assert.Equal(t, http.StatusOK, code)
	code, body := do(t, app, "/students", bearer)
	assert.Equal(t, http.StatusForbidden, code)
	assert.JSONEq(t, `{"message":"Access denied","success":false}`, body)
}

func TestRevocation(t *testing.T) {
	g := NewGenerator("secret", "job-portal", time.Hour)
	tok, err := g.Generate(context.Background(), recruiter)
	require.NoError(t, err)
	list := &memDenylist{}
	app := newApp(g, list)
	bearer := func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok.Value) }

	code, _ := do(t, app, "/me", bearer)
	require.Equal(t, http.StatusOK, code)

	require.NoError(t, NewRevoker(g, list).Revoke(context.Background(), tok.Value))
	code, _ = do(t, app, "/me", bearer)
	assert.Equal(t, http.StatusUnauthorized, code)

	// a broken denylist does not lock users out
	list.fail = true
	code, _ = do(t, app, "/me", bearer)
	assert.Equal(t, http.StatusOK, code)

	assert.NoError(t, NewRevoker(g, list).Revoke(context.Background(), "garbage"))
}
