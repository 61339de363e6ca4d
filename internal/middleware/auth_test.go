package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack-api/internal/auth"
	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/repository/memory"
)

func newProtected(t *testing.T) (*auth.TokenManager, *memory.Users, http.Handler) {
	t.Helper()
	tm := auth.NewTokenManager("test-secret", "fittrack-api", time.Hour)
	users := memory.NewUsers()
	mw := NewAuthMiddleware(tm, users)

	handler := mw.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := CurrentUser(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(u.ID))
	}))
	return tm, users, handler
}

func TestProtectRejectsMissingHeader(t *testing.T) {
	_, _, handler := newProtected(t)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProtectRejectsNonBearerHeader(t *testing.T) {
	_, _, handler := newProtected(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProtectRejectsInvalidToken(t *testing.T) {
	_, _, handler := newProtected(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProtectRejectsTokenForDeletedUser(t *testing.T) {
	tm, _, handler := newProtected(t)

	// valid token, but no matching user record
	token, err := tm.Generate("ghost")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Contains(t, rr.Body.String(), "no longer exists")
}

func TestProtectAttachesUser(t *testing.T) {
	tm, users, handler := newProtected(t)

	u, err := users.Create(context.Background(), models.User{Name: "Alice", Email: "alice@x.com", Role: models.RoleUser})
	require.NoError(t, err)
	token, err := tm.Generate(u.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, u.ID, rr.Body.String())
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRole(models.RoleCoach, models.RoleAdmin)(next)

	run := func(u models.User) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithUser(req.Context(), u))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	require.Equal(t, http.StatusForbidden, run(models.User{ID: "u1", Role: models.RoleUser}))
	require.Equal(t, http.StatusOK, run(models.User{ID: "u2", Role: models.RoleCoach}))
	require.Equal(t, http.StatusOK, run(models.User{ID: "u3", Role: models.RoleAdmin}))

	// no user attached at all
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}
