package middleware_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/IvanChernomyrdin/go-courses-api/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-courses-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-courses-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-courses-api/internal/shared/logger"
)

// fakeVerifier знает одного пользователя
type fakeVerifier struct {
	id    models.Identity
	pass  string
	calls int
}

func (f *fakeVerifier) Verify(_ context.Context, identifier, secret string) (models.Identity, error) {
	f.calls++
	if identifier != f.id.EmailAddress {
		return models.Identity{}, serr.ErrUserNotFound
	}
	if secret != f.pass {
		return models.Identity{}, serr.ErrInvalidCredentials
	}
	return f.id, nil
}

func basic(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func newGate(t *testing.T) (*middleware.BasicAuthenticator, *fakeVerifier, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	v := &fakeVerifier{
		id:   models.Identity{ID: uuid.New(), FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com"},
		pass: "joepassword",
	}
	return middleware.NewBasicAuthenticator(v, &logger.HTTPLogger{Logger: zap.New(core)}), v, logs
}

func TestParseBasic(t *testing.T) {
	user, pass, err := middleware.ParseBasic(basic("joe@smith.com", "pa:ss"))
	require.NoError(t, err)
	require.Equal(t, "joe@smith.com", user)
	require.Equal(t, "pa:ss", pass)

	_, _, err = middleware.ParseBasic("basic " + base64.StdEncoding.EncodeToString([]byte("a:b")))
	require.NoError(t, err)

	_, _, err = middleware.ParseBasic("")
	require.ErrorIs(t, err, serr.ErrMissingCredentials)

	_, _, err = middleware.ParseBasic("Bearer abc")
	require.ErrorIs(t, err, serr.ErrMalformedCredentials)

	_, _, err = middleware.ParseBasic("Basic !!!")
	require.ErrorIs(t, err, serr.ErrMalformedCredentials)

	_, _, err = middleware.ParseBasic("Basic " + base64.StdEncoding.EncodeToString([]byte("nocolon")))
	require.ErrorIs(t, err, serr.ErrMalformedCredentials)
}

func TestBasicAuthenticator_Authenticate(t *testing.T) {
	gate, v, _ := newGate(t)
	base := context.Background()

	ctx, err := gate.Authenticate(base, basic("joe@smith.com", "joepassword"))
	require.NoError(t, err)

	id, ok := middleware.IdentityFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, v.id, id)

	// исходный контекст не тронут
	_, ok = middleware.IdentityFromContext(base)
	require.False(t, ok)
}

func TestBasicAuthenticator_Authenticate_Missing(t *testing.T) {
	gate, v, _ := newGate(t)

	_, err := gate.Authenticate(context.Background(), "")
	require.ErrorIs(t, err, serr.ErrMissingCredentials)
	require.Zero(t, v.calls)
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantReason string
	}{
		{name: "ok", header: basic("joe@smith.com", "joepassword"), wantStatus: http.StatusNoContent},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized, wantReason: "missing_credentials"},
		{name: "malformed", header: "Basic ???", wantStatus: http.StatusUnauthorized, wantReason: "malformed_credentials"},
		{name: "unknown user", header: basic("ghost@mail.com", "x"), wantStatus: http.StatusUnauthorized, wantReason: "user_not_found"},
		{name: "wrong password", header: basic("joe@smith.com", "bad"), wantStatus: http.StatusUnauthorized, wantReason: "invalid_credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, v, logs := newGate(t)

			onFail := func(w http.ResponseWriter, _ *http.Request, err error) {
				require.True(t, serr.IsAuthFailure(err))
				w.WriteHeader(http.StatusUnauthorized)
			}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := middleware.IdentityFromContext(r.Context())
				require.True(t, ok)
				require.Equal(t, v.id.ID, id.ID)
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/courses", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			gate.AuthMiddleware(onFail)(next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantReason == "" {
				require.Zero(t, logs.Len())
				return
			}
			entries := logs.All()
			require.Len(t, entries, 1)
			require.Equal(t, tt.wantReason, entries[0].ContextMap()["reason"])
			// email в лог не попадает
			for _, f := range entries[0].Context {
				require.NotContains(t, f.String, "@")
			}
		})
	}
}
