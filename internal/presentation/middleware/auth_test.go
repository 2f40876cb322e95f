package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authRepository "pixvault/internal/domain/repository/auth"
	"pixvault/internal/presentation"
)

type fakeVerifier struct {
	identity *authRepository.Identity
	err      error
	gotToken string
}

func (f *fakeVerifier) Verify(_ context.Context, token string) (*authRepository.Identity, error) {
	f.gotToken = token

	return f.identity, f.err
}

func TestBearerAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		authHeader      string
		verifier        *fakeVerifier
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "Missing Authorization header",
			authHeader:      "",
			verifier:        &fakeVerifier{},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "missing Authorization header",
		},
		{
			name:            "Wrong scheme",
			authHeader:      "Basic dXNlcjpwYXNz",
			verifier:        &fakeVerifier{},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "missing Bearer scheme",
		},
		{
			name:            "Verifier rejection",
			authHeader:      "Bearer expired-token",
			verifier:        &fakeVerifier{err: errors.New("token is expired")},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "invalid or expired token",
		},
		{
			name:           "Valid token",
			authHeader:     "Bearer good-token",
			verifier:       &fakeVerifier{identity: &authRepository.Identity{UserID: 7, Username: "anne"}},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/gallery", http.NoBody)
			if tt.authHeader != "" {
				req.Header.Set(presentation.AuthKey, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var reachedNext bool
			next := func(c echo.Context) error {
				reachedNext = true

				return c.NoContent(http.StatusOK)
			}

			err := BearerAuth(tt.verifier)(next)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus != http.StatusOK {
				assert.False(t, reachedNext, "gallery logic must not run")

				var body struct {
					Error string `json:"error"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedMessage, body.Error)

				return
			}

			assert.True(t, reachedNext)
			assert.Equal(t, "good-token", tt.verifier.gotToken)

			identity, ok := c.Get(presentation.IdentityKey).(*authRepository.Identity)
			require.True(t, ok)
			assert.Equal(t, int64(7), identity.UserID)
			assert.Equal(t, "anne", identity.Username)
		})
	}
}
