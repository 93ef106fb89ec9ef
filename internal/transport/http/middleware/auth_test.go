package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/internal/transport/http/middleware/mocks"
)

func TestAuth(t *testing.T) {
	t.Parallel()

	token := gofakeit.UUID()
	claims := &model.Claims{AdminID: gofakeit.UUID(), Username: gofakeit.Username()}

	type testCase struct {
		name        string
		header      string
		setup       func(p *mocks.MockTokenParser)
		wantCode    int
		wantMessage string
	}

	tests := []testCase{
		{
			name:        "missing header",
			wantCode:    http.StatusUnauthorized,
			wantMessage: "missing bearer token",
		},
		{
			name:        "wrong scheme",
			header:      "Basic " + token,
			wantCode:    http.StatusUnauthorized,
			wantMessage: "missing bearer token",
		},
		{
			name:   "expired token",
			header: "Bearer " + token,
			setup: func(p *mocks.MockTokenParser) {
				p.On("ParseToken", token).Return(nil, model.ErrTokenExpired).Once()
			},
			wantCode:    http.StatusUnauthorized,
			wantMessage: "session expired",
		},
		{
			name:   "invalid token",
			header: "Bearer " + token,
			setup: func(p *mocks.MockTokenParser) {
				p.On("ParseToken", token).Return(nil, errors.Join(errors.New("bad signature"), model.ErrUnauthorized)).Once()
			},
			wantCode:    http.StatusUnauthorized,
			wantMessage: "unauthorized",
		},
		{
			name:   "valid token",
			header: "bearer " + token,
			setup: func(p *mocks.MockTokenParser) {
				p.On("ParseToken", token).Return(claims, nil).Once()
			},
			wantCode: http.StatusNoContent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			parser := mocks.NewMockTokenParser(t)
			if tc.setup != nil {
				tc.setup(parser)
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, ok := ClaimsFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, claims, got)
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			Auth(parser)(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantMessage != "" {
				var e catalogv1.Error
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
				assert.Equal(t, tc.wantMessage, e.Message)
			}
			if tc.setup == nil {
				parser.AssertNotCalled(t, "ParseToken", mock.Anything)
			}
		})
	}
}

func TestLoggingDefaultsStatus(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	Logging(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
