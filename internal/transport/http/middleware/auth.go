package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/platform/logger"
)

type TokenParser interface {
	ParseToken(token string) (*model.Claims, error)
}

type claimsKey struct{}

// Auth rejects requests without a valid bearer token and stores the
// admin claims in the request context.
func Auth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w, "missing bearer token")
				return
			}

			claims, err := parser.ParseToken(token)
			if err != nil {
				if errors.Is(err, model.ErrTokenExpired) {
					unauthorized(w, "session expired")
					return
				}
				unauthorized(w, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			ctx = logger.WithContext(ctx, logger.String("admin", claims.Username))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*model.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*model.Claims)
	return c, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(catalogv1.Error{Code: http.StatusUnauthorized, Message: msg})
}
