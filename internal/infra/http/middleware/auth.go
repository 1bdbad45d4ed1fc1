package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/xavierca1/telecrm/internal/entity"
	"github.com/xavierca1/telecrm/internal/usecase"
)

type contextKey string

const actorKey contextKey = "actor"

// Authenticator verifies the Bearer token and stores the resulting
// Actor on the request context. Authentication itself is glue; the
// core only ever sees the explicit Actor value.
func Authenticator(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "missing bearer token")
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims := &usecase.TokenClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				unauthorized(w, "invalid or expired token")
				return
			}

			actor := entity.Actor{
				ID:   claims.Subject,
				Name: claims.Name,
				Role: claims.Role,
			}

			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext returns the authenticated actor placed by
// Authenticator.
func ActorFromContext(ctx context.Context) (entity.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(entity.Actor)
	return actor, ok
}

// WithActor is used by handler tests to simulate an authenticated
// request without minting a token.
func WithActor(ctx context.Context, actor entity.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
