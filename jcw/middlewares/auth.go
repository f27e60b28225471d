// jcw/middlewares/auth.go
package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"jcw/jcw/config"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const AdminKey contextKey = "admin"

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}

// ParseToken checks an HS256 admin token and returns its subject.
func ParseToken(secret, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", jwt.ErrTokenInvalidSubject
	}
	if claims, ok := token.Claims.(jwt.MapClaims); !ok || claims["role"] != "admin" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return sub, nil
}

// AuthMiddleware admits requests carrying "Authorization: Bearer <admin jwt>".
// With no JWT secret configured every request is rejected.
func AuthMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.JWTSecret == "" {
				unauthorized(w)
				return
			}
			scheme, tokenStr, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || scheme != "Bearer" || tokenStr == "" {
				unauthorized(w)
				return
			}
			admin, err := ParseToken(cfg.JWTSecret, tokenStr)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), AdminKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFrom returns the admin username set by AuthMiddleware.
func AdminFrom(ctx context.Context) string {
	admin, _ := ctx.Value(AdminKey).(string)
	return admin
}
