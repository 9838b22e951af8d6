package middleware

import (
	"context"
	"net/http"
	"strings"

	"cat-collector/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// DebugUserHeader inyecta el principal en desarrollo cuando no hay verifier.
const DebugUserHeader = "X-Debug-User-ID"

// AuthContext resuelve el principal del request:
// - Basic y passwords != nil => usuario/contraseña locales.
// - verifier == nil y devHeader => X-Debug-User-ID.
// - Bearer token => verifier.Verify.
// Fuera de desarrollo devHeader debe ir en false: el header no se valida.
// Si no hay claims el request sigue igual; cada handler decide si exige auth.
func AuthContext(verifier auth.AuthVerifier, passwords auth.PasswordAuthenticator, devHeader bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := resolveClaims(r, verifier, passwords, devHeader); ok {
				r = r.WithContext(WithClaims(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func resolveClaims(r *http.Request, verifier auth.AuthVerifier, passwords auth.PasswordAuthenticator, devHeader bool) (auth.Claims, bool) {
	if username, password, ok := r.BasicAuth(); ok && passwords != nil {
		claims, err := passwords.Authenticate(r.Context(), username, password)
		if err != nil {
			return auth.Claims{}, false
		}
		return claims, true
	}

	if verifier == nil {
		if !devHeader {
			return auth.Claims{}, false
		}
		uid := strings.TrimSpace(r.Header.Get(DebugUserHeader))
		if uid == "" {
			return auth.Claims{}, false
		}
		return auth.Claims{UserID: uid}, true
	}

	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return auth.Claims{}, false
	}
	claims, err := verifier.Verify(r.Context(), token)
	if err != nil {
		return auth.Claims{}, false
	}
	return claims, true
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

func bearerToken(authHeader string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
