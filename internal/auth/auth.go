// Package auth verifies Firebase ID tokens on incoming requests and exposes
// the verified token through the request context.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
)

// Verifier verifies a Firebase ID token, returning the decoded token when
// valid. It is implemented by *auth.Client.
type Verifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type tokenContextKey struct{}

var tokenContextKeyInstance = tokenContextKey{}

// ContextWithToken returns a context carrying a verified token.
func ContextWithToken(ctx context.Context, tok *auth.Token) context.Context {
	return context.WithValue(ctx, tokenContextKeyInstance, tok)
}

// TokenFromContext returns the verified token for the request, or nil if the
// request did not pass through Middleware.
func TokenFromContext(ctx context.Context) *auth.Token {
	if tok, ok := ctx.Value(tokenContextKeyInstance).(*auth.Token); ok {
		return tok
	}
	return nil
}

// UID returns the subject identifier of the authenticated user, or the empty
// string if there is none.
func UID(ctx context.Context) string {
	if tok := TokenFromContext(ctx); tok != nil {
		return tok.UID
	}
	return ""
}

// Middleware rejects requests without a valid Authorization bearer token.
// A missing or malformed header is rejected without calling the verifier.
// The response body never includes the verification failure detail.
func Middleware(verifier Verifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idToken, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || idToken == "" {
				http.Error(w, "Unauthorized", http.StatusForbidden)
				return
			}

			tok, err := verifier.VerifyIDToken(r.Context(), idToken)
			if err != nil {
				slog.WarnContext(r.Context(), "auth: verifying id token", "error", err)
				http.Error(w, "Unauthorized", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithToken(r.Context(), tok)))
		})
	}
}
