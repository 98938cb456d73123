package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SessionOptions configures the Session middleware.
type SessionOptions struct {
	// CookieName is the name of the session cookie.
	CookieName string
	// Secret keys the HMAC that signs the session id.
	Secret []byte
	// TTL becomes the cookie's Max-Age. It is refreshed on every request.
	TTL time.Duration
	// Secure restricts the cookie to HTTPS.
	Secure bool
}

// sessionIDKey is the context key for storing the session id.
type sessionIDKey struct{}

// WithSessionID returns a new context with the given session id stored in it.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext extracts the session id from the context.
// Returns an empty string if no session id is stored.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Session returns middleware that identifies the browser session. The cookie
// carries "<uuid>.<signature>"; a missing, tampered or unparsable cookie
// starts a new session with a fresh id. The cookie is rewritten on every
// response so its expiry slides with activity.
func Session(opts SessionOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(opts.CookieName); err == nil {
				id = verifySessionCookie(c.Value, opts.Secret)
			}
			if id == "" {
				id = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     opts.CookieName,
				Value:    SignSessionID(id, opts.Secret),
				Path:     "/",
				MaxAge:   int(opts.TTL / time.Second),
				HttpOnly: true,
				Secure:   opts.Secure,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

// SignSessionID returns the cookie value for id.
func SignSessionID(id string, secret []byte) string {
	return id + "." + base64.RawURLEncoding.EncodeToString(sessionMAC(id, secret))
}

// verifySessionCookie returns the session id carried by value, or "" if the
// value is not a well-formed, correctly signed id.
func verifySessionCookie(value string, secret []byte) string {
	id, sig, ok := strings.Cut(value, ".")
	if !ok {
		return ""
	}
	if _, err := uuid.Parse(id); err != nil {
		return ""
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return ""
	}
	if !hmac.Equal(got, sessionMAC(id, secret)) {
		return ""
	}
	return id
}

func sessionMAC(id string, secret []byte) []byte {
	m := hmac.New(sha256.New, secret)
	m.Write([]byte(id))
	return m.Sum(nil)
}
