package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/adapters/http/middleware"
)

const (
	testCookieName = "todo_session"
	testSessionID  = "6f1c1f1e-2b1a-4c53-9d4e-2f6f0b8a9c11"
)

var testSecret = []byte("0123456789abcdef0123")

func sessionOpts() middleware.SessionOptions {
	return middleware.SessionOptions{
		CookieName: testCookieName,
		Secret:     testSecret,
		TTL:        24 * time.Hour,
		Secure:     true,
	}
}

func serveSession(t *testing.T, cookie *http.Cookie) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var gotID string
	handler := middleware.Session(sessionOpts())(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.SessionIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/lists", http.NoBody)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	handler.ServeHTTP(rec, req)
	return gotID, rec
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	t.Fatalf("response has no %s cookie", testCookieName)
	return nil
}

func TestSession_NewSessionGetsSignedCookie(t *testing.T) {
	t.Parallel()

	id, rec := serveSession(t, nil)

	if !uuidPattern.MatchString(id) {
		t.Fatalf("session id %q is not a UUID v4", id)
	}
	c := responseCookie(t, rec)
	if c.Value != middleware.SignSessionID(id, testSecret) {
		t.Errorf("cookie value = %q, want signed %q", c.Value, id)
	}
	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie flags HttpOnly=%v Secure=%v SameSite=%v", c.HttpOnly, c.Secure, c.SameSite)
	}
	if c.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Errorf("MaxAge = %d, want %d", c.MaxAge, int((24 * time.Hour).Seconds()))
	}
	if c.Path != "/" {
		t.Errorf("Path = %q, want /", c.Path)
	}
}

func TestSession_ValidCookieKeepsID(t *testing.T) {
	t.Parallel()

	id, rec := serveSession(t, &http.Cookie{
		Name:  testCookieName,
		Value: middleware.SignSessionID(testSessionID, testSecret),
	})

	if id != testSessionID {
		t.Errorf("session id = %q, want %q", id, testSessionID)
	}
	if c := responseCookie(t, rec); !strings.HasPrefix(c.Value, testSessionID+".") {
		t.Errorf("refreshed cookie = %q, want same session", c.Value)
	}
}

func TestSession_RejectsBadCookies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{name: "unsigned", value: testSessionID},
		{name: "wrong secret", value: middleware.SignSessionID(testSessionID, []byte("another-secret-value"))},
		{name: "tampered id", value: "7f1c1f1e-2b1a-4c53-9d4e-2f6f0b8a9c11." + strings.SplitN(middleware.SignSessionID(testSessionID, testSecret), ".", 2)[1]},
		{name: "not a uuid", value: middleware.SignSessionID("admin", testSecret)},
		{name: "bad encoding", value: testSessionID + ".!!!"},
		{name: "empty", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, _ := serveSession(t, &http.Cookie{Name: testCookieName, Value: tt.value})
			if id == testSessionID || id == "admin" {
				t.Errorf("session id = %q, want a fresh id", id)
			}
			if !uuidPattern.MatchString(id) {
				t.Errorf("session id %q is not a UUID v4", id)
			}
		})
	}
}

func TestSessionIDFromContext_Empty(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if got := middleware.SessionIDFromContext(req.Context()); got != "" {
		t.Errorf("SessionIDFromContext = %q, want empty", got)
	}
}
