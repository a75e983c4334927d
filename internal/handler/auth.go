package handler

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const gateCookieName = "results_token"

// AuthGate guards the results view with a single shared secret. It is a view
// toggle for the people running the survey, not a security boundary; there
// are no user accounts behind it.
type AuthGate struct {
	secret string
}

// NewAuthGate returns a gate for the configured secret. A secret that looks
// like a bcrypt hash ($2a$/$2b$...) is compared as one, so deployments can
// avoid keeping the plaintext in their config.
func NewAuthGate(secret string) *AuthGate {
	return &AuthGate{secret: secret}
}

// Check reports whether the presented secret unlocks the gate.
func (g *AuthGate) Check(secret string) bool {
	if g.secret == "" {
		return false
	}
	if strings.HasPrefix(g.secret, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(g.secret), []byte(secret)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(g.secret), []byte(secret)) == 1
}

// tokenSet holds the gate tokens issued to unlocked browsers. Tokens live in
// memory only; a restart locks the results view again.
type tokenSet struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func newTokenSet() *tokenSet {
	return &tokenSet{tokens: make(map[string]struct{})}
}

func (ts *tokenSet) issue() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)
	ts.mu.Lock()
	ts.tokens[token] = struct{}{}
	ts.mu.Unlock()
	return token, nil
}

func (ts *tokenSet) valid(token string) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	_, ok := ts.tokens[token]
	return ok
}

func (ts *tokenSet) revoke(token string) {
	ts.mu.Lock()
	delete(ts.tokens, token)
	ts.mu.Unlock()
}

// requireGate redirects to the login page unless the request carries a valid
// gate token.
func (h *Handler) requireGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(gateCookieName)
		if err != nil || cookie.Value == "" || !h.tokens.valid(cookie.Value) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) setGateCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     gateCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.config.SecureCookies,
	})
}
