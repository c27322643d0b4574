package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AddKeyParam is the query parameter that carries the event creation key.
const AddKeyParam = "key"

// NewAddKeyGate returns a middleware that only lets a request through when
// its key query parameter equals key. An empty key disables the gate.
// Mismatches answer 404 so the gated routes look like they do not exist.
func NewAddKeyGate(key string) func(http.Handler) http.Handler {
	want := []byte(key)
	return func(next http.Handler) http.Handler {
		if len(want) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.URL.Query().Get(AddKeyParam))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				writeError(w, http.StatusNotFound, "not_found", "not found")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
