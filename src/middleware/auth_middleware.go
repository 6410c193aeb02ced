package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ParseKeyFromRequest extracts the bearer credential from the request.
func ParseKeyFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("missing credentials")
	}
	return strings.TrimPrefix(header, "Bearer "), nil
}

// ServiceKeyMiddleware gates the data routes behind the service credential
// the process was started with. The compare is constant time.
func ServiceKeyMiddleware(serviceKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, err := ParseKeyFromRequest(r)
			if err != nil {
				unauthorized(w, err.Error())
				return
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(serviceKey)) != 1 {
				unauthorized(w, "invalid credentials")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
