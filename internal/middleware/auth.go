package middleware

import (
	"net/http"

	"github.com/products-catalog/backend/internal/config"
)

// APIKeyAuth middleware validates the API key passed in the
// "api_key" header. Mutating catalog routes sit behind it.
func APIKeyAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("api_key")

			if apiKey == "" {
				http.Error(w, "Unauthorized: API key required", http.StatusUnauthorized)
				return
			}

			// Validate API key
			valid := false
			for _, validKey := range cfg.APIKeys {
				if apiKey == validKey {
					valid = true
					break
				}
			}

			if !valid {
				http.Error(w, "Forbidden: Invalid API key", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
