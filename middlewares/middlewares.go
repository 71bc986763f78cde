package middlewares

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/radhian/reservation-reconciliation/consts"
)

func SetContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// RequireAccountMiddleware rejects requests that do not name the account they act on.
func RequireAccountMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account := strings.TrimSpace(r.Header.Get(consts.AccountHeader))
		if account == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{
				"status":  "error",
				"message": consts.AccountHeader + " header is required",
			})
			return
		}
		r.Header.Set(consts.AccountHeader, account)
		next.ServeHTTP(w, r)
	})
}
