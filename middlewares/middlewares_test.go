package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/stretchr/testify/assert"
)

func TestRequireAccountMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantCode    int
		wantAccount string
	}{
		{name: "present", header: " acc-1 ", wantCode: http.StatusOK, wantAccount: "acc-1"},
		{name: "missing", wantCode: http.StatusUnauthorized},
		{name: "blank", header: "  ", wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = r.Header.Get(consts.AccountHeader)
			})

			r := httptest.NewRequest(http.MethodGet, "/imports", nil)
			if tt.header != "" {
				r.Header.Set(consts.AccountHeader, tt.header)
			}
			w := httptest.NewRecorder()
			RequireAccountMiddleware(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantAccount, seen)
		})
	}
}

func TestSetContentTypeMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	SetContentTypeMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}
