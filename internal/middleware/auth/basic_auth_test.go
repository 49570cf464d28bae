package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := map[string]struct {
		configPass string
		user, pass string
		setAuth    bool
		want       int
	}{
		"Valid":         {configPass: "secret", user: "admin", pass: "secret", setAuth: true, want: http.StatusNoContent},
		"WrongPassword": {configPass: "secret", user: "admin", pass: "nope", setAuth: true, want: http.StatusUnauthorized},
		"WrongUser":     {configPass: "secret", user: "root", pass: "secret", setAuth: true, want: http.StatusUnauthorized},
		"NoHeader":      {configPass: "secret", want: http.StatusUnauthorized},
		"EmptyConfig":   {configPass: "", user: "admin", pass: "", setAuth: true, want: http.StatusUnauthorized},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
			if tc.setAuth {
				req.SetBasicAuth(tc.user, tc.pass)
			}
			rr := httptest.NewRecorder()

			BasicAuth("admin", tc.configPass)(ok).ServeHTTP(rr, req)

			assert.Equal(t, tc.want, rr.Code)
			if tc.want == http.StatusUnauthorized {
				assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Basic")
			}
		})
	}
}
