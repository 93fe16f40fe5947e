package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Cors()(next)

	testCases := []struct {
		name               string
		origin             string
		userAgent          string
		expectedStatusCode int
	}{
		{
			name:               "AllowedOrigin",
			origin:             "http://localhost:8081",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "MobileApp",
			userAgent:          "FitPal/1.0 (iOS)",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "Curl",
			userAgent:          "curl/8.4.0",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "UnknownOrigin",
			origin:             "https://evil.example.com",
			expectedStatusCode: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/water/today", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.userAgent != "" {
				req.Header.Set("User-Agent", tc.userAgent)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tc.expectedStatusCode, rr.Code)

			if tc.expectedStatusCode == http.StatusOK && tc.origin != "" {
				assert.Equal(t, tc.origin, rr.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
