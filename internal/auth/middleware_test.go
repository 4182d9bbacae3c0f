package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func Test_AuthMiddleware_Cases(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		header     string
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "empty token disables auth",
			token:      "",
			header:     "",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "valid bearer token passes",
			token:      "secret",
			header:     "Bearer secret",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header is rejected",
			token:      "secret",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong token is rejected",
			token:      "secret",
			header:     "Bearer other",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "lowercase prefix is rejected",
			token:      "secret",
			header:     "bearer secret",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token value is rejected",
			token:      "secret",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "extra space is rejected",
			token:      "secret",
			header:     "Bearer  secret",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := NewAuthMiddleware(tt.token)(next)

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if nextCalled != tt.wantNext {
				t.Errorf("next called = %v, want %v", nextCalled, tt.wantNext)
			}
		})
	}
}
