package request

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyLimit(t *testing.T) {
	tests := []struct {
		name     string
		maxBytes int64
		body     string
		wantErr  bool
	}{
		{name: "under limit", maxBytes: 1024, body: strings.Repeat("x", 100)},
		{name: "exactly at limit", maxBytes: 100, body: strings.Repeat("x", 100)},
		{name: "empty body", maxBytes: 1024, body: ""},
		{name: "over limit", maxBytes: 100, body: strings.Repeat("x", 200), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				data    []byte
				readErr error
			)
			handler := BodyLimit(tt.maxBytes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				data, readErr = io.ReadAll(r.Body)
			}))

			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tt.body))
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantErr {
				var tooLarge *http.MaxBytesError
				require.True(t, errors.As(readErr, &tooLarge))
				assert.Equal(t, tt.maxBytes, tooLarge.Limit)
				return
			}
			require.NoError(t, readErr)
			assert.Len(t, data, len(tt.body))
		})
	}
}
