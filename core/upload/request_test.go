package upload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uploads/core/upload"
)

func TestReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		wantErr     error
	}{
		{"valid", "multipart/form-data; boundary=abc123", nil},
		{"upper case media type", "Multipart/Form-Data; boundary=abc123", nil},
		{"missing", "", upload.ErrUnsupportedMediaType},
		{"json", "application/json", upload.ErrUnsupportedMediaType},
		{"urlencoded", "application/x-www-form-urlencoded", upload.ErrUnsupportedMediaType},
		{"malformed", "multipart/form-data; boundary", upload.ErrUnsupportedMediaType},
		{"no boundary", "multipart/form-data", upload.ErrDecode},
		{"boundary too long", "multipart/form-data; boundary=" + strings.Repeat("b", 71), upload.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/user", strings.NewReader(""))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			mr, err := upload.Reader(req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, mr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, mr)
		})
	}
}
