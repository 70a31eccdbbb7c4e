package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/dishalabs/disha/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{"newer available", "v1.0.0", "v2.0.0", true},
		{"same version", "v1.0.0", "v1.0.0", false},
		{"running ahead of release", "v2.1.0", "v2.0.0", false},
		{"patch bump", "v1.0.0", "v1.0.1", true},
		{"tag without v prefix", "1.0.0", "1.1.0", true},
		{"unparseable tag", "v1.0.0", "nightly", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := releaseServer(t, tt.latest)
			checker := NewChecker(WithBaseURL(server.URL))

			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.UpdateAvailable)
			assert.Equal(t, tt.latest, result.LatestVersion)
		})
	}
}

func TestCheckServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}
