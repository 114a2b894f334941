// Package testutil provides shared test helpers for config files and a fake dictionary API.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// EntriesPath is the path prefix the fake dictionary serves entries under.
const EntriesPath = "/api/v2/entries"

// NotFoundBody is what the dictionary API answers with a 404.
const NotFoundBody = `{"title":"No Definitions Found","message":"Sorry pal, we couldn't find definitions for the word you were looking for.","resolution":"You can try the search again at later time or head to the web instead."}`

// NewDictionaryServer serves the given bodies keyed by "{lang}/{word}".
// Unknown words get a 404 with NotFoundBody.
func NewDictionaryServer(t *testing.T, entries map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.Path, EntriesPath+"/")
		w.Header().Set("Content-Type", "application/json")
		body, ok := entries[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			body = NotFoundBody
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

// SetupTestConfig writes a config file using the dictionary at endpoint and a
// file store under tmpDir. Returns the paths of the config and storage files.
func SetupTestConfig(t *testing.T, tmpDir string, endpoint string) (string, string) {
	t.Helper()

	storagePath := filepath.Join(tmpDir, "data", "storage.yml")
	configContent := fmt.Sprintf(`dictionary:
  endpoint: %s
storage:
  backend: file
  file:
    path: %s
`, endpoint, storagePath)

	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return configPath, storagePath
}
