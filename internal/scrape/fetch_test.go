package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runPage = `<html><body>
	<span data-dobid="hdw">run</span>
	<div data-dobid="dfn"><span>move fast</span></div>
</body></html>`

func TestFetcher_Fetch(t *testing.T) {
	tests := []struct {
		name              string
		mockServerHandler func(w http.ResponseWriter, r *http.Request)
		wantWord          string
		wantErr           bool
	}{
		{
			name: "page with headword",
			mockServerHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				_, _ = w.Write([]byte(runPage))
			},
			wantWord: "run",
		},
		{
			name: "error status",
			mockServerHandler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.mockServerHandler))
			defer server.Close()

			fetcher := NewFetcher(0)
			defer func() {
				_ = fetcher.Close()
			}()

			doc, err := fetcher.Fetch(context.Background(), server.URL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			got := NewExtractor(DefaultSpeechURI).ExtractMeaning(doc, Context{Lang: "en"})
			require.NotNil(t, got)
			assert.Equal(t, tt.wantWord, got.Word)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.html")
	require.NoError(t, os.WriteFile(path, []byte(runPage), 0644))

	doc, err := ParseFile(path)
	require.NoError(t, err)
	got := NewExtractor(DefaultSpeechURI).ExtractMeaning(doc, Context{Lang: "en"})
	require.NotNil(t, got)
	assert.Equal(t, "Move fast", got.Meaning)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}
