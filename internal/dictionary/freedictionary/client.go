package freedictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/glossa/internal/dictionary"
)

// DefaultEndpoint is the entries endpoint of the public Free Dictionary API.
const DefaultEndpoint = "https://api.dictionaryapi.dev/api/v2/entries"

// Client looks up words on the Free Dictionary API.
type Client struct {
	httpClient *resty.Client
	endpoint   string
}

// NewClient creates a client for the given entries endpoint.
// A zero timeout leaves requests unbounded.
func NewClient(endpoint string, timeout time.Duration) *Client {
	client := resty.New()
	// Requests are sent without credentials.
	client.SetCookieJar(nil)
	client.SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		httpClient: client,
		endpoint:   strings.TrimRight(endpoint, "/"),
	}
}

// Lookup implements lookup.Dictionary.
func (c *Client) Lookup(ctx context.Context, lang, word string) dictionary.Result {
	_, result := c.LookupEntry(ctx, lang, word)
	return result
}

// LookupEntry returns the first entry for the word together with the tagged result.
// The entry is only meaningful when the result is StatusFound.
func (c *Client) LookupEntry(ctx context.Context, lang, word string) (Entry, dictionary.Result) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"lang": lang,
			"word": word,
		}).
		Get(c.endpoint + "/{lang}/{word}")
	if err != nil {
		return Entry{}, dictionary.TransportError(fmt.Errorf("client.R.Get > %w", err))
	}

	slog.Default().Debug("dictionary response",
		"word", word,
		"lang", lang,
		"status", res.StatusCode(),
		"duration", res.Time(),
	)

	if !res.IsSuccess() {
		if res.StatusCode() == http.StatusNotFound {
			return Entry{}, dictionary.NotFound()
		}
		return Entry{}, dictionary.UpstreamError(res.StatusCode(), string(res.Body()))
	}

	entry, err := firstEntry(res.Body())
	if err != nil {
		return Entry{}, dictionary.TransportError(err)
	}
	if entry.HasNoDefinitions() {
		return entry, dictionary.NoDefinitions(res.StatusCode())
	}

	content, err := entry.ToContent()
	if err != nil {
		return entry, dictionary.TransportError(fmt.Errorf("entry.ToContent > %w", err))
	}
	result := dictionary.Found(content)
	result.StatusCode = res.StatusCode()
	return entry, result
}

func firstEntry(body []byte) (Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return Entry{}, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if len(entries) == 0 {
		return Entry{}, dictionary.ErrEmptyResponse
	}
	return entries[0], nil
}
