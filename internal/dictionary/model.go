// Package dictionary defines the lookup result shared by dictionary providers.
package dictionary

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse is returned when a successful response carries no entries.
	ErrEmptyResponse = errors.New("dictionary response has no entries")
	// ErrNoMeaning is returned when an entry has no definition to summarize.
	ErrNoMeaning = errors.New("dictionary entry has no meaning")
)

// License is the attribution attached to a dictionary entry.
type License struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Content is the simplified record returned to the requester.
type Content struct {
	Word       string   `json:"word,omitempty" yaml:"word,omitempty"`
	Phonetic   string   `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	AudioSrc   string   `json:"audioSrc,omitempty" yaml:"audio_src,omitempty"`
	Meaning    string   `json:"meaning,omitempty" yaml:"meaning,omitempty"`
	License    *License `json:"license,omitempty" yaml:"license,omitempty"`
	SourceURLs []string `json:"sourceUrls,omitempty" yaml:"source_urls,omitempty"`
}

func (c Content) isEmpty() bool {
	return c.Word == "" && c.Phonetic == "" && c.AudioSrc == "" && c.Meaning == "" &&
		c.License == nil && len(c.SourceURLs) == 0
}

// MarshalJSON encodes an empty Content as {}. Any other Content always
// carries word, audioSrc and meaning, even when they are empty strings.
func (c Content) MarshalJSON() ([]byte, error) {
	if c.isEmpty() {
		return []byte("{}"), nil
	}
	return json.Marshal(struct {
		Word       string   `json:"word"`
		Phonetic   string   `json:"phonetic,omitempty"`
		AudioSrc   string   `json:"audioSrc"`
		Meaning    string   `json:"meaning"`
		License    *License `json:"license,omitempty"`
		SourceURLs []string `json:"sourceUrls,omitempty"`
	}{
		Word:       c.Word,
		Phonetic:   c.Phonetic,
		AudioSrc:   c.AudioSrc,
		Meaning:    c.Meaning,
		License:    c.License,
		SourceURLs: c.SourceURLs,
	})
}

// Status tags the outcome of a lookup.
type Status int

const (
	StatusFound Status = iota
	// StatusNoDefinitions means the provider answered but had nothing for the word.
	StatusNoDefinitions
	StatusNotFound
	// StatusUpstreamError is any non-success HTTP status other than 404.
	StatusUpstreamError
	// StatusTransportError covers network failures and unparsable bodies.
	StatusTransportError
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNoDefinitions:
		return "no_definitions"
	case StatusNotFound:
		return "not_found"
	case StatusUpstreamError:
		return "upstream_error"
	case StatusTransportError:
		return "transport_error"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Result is the tagged outcome of a single lookup.
type Result struct {
	Status Status
	// Content is set only when Status is StatusFound.
	Content Content
	// StatusCode is the upstream HTTP status when one was received.
	StatusCode int
	Err        error
}

// Found builds a successful result.
func Found(content Content) Result {
	return Result{Status: StatusFound, Content: content}
}

// NoDefinitions builds the result for a provider-level "no definitions" answer.
func NoDefinitions(statusCode int) Result {
	return Result{Status: StatusNoDefinitions, StatusCode: statusCode}
}

// NotFound builds the result for an HTTP 404.
func NotFound() Result {
	return Result{Status: StatusNotFound, StatusCode: 404}
}

// UpstreamError builds the result for a non-404 HTTP failure.
func UpstreamError(statusCode int, body string) Result {
	return Result{
		Status:     StatusUpstreamError,
		StatusCode: statusCode,
		Err:        fmt.Errorf("status code: %d, body: %s", statusCode, body),
	}
}

// TransportError builds the result for a network or decoding failure.
func TransportError(cause error) Result {
	return Result{Status: StatusTransportError, Err: cause}
}
