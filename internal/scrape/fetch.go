package scrape

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"resty.dev/v3"
)

// Fetcher loads pages to extract definitions from.
type Fetcher struct {
	httpClient *resty.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	client := resty.New()
	client.SetHeader("Accept", "text/html")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Fetcher{httpClient: client}
}

func (f *Fetcher) Close() error {
	return f.httpClient.Close()
}

// Fetch downloads and parses the page at pageURL.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	response, err := f.httpClient.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(response.String()))
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader > %w", err)
	}
	return doc, nil
}

// ParseFile parses a saved HTML page.
func ParseFile(path string) (*goquery.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader > %w", err)
	}
	return doc, nil
}
