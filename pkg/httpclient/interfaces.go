package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts plain GET fetches so callers can inject mocks or
// different transports. The wardrobe API client holds a full
// resty.Client instead; this interface serves fetch-and-parse
// consumers such as the page-image extractor.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}
