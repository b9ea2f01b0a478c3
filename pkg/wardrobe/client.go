// Package wardrobe is a typed client for the Digidrobe backend API.
// Every method is a single stateless HTTP round trip: no retries, no
// caching, no request coalescing. Concurrent calls are independent and
// complete in whatever order the network delivers them.
package wardrobe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/digidrobe/digidrobe-go/internal/domain"
	"github.com/digidrobe/digidrobe-go/pkg/httpclient"
)

// DefaultHistoryLimit applies when GetOutfitHistory is called with a
// non-positive limit.
const DefaultHistoryLimit = 20

// Client talks to one backend instance at a fixed base URL. Construct
// it once in the composition root and inject it into consumers; it is
// safe for concurrent use.
type Client struct {
	baseURL string
	hc      *resty.Client
}

// New creates a Client for the given base URL (including any path
// prefix such as /api). A nil transport gets a default resty client
// with no timeout of its own.
func New(baseURL string, hc *resty.Client) *Client {
	if hc == nil {
		hc = httpclient.NewRestyHTTPClient(0)
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

// doJSON is the single request primitive every JSON operation funnels
// through. path is relative to the base URL. A nil out skips response
// decoding entirely.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	req := c.hc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, c.baseURL+path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return newAPIError(resp.StatusCode(), resp.Body())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &DecodeError{Op: method + " " + path, Err: err}
	}
	return nil
}

// HealthCheck probes backend liveness.
func (c *Client) HealthCheck(ctx context.Context) (*domain.HealthStatus, error) {
	var status domain.HealthStatus
	if err := c.doJSON(ctx, resty.MethodGet, "/health", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetWardrobe lists clothing items, newest first. An empty category or
// the "all" sentinel fetches the whole wardrobe with no query string.
func (c *Client) GetWardrobe(ctx context.Context, category string) ([]domain.ClothingItem, error) {
	path := "/wardrobe"
	if category != "" && category != domain.CategoryAll {
		path += "?category=" + url.QueryEscape(category)
	}
	var items []domain.ClothingItem
	if err := c.doJSON(ctx, resty.MethodGet, path, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetClothingItem fetches a single item by its server-assigned ID.
func (c *Client) GetClothingItem(ctx context.Context, id int) (*domain.ClothingItem, error) {
	var item domain.ClothingItem
	if err := c.doJSON(ctx, resty.MethodGet, "/wardrobe/"+strconv.Itoa(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// AddClothingItem creates a wardrobe item from a partial record and
// returns the server's canonical copy, ID included.
func (c *Client) AddClothingItem(ctx context.Context, item domain.ItemPatch) (*domain.ClothingItem, error) {
	var created domain.ClothingItem
	if err := c.doJSON(ctx, resty.MethodPost, "/wardrobe", item, nil, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateClothingItem applies a partial patch and returns the updated record.
func (c *Client) UpdateClothingItem(ctx context.Context, id int, updates domain.ItemPatch) (*domain.ClothingItem, error) {
	var updated domain.ClothingItem
	if err := c.doJSON(ctx, resty.MethodPut, "/wardrobe/"+strconv.Itoa(id), updates, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteClothingItem removes an item. The response body, if any, is discarded.
func (c *Client) DeleteClothingItem(ctx context.Context, id int) error {
	return c.doJSON(ctx, resty.MethodDelete, "/wardrobe/"+strconv.Itoa(id), nil, nil, nil)
}

// GetTodaysOutfit fetches today's recommendation, generating one
// server-side if none exists yet.
func (c *Client) GetTodaysOutfit(ctx context.Context) (*domain.Outfit, error) {
	var outfit domain.Outfit
	if err := c.doJSON(ctx, resty.MethodGet, "/outfit/today", nil, nil, &outfit); err != nil {
		return nil, err
	}
	return &outfit, nil
}

// GenerateOutfit requests a fresh outfit. An empty style means no
// preference and is omitted from the body rather than sent as "".
func (c *Client) GenerateOutfit(ctx context.Context, style string) (*domain.Outfit, error) {
	body := struct {
		Style string `json:"style,omitempty"`
	}{Style: style}
	var outfit domain.Outfit
	if err := c.doJSON(ctx, resty.MethodPost, "/outfit/generate", body, nil, &outfit); err != nil {
		return nil, err
	}
	return &outfit, nil
}

// SubmitOutfitFeedback records liked/saved verdicts for an outfit and
// returns the updated record.
func (c *Client) SubmitOutfitFeedback(ctx context.Context, outfitID int, feedback domain.OutfitFeedback) (*domain.Outfit, error) {
	var outfit domain.Outfit
	path := "/outfit/" + strconv.Itoa(outfitID) + "/feedback"
	if err := c.doJSON(ctx, resty.MethodPost, path, feedback, nil, &outfit); err != nil {
		return nil, err
	}
	return &outfit, nil
}

// GetOutfitHistory lists past outfits, newest first. A non-positive
// limit falls back to DefaultHistoryLimit.
func (c *Client) GetOutfitHistory(ctx context.Context, limit int) ([]domain.Outfit, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	var outfits []domain.Outfit
	path := "/outfit/history?limit=" + strconv.Itoa(limit)
	if err := c.doJSON(ctx, resty.MethodGet, path, nil, nil, &outfits); err != nil {
		return nil, err
	}
	return outfits, nil
}

// ExtractImageFromURL asks the backend to locate the main product
// image on a shopping page.
func (c *Client) ExtractImageFromURL(ctx context.Context, pageURL string) (*domain.ExtractResult, error) {
	body := struct {
		URL string `json:"url"`
	}{URL: pageURL}
	var result domain.ExtractResult
	if err := c.doJSON(ctx, resty.MethodPost, "/extract-image", body, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
