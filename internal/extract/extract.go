// Package extract locates the main product image on a shopping page
// without going through the backend. It mirrors the backend's own
// strategy chain: Open Graph image, then Twitter card image, then
// common product-image selectors, then the largest image on the page.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/digidrobe/digidrobe-go/internal/domain"
	"github.com/digidrobe/digidrobe-go/pkg/httpclient"
)

const maxHTMLBodyBytes = 2 << 20 // 2 MiB

// browserHeaders make shop pages serve the same markup they serve real browsers.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
}

// productSelectors cover the image markup of major e-commerce sites.
var productSelectors = []string{
	"img[data-zoom-image]",
	"img.product-image",
	"img.main-image",
	"img#landingImage",
	`img[class*="product"]`,
	`img[class*="gallery"]`,
	"picture source",
	".product-gallery img",
	".pdp-image img",
}

var nonDigits = regexp.MustCompile(`[^\d]`)

// Extractor fetches shop pages and pulls out their product image.
type Extractor struct {
	client httpclient.Client
}

// New constructs an Extractor with the provided HTTP client.
func New(client httpclient.Client) *Extractor {
	return &Extractor{client: client}
}

// Extract fetches pageURL and returns the product image it finds.
// A missing scheme defaults to https.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (*domain.ExtractResult, error) {
	pageURL = strings.TrimSpace(pageURL)
	if pageURL == "" {
		return nil, fmt.Errorf("url is required")
	}
	if !strings.HasPrefix(pageURL, "http") {
		pageURL = "https://" + pageURL
	}

	resp, err := e.client.Get(ctx, pageURL, browserHeaders)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("fetch page: status %d", resp.StatusCode())
	}

	body := resp.Body()
	if len(body) > maxHTMLBodyBytes {
		body = body[:maxHTMLBodyBytes]
	}

	imageURL, err := findProductImage(body)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		return nil, fmt.Errorf("no product image found on page")
	}

	return &domain.ExtractResult{
		Success:   true,
		ImageURL:  resolveURL(imageURL, pageURL),
		SourceURL: pageURL,
	}, nil
}

func findProductImage(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	meta := func(sel string) string {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			if val, ok := node.Attr("content"); ok {
				return strings.TrimSpace(val)
			}
		}
		return ""
	}

	if img := meta(`meta[property="og:image"]`); img != "" {
		return img, nil
	}
	if img := meta(`meta[name="twitter:image"]`); img != "" {
		return img, nil
	}

	for _, sel := range productSelectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		if img := imageSource(node); img != "" {
			return img, nil
		}
	}

	return largestImage(doc), nil
}

// imageSource pulls the first usable source attribute off an img/source node.
func imageSource(node *goquery.Selection) string {
	if src, ok := node.Attr("src"); ok && strings.TrimSpace(src) != "" {
		return strings.TrimSpace(src)
	}
	if src, ok := node.Attr("data-src"); ok && strings.TrimSpace(src) != "" {
		return strings.TrimSpace(src)
	}
	if srcset, ok := node.Attr("srcset"); ok {
		if fields := strings.Fields(srcset); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}

// largestImage picks the img with the biggest declared width*height,
// skipping obvious logos and icons.
func largestImage(doc *goquery.Document) string {
	best := ""
	bestSize := 0

	doc.Find("img").Each(func(_ int, node *goquery.Selection) {
		src, _ := node.Attr("src")
		if src == "" {
			src, _ = node.Attr("data-src")
		}
		lower := strings.ToLower(src)
		if src == "" || strings.Contains(lower, "logo") || strings.Contains(lower, "icon") {
			return
		}

		size := sizeHint(node, "width") * sizeHint(node, "height")
		if size > bestSize {
			bestSize = size
			best = src
		}
	})

	return best
}

func sizeHint(node *goquery.Selection, attr string) int {
	raw, _ := node.Attr(attr)
	n, err := strconv.Atoi(nonDigits.ReplaceAllString(raw, ""))
	if err != nil {
		return 0
	}
	return n
}

// resolveURL makes scheme-relative and path-relative image URLs
// absolute against the page they came from.
func resolveURL(imageURL, pageURL string) string {
	if imageURL == "" {
		return ""
	}
	if strings.HasPrefix(imageURL, "//") {
		return "https:" + imageURL
	}
	if strings.HasPrefix(imageURL, "/") {
		parsed, err := url.Parse(pageURL)
		if err != nil {
			return imageURL
		}
		return parsed.Scheme + "://" + parsed.Host + imageURL
	}
	return imageURL
}
