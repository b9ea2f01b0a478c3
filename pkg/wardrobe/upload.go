package wardrobe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/digidrobe/digidrobe-go/internal/domain"
)

var extensionPattern = regexp.MustCompile(`\.([A-Za-z0-9]+)$`)

// ProcessImage uploads a local clothing photo as multipart/form-data
// and returns the backend's analysis. The uploaded filename is the
// trailing path segment of the reference (image.jpg when there is
// none) and the declared MIME type is image/{ext} from the filename
// extension (image/jpeg when there is none).
func (c *Client) ProcessImage(ctx context.Context, imageRef string) (*domain.ProcessedImage, error) {
	localPath := strings.TrimPrefix(imageRef, "file://")

	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", localPath, err)
	}
	defer f.Close()

	filename, contentType := uploadNameAndType(imageRef)
	resp, err := c.hc.R().
		SetContext(ctx).
		SetMultipartFields(&resty.MultipartField{
			Param:       "image",
			FileName:    filename,
			ContentType: contentType,
			Reader:      f,
		}).
		Post(c.baseURL + "/process-image")
	if err != nil {
		return nil, fmt.Errorf("POST /process-image: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("image processing failed: %w", newAPIError(resp.StatusCode(), resp.Body()))
	}

	var processed domain.ProcessedImage
	if err := json.Unmarshal(resp.Body(), &processed); err != nil {
		return nil, &DecodeError{Op: "POST /process-image", Err: err}
	}
	return &processed, nil
}

// uploadNameAndType derives the upload filename from the trailing
// path segment of the image reference and the declared MIME type from
// its extension. References without a recognizable extension fall back
// to image.jpg and image/jpeg.
func uploadNameAndType(imageRef string) (filename, contentType string) {
	trimmed := strings.TrimRight(imageRef, "/")
	segment := trimmed
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		segment = trimmed[idx+1:]
	}

	m := extensionPattern.FindStringSubmatch(segment)
	if m == nil {
		return "image.jpg", "image/jpeg"
	}
	return segment, "image/" + strings.ToLower(m[1])
}
