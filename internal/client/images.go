package client

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

const defaultImageFilename = "image.jpg"

// ImagesClient implements the ads.ImagesClient interface.
type ImagesClient struct {
	entityClient[ads.AdImage]
}

// NewImagesClient creates a new ImagesClient.
func NewImagesClient(httpClient *http.Client, pages pageLimits) *ImagesClient {
	return &ImagesClient{
		entityClient: newEntityClient[ads.AdImage](httpClient, pages, "image", "images", constants.ImageFields),
	}
}

// List lists the images of an ad account.
func (c *ImagesClient) List(ctx context.Context, accountID string, opts *ads.ListOptions) (*ads.ListResponse[ads.AdImage], error) {
	path, err := c.accountPath(accountID, "adimages")
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}

	return c.list(ctx, path, opts, nil)
}

// uploadResponse is keyed by the uploaded file name.
type uploadResponse struct {
	Images map[string]ads.AdImage `json:"images"`
}

// Upload sends the image bytes as a multipart form and returns the stored image.
func (c *ImagesClient) Upload(ctx context.Context, request *ads.ImageUploadRequest) (*ads.AdImage, error) {
	if request == nil || len(request.Bytes) == 0 {
		return nil, fmt.Errorf("uploading image: %w", constants.ErrImageBytesRequired)
	}

	path, err := c.accountPath(request.AccountID, "adimages")
	if err != nil {
		return nil, fmt.Errorf("uploading image: %w", err)
	}

	filename := filepath.Base(strings.TrimSpace(request.Filename))
	if filename == "" || filename == "." || filename == "/" {
		filename = defaultImageFilename
	}

	resp, err := c.httpClient.SubmitForm(ctx, path, nil, []http.FormFile{
		{Field: "filename", Filename: filename, Content: request.Bytes},
	})
	if err != nil {
		return nil, fmt.Errorf("uploading image: %w", err)
	}

	var result uploadResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing image upload response: %w", err)
	}

	for name, image := range result.Images {
		if image.Name == "" {
			image.Name = name
		}

		return &image, nil
	}

	return nil, fmt.Errorf("uploading image: %w: no image returned", constants.ErrUnexpectedResponse)
}
