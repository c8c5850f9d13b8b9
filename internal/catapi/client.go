package catapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"github.com/ytget/catswipe/internal/model"
)

const (
	// Endpoint is the cataas JSON endpoint returning one random cat per call
	Endpoint = "https://cataas.com/cat?json=true"

	// MaxImageBytes caps a single preloaded image
	MaxImageBytes = 16 << 20
)

// Client implements Source against the cataas API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *zap.Logger
}

// NewClient creates a new cataas client. A nil httpClient uses http.DefaultClient.
func NewClient(httpClient *http.Client, endpoint string, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = Endpoint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		logger:     logger,
	}
}

// FetchOne fetches a cat record and preloads its image
func (c *Client) FetchOne(ctx context.Context) *model.CatRecord {
	rec, err := c.fetchRecord(ctx)
	if err != nil {
		c.logger.Warn("failed to fetch cat", zap.Error(err))
		return nil
	}

	if err := c.preload(ctx, rec); err != nil {
		rec.MarkFailed(err)
		c.logger.Warn("failed to preload cat image",
			zap.String("id", rec.ID),
			zap.String("url", rec.URL),
			zap.Error(err))
		return rec
	}

	c.logger.Debug("cat ready",
		zap.String("id", rec.ID),
		zap.String("url", rec.URL),
		zap.Int("bytes", len(rec.Image)))
	return rec
}

// fetchRecord performs the JSON request and maps the body onto a pending record
func (c *Client) fetchRecord(ctx context.Context) (*model.CatRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return c.toRecord(raw)
}

// toRecord lifts the known fields out of the raw API object
func (c *Client) toRecord(raw map[string]any) (*model.CatRecord, error) {
	rawURL := stringField(raw, "url")
	if rawURL == "" {
		return nil, ErrMissingURL
	}

	imageURL, err := c.resolve(rawURL)
	if err != nil {
		return nil, fmt.Errorf("resolve url %q: %w", rawURL, err)
	}

	id := stringField(raw, "_id")
	if id == "" {
		id = stringField(raw, "id")
	}
	if id == "" {
		id = uuid.NewString()
	}

	rec := model.NewCatRecord(id, imageURL)
	rec.Metadata = raw
	rec.MimeType = stringField(raw, "mimetype")
	if tags, ok := raw["tags"].([]any); ok {
		for _, tag := range tags {
			if s, ok := tag.(string); ok && s != "" {
				rec.Tags = append(rec.Tags, s)
			}
		}
	}

	return rec, nil
}

// resolve turns a possibly relative image location into an absolute URL
func (c *Client) resolve(ref string) (string, error) {
	base, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	target, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(target).String(), nil
}

// preload downloads the image and checks that it decodes
func (c *Client) preload(ctx context.Context, rec *model.CatRecord) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rec.URL, nil)
	if err != nil {
		return fmt.Errorf("build image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("image http call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: image %d", ErrUpstreamStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	if len(data) > MaxImageBytes {
		return ErrImageTooLarge
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	if rec.MimeType == "" {
		rec.MimeType = "image/" + format
	}
	rec.MarkLoaded(data)
	return nil
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
