package analysisclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAnalysisURL = "http://127.0.0.1:5000/analyze"

// Client forwards uploaded images to the external skin-analysis service
// and relays its JSON response verbatim.
type Client struct {
	endpoint string
	client   *http.Client
}

// New creates an analysis client. timeout bounds the whole outbound
// call; a hung analysis service fails the issuing request only.
func New(endpoint string, timeout time.Duration) (*Client, error) {
	if endpoint == "" {
		endpoint = defaultAnalysisURL
	}
	parsed, err := url.Parse(strings.TrimSuffix(endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid analysis service URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid analysis service URL scheme %q: must be http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("invalid analysis service URL: missing host")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		endpoint: parsed.String(),
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// Analyze sends the image bytes as a multipart "file" part and returns
// the service's raw JSON body. Non-2xx upstream statuses are errors.
func (c *Client) Analyze(ctx context.Context, filename string, data []byte) ([]byte, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis service request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("analysis service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
