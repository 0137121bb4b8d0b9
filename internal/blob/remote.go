package blob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const remoteAPIVersion = "7"

// Remote uploads blobs to a third-party object store over HTTP. The object is
// created with a publicly readable access policy and the declared content
// type; the reference is the absolute URL returned by the store.
type Remote struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewRemote creates a remote backend. The client timeout is a hard upper
// bound; callers are expected to also pass a bounded context per request.
func NewRemote(baseURL, token string, timeout time.Duration) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *Remote) Name() string { return "remote" }

// Store uploads the blob via HTTP PUT and returns the public URL from the
// store's response.
func (r *Remote) Store(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	endpoint := r.baseURL + "/" + url.PathEscape(name) + "?access=public"

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("x-api-version", remoteAPIVersion)
	if contentType != "" {
		req.Header.Set("x-content-type", contentType)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload blob: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("blob store rejected upload: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("blob store returned no url")
	}

	return result.URL, nil
}
