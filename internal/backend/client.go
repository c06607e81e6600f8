// Package backend provides the HTTP client for the project-management
// service scans are registered with. The service itself and its protocol
// are external collaborators; this client covers only the calls the
// scanner needs.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/minelate/packscan/internal/engine"
)

// Client is the interface for the backend transport layer.
type Client interface {
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// CreateProject registers a completed scan as a translation project
	// and returns the backend-assigned project id.
	CreateProject(ctx context.Context, result *engine.ScanResult) (string, error)
}

// ClientOptions holds configuration for creating a new DefaultClient.
type ClientOptions struct {
	// BaseURL is the backend API root, e.g. http://localhost:8000/api/v1.
	BaseURL string

	// Timeout is the default timeout for all requests.
	Timeout time.Duration

	// MaxRPS is the maximum requests per second (0 = unlimited).
	MaxRPS float64
}

// DefaultClient is the default implementation of the Client interface,
// backed by net/http.
type DefaultClient struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// Compile-time check that DefaultClient implements Client.
var _ Client = (*DefaultClient)(nil)

// NewClient creates a new DefaultClient with the given options.
func NewClient(opts ClientOptions) (*DefaultClient, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("backend: base URL is required")
	}

	c := &DefaultClient{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
	}

	// Configure rate limiter if specified.
	if opts.MaxRPS > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.MaxRPS), 1)
	}

	return c, nil
}

// createProjectRequest is the JSON document posted to /projects.
type createProjectRequest struct {
	ScanID        string `json:"scan_id"`
	Name          string `json:"name"`
	Version       string `json:"version"`
	MCVersion     string `json:"mc_version"`
	Loader        string `json:"loader"`
	LoaderVersion string `json:"loader_version"`
	ProjectType   string `json:"project_type"`
	Directory     string `json:"directory"`
}

// createProjectResponse carries the backend-assigned identifier.
type createProjectResponse struct {
	ProjectID string `json:"project_id"`
}

// Ping performs a GET against the backend root.
func (c *DefaultClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("backend: creating request: %w", err)
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return fmt.Errorf("backend: health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("backend: health check returned status %d", resp.StatusCode)
	}
	return nil
}

// CreateProject posts the scan's identity to the backend. Fields the
// manifest could not provide fall back to conventional defaults.
func (c *DefaultClient) CreateProject(ctx context.Context, result *engine.ScanResult) (string, error) {
	request := createProjectRequest{
		ScanID:        result.ScanID,
		Name:          "New Project",
		Version:       "1.0.0",
		MCVersion:     "1.20.1",
		Loader:        "fabric",
		LoaderVersion: "0.15.0",
		ProjectType:   "modpack",
		Directory:     result.ProjectPath,
	}
	if m := result.ModpackManifest; m != nil {
		request.Name = m.Name
		request.MCVersion = m.MinecraftVersion
		request.Loader = m.Loader
		request.LoaderVersion = m.LoaderVersion
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("backend: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/projects", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("backend: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(ctx, req)
	if err != nil {
		return "", fmt.Errorf("backend: create project: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("backend: create project returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(text)))
	}

	var response createProjectResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("backend: parse response: %w", err)
	}
	if response.ProjectID == "" {
		return "", fmt.Errorf("backend: no project_id in response")
	}
	return response.ProjectID, nil
}

// do applies rate limiting before dispatching the request.
func (c *DefaultClient) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}
	return c.httpClient.Do(req)
}
