// Package petnames is a small typed client for the pet name API.
package petnames

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	catmapper "github.com/Apurer/pet-name-generator/internal/domains/catalog/adapters/http/mapper"
	apierrors "github.com/Apurer/pet-name-generator/internal/shared/errors"
)

// Client calls a running pet name API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError is returned for every 4xx and 5xx answer.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("pet name API answered %d", e.StatusCode)
	}
	return fmt.Sprintf("pet name API answered %d: %s", e.StatusCode, e.Detail)
}

// NewClient instantiates the client with sane defaults.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("pet name API base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

// Status issues a GET for path and reports only the status code.
func (c *Client) Status(ctx context.Context, path string) (int, error) {
	res, err := c.do(ctx, path)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	return res.StatusCode, nil
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*catmapper.HealthResponse, error) {
	var out catmapper.HealthResponse
	return &out, c.getJSON(ctx, "/health", &out)
}

// PetTypes calls GET /pets.
func (c *Client) PetTypes(ctx context.Context) (*catmapper.PetTypesResponse, error) {
	var out catmapper.PetTypesResponse
	return &out, c.getJSON(ctx, "/pets", &out)
}

// Names calls GET /pets/{type}/names.
func (c *Client) Names(ctx context.Context, petType string, count int, random bool) (*catmapper.PetNamesResponse, error) {
	query := url.Values{
		"count":            {strconv.Itoa(count)},
		"random_selection": {strconv.FormatBool(random)},
	}
	var out catmapper.PetNamesResponse
	return &out, c.getJSON(ctx, "/pets/"+url.PathEscape(petType)+"/names?"+query.Encode(), &out)
}

// RandomFact calls GET /facts/random.
func (c *Client) RandomFact(ctx context.Context) (*catmapper.PetFactResponse, error) {
	var out catmapper.PetFactResponse
	return &out, c.getJSON(ctx, "/facts/random", &out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	res, err := c.do(ctx, path)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(res)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, path string) (*http.Response, error) {
	if c == nil || c.httpClient == nil {
		return nil, errors.New("pet name client not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call pet name API: %w", err)
	}
	return res, nil
}

func decodeAPIError(res *http.Response) error {
	var problem apierrors.ProblemDetail
	_ = json.NewDecoder(res.Body).Decode(&problem)
	return &APIError{StatusCode: res.StatusCode, Detail: problem.Detail}
}
