// Package sheet talks to the Google Apps Script web app that fronts the
// project spreadsheet. It is the only package that performs network I/O
// against the sheet backend; everything downstream works on the in-memory
// snapshots it returns.
package sheet

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"apjatelpmo/internal/model"
	"apjatelpmo/pkg/circuitbreaker"
	"apjatelpmo/pkg/metrics"
)

var (
	// ErrNetwork wraps transport failures against the sheet API.
	ErrNetwork = errors.New("sheet backend unreachable")
	// ErrUpload wraps file-upload failures.
	ErrUpload = errors.New("file upload failed")
	// ErrLoginRejected means the backend answered but refused the credentials.
	ErrLoginRejected = errors.New("login rejected")
)

type Client struct {
	url        string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
	logger     *zap.Logger
}

func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    circuitbreaker.New(circuitbreaker.DefaultConfig()),
		logger:     logger,
	}
}

// FetchProjects reads every project row from the sheet.
func (c *Client) FetchProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := c.get(ctx, "read", &projects); err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []model.Project{}
	}
	return projects, nil
}

// FetchVendors reads the vendor/user table.
func (c *Client) FetchVendors(ctx context.Context) ([]model.Vendor, error) {
	var vendors []model.Vendor
	if err := c.get(ctx, "getUsers", &vendors); err != nil {
		return nil, err
	}
	if vendors == nil {
		vendors = []model.Vendor{}
	}
	return vendors, nil
}

// SaveProject upserts a single project row.
func (c *Client) SaveProject(ctx context.Context, p model.Project) error {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.post(ctx, "save", p, &resp); err != nil {
		return err
	}
	return nil
}

// Login verifies vendor credentials against the sheet user table.
func (c *Client) Login(ctx context.Context, id, password string) (*model.Vendor, error) {
	req := map[string]string{"id": id, "password": password}
	var resp struct {
		Success bool         `json:"success"`
		User    model.Vendor `json:"user"`
		Message string       `json:"message"`
	}
	if err := c.post(ctx, "login", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", ErrLoginRejected, resp.Message)
	}
	return &resp.User, nil
}

// UploadFile pushes raw bytes to the Drive folder behind the web app and
// returns the resulting share URL.
func (c *Client) UploadFile(ctx context.Context, data []byte, filename, mimeType string) (string, error) {
	payload := map[string]string{
		"data":     base64.StdEncoding.EncodeToString(data),
		"filename": filename,
		"mimeType": mimeType,
	}
	var resp struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
		Message string `json:"message"`
	}
	if err := c.post(ctx, "upload", payload, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if !resp.Success || resp.URL == "" {
		return "", fmt.Errorf("%w: %s", ErrUpload, resp.Message)
	}
	return resp.URL, nil
}

func (c *Client) get(ctx context.Context, action string, out interface{}) error {
	return c.do(ctx, http.MethodGet, action, nil, out)
}

func (c *Client) post(ctx context.Context, action string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", action, err)
	}
	return c.do(ctx, http.MethodPost, action, body, out)
}

func (c *Client) do(ctx context.Context, method, action string, body []byte, out interface{}) error {
	start := time.Now()
	err := c.breaker.Execute(func() error {
		return c.doHTTP(ctx, method, action, body, out)
	})
	status := "success"
	if err != nil {
		status = "failed"
	}
	metrics.RecordSheetCall(action, status, time.Since(start))
	if errors.Is(err, circuitbreaker.ErrOpen) {
		c.logger.Warn("Sheet call short-circuited", zap.String("action", action))
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return err
}

func (c *Client) doHTTP(ctx context.Context, method, action string, body []byte, out interface{}) error {
	url := fmt.Sprintf("%s?action=%s", c.url, action)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		// Apps Script web apps only accept simple requests; anything else
		// triggers a CORS preflight the backend cannot answer.
		req.Header.Set("Content-Type", "text/plain;charset=utf-8")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Sheet request failed",
			zap.String("action", action),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Sheet request returned non-200",
			zap.String("action", action),
			zap.Int("status_code", resp.StatusCode),
		)
		return fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", action, err)
	}
	return nil
}
