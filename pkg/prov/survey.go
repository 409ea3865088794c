package prov

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/survey"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20
)

type Config struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Client talks to the survey scoring backend.
type Client struct {
	baseURL string
	cl      *http.Client
}

// New creates a client for the backend at cfg.URL. A zero timeout falls back to the default.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		cl: &http.Client{
			Timeout: timeout,
		},
	}
}

type saveResponse struct {
	UUID string `json:"uuid"`
}

// Submit stores a completed survey and returns the id assigned by the backend.
func (c *Client) Submit(ctx context.Context, payload survey.Payload) (string, error) {
	body, err := survey.EncodePayload(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/survey", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cl.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	failed := resp.StatusCode < 200 || resp.StatusCode > 299

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))

	switch {
	case err != nil && failed:
		return "", &core.SubmissionError{StatusCode: resp.StatusCode}
	case err != nil:
		return "", fmt.Errorf("failed to read response: %w", err)
	case failed:
		return "", &core.SubmissionError{
			StatusCode: resp.StatusCode,
			Detail:     submissionDetail(respBody),
		}
	}

	var saved saveResponse
	if err := json.Unmarshal(respBody, &saved); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if saved.UUID == "" {
		return "", errors.New("backend response has no survey id")
	}

	return saved.UUID, nil
}

// FetchResult loads the result document of a submitted survey.
func (c *Client) FetchResult(ctx context.Context, id string) (core.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/survey/"+url.PathEscape(id), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, core.ErrNotFound
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &core.FetchError{
			StatusCode: resp.StatusCode,
			Message:    fetchMessage(respBody),
		}
	}

	if !json.Valid(respBody) {
		return nil, errors.New("backend returned malformed result")
	}

	return core.Result(respBody), nil
}

// submissionDetail picks the most specific explanation from an error body:
// message, then error, then the errors value as JSON, then the raw text.
func submissionDetail(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(body, &data); err != nil {
		return text
	}

	for _, key := range []string{"message", "error"} {
		if s := truthy(data[key]); s != "" {
			return s
		}
	}

	if raw, ok := data["errors"]; ok && truthy(raw) != "" {
		return string(raw)
	}

	return text
}

func fetchMessage(body []byte) string {
	var data struct {
		Message any `json:"message"`
	}

	if err := json.Unmarshal(body, &data); err != nil {
		return ""
	}

	s, _ := data.Message.(string)

	return s
}

// truthy renders a JSON value as text, or returns "" for null, false, 0 and the empty string.
func truthy(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	switch v := strings.TrimSpace(string(raw)); v {
	case "null", "false", "0":
		return ""
	default:
		return v
	}
}
