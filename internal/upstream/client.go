// Package upstream implements the clinic platform API interfaces over HTTP.
//
// Error propagation follows the platform's own convention: most endpoints
// answer with a JSON envelope whose body is decoded regardless of HTTP
// status, and success is judged by the presence of the expected field rather
// than the status code. The status update endpoint is the one exception and
// fails outright on a non-2xx answer.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"medicare-portal/config"
	"medicare-portal/internal/domain/upstream"

	"github.com/sirupsen/logrus"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewClient(cfg config.UpstreamConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// do sends a JSON request and decodes the JSON body into out regardless of
// the response status. The returned status code lets callers apply their own
// success criteria.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) (int, error) {
	var reqBody *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reqBody = bytes.NewBuffer(payload)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).Warnf("Upstream request failed: %v", err)
		return 0, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode upstream response: %w", err)
		}
	}

	return resp.StatusCode, nil
}

// apiError builds the platform-reported error for a failed call.
func apiError(statusCode int, message string) error {
	return &upstream.Error{
		StatusCode: statusCode,
		Message:    message,
	}
}
