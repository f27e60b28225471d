// jcw/utils/http/httputils.go
package httputils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// ParseError builds an APIError from a failed response. The body is expected to
// look like {"error": "..."}; fallback is used when it does not.
func ParseError(r *http.Response, fallback string) *APIError {
	var body struct {
		Error string `json:"error"`
	}
	msg := fallback
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.Error != "" {
		msg = body.Error
	}
	return &APIError{Status: r.StatusCode, Message: msg}
}

func isOK(status int) bool {
	return status >= 200 && status < 300
}

// Do sends req with client and decodes a JSON body into resp (when non-nil).
func Do(client *http.Client, req *http.Request, resp interface{}, fallback string) error {
	if client == nil {
		client = http.DefaultClient
	}
	r, err := client.Do(req)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	if !isOK(r.StatusCode) {
		return ParseError(r, fallback)
	}
	if resp == nil || r.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(resp); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// DoJSON marshals body (when non-nil) and performs a request.
func DoJSON(ctx context.Context, client *http.Client, method, url string, body interface{}, resp interface{}, fallback string) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(jsonBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return Do(client, req, resp, fallback)
}

func GetJSON(ctx context.Context, client *http.Client, url string, resp interface{}) error {
	return DoJSON(ctx, client, http.MethodGet, url, nil, resp, "Request failed")
}

func PostJSON(ctx context.Context, client *http.Client, url string, body interface{}, resp interface{}) error {
	return DoJSON(ctx, client, http.MethodPost, url, body, resp, "Request failed")
}
