// Package templates is a client for the platform's website template admin API.
package templates

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

	httputils "jcw/jcw/utils/http"
	"jcw/jcw/utils/types"
)

const (
	requestFailed = "Request failed"
	uploadFailed  = "Upload failed"
)

var ErrMissingField = errors.New("missing required field")

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: client}
}

func (c *Client) url(format string, args ...any) string {
	return c.baseURL + fmt.Sprintf(format, args...)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, resp any) error {
	return httputils.DoJSON(ctx, c.http, method, endpoint, body, resp, requestFailed)
}

// List returns all templates, or only those of category when it is set.
func (c *Client) List(ctx context.Context, category string) ([]types.Template, error) {
	endpoint := c.url("/templates/")
	if category != "" {
		endpoint += "?" + url.Values{"category": {category}}.Encode()
	}
	var out []types.Template
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id string) (types.Template, error) {
	var out types.Template
	err := c.do(ctx, http.MethodGet, c.url("/templates/%s/", url.PathEscape(id)), nil, &out)
	return out, err
}

// Upload posts a new template as multipart form data. Name, category and the
// preview image are checked before anything is sent.
func (c *Client) Upload(ctx context.Context, in types.TemplateUpload) (types.Template, error) {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return types.Template{}, fmt.Errorf("%w: name", ErrMissingField)
	case strings.TrimSpace(in.Category) == "":
		return types.Template{}, fmt.Errorf("%w: category", ErrMissingField)
	case in.PreviewImage == nil:
		return types.Template{}, fmt.Errorf("%w: preview_image", ErrMissingField)
	}

	body, contentType, err := encodeUpload(in)
	if err != nil {
		return types.Template{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/templates/upload/"), body)
	if err != nil {
		return types.Template{}, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	var out types.Template
	if err := httputils.Do(c.http, req, &out, uploadFailed); err != nil {
		return types.Template{}, err
	}
	return out, nil
}

func encodeUpload(in types.TemplateUpload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	fields := [][2]string{
		{"name", in.Name},
		{"category", in.Category},
		{"description", in.Description},
	}
	if in.WebsiteType != "" {
		fields = append(fields, [2]string{"website_type", in.WebsiteType})
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}

	filename := in.PreviewImageName
	if filename == "" {
		filename = "preview"
	}
	part, err := mw.CreateFormFile("preview_image", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, in.PreviewImage); err != nil {
		return nil, "", fmt.Errorf("read preview image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf, mw.FormDataContentType(), nil
}

func (c *Client) Code(ctx context.Context, id string) (types.TemplateCode, error) {
	var out types.TemplateCode
	err := c.do(ctx, http.MethodGet, c.url("/templates/%s/code/", url.PathEscape(id)), nil, &out)
	return out, err
}

func (c *Client) Categories(ctx context.Context) ([]types.Category, error) {
	var out []types.Category
	if err := c.do(ctx, http.MethodGet, c.url("/templates/categories/"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update sends a partial update; only the keys present in fields change.
func (c *Client) Update(ctx context.Context, id string, fields map[string]any) (types.Template, error) {
	var out types.Template
	err := c.do(ctx, http.MethodPatch, c.url("/templates/%s/", url.PathEscape(id)), fields, &out)
	return out, err
}

func (c *Client) Stats(ctx context.Context) (types.TemplateStats, error) {
	var out types.TemplateStats
	err := c.do(ctx, http.MethodGet, c.url("/templates/stats/"), nil, &out)
	return out, err
}

func (c *Client) ToggleStatus(ctx context.Context, id string) (types.Template, error) {
	var out types.Template
	err := c.do(ctx, http.MethodPost, c.url("/templates/%s/toggle_status/", url.PathEscape(id)), nil, &out)
	return out, err
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.url("/templates/%s/", url.PathEscape(id)), nil, nil)
}
