// Package tenant resolves which hosted business a request is for.
package tenant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	httputils "jcw/jcw/utils/http"
	"jcw/jcw/utils/types"
)

var ErrNotFound = errors.New("tenant not found")

// Client talks to the tenant directory of the platform API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: client}
}

// wireTenant accepts both numeric and string ids.
type wireTenant struct {
	ID               any    `json:"id"`
	Slug             string `json:"slug"`
	BusinessName     string `json:"business_name"`
	IndustryCategory string `json:"industry_category"`
	City             string `json:"city"`
	Country          string `json:"country"`
	ContactEmail     string `json:"contact_email"`
	IsActive         bool   `json:"is_active"`
}

func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

// GetBySlug fetches one tenant. A 404 or a record without an id is reported
// as ErrNotFound; every other failure is returned as is.
func (c *Client) GetBySlug(ctx context.Context, slug string) (types.Tenant, error) {
	endpoint := fmt.Sprintf("%s/tenants/by-slug/%s/", c.baseURL, url.PathEscape(slug))

	var w wireTenant
	if err := httputils.GetJSON(ctx, c.http, endpoint, &w); err != nil {
		if httputils.StatusOf(err) == http.StatusNotFound {
			return types.Tenant{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return types.Tenant{}, err
	}
	id := idString(w.ID)
	if id == "" {
		return types.Tenant{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return types.Tenant{
		ID:               id,
		Slug:             w.Slug,
		BusinessName:     w.BusinessName,
		IndustryCategory: w.IndustryCategory,
		City:             w.City,
		Country:          w.Country,
		ContactEmail:     w.ContactEmail,
		IsActive:         w.IsActive,
	}, nil
}
