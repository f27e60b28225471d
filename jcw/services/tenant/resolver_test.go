package tenant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKey(t *testing.T) {
	cases := []struct {
		host  string
		query string
		want  string
	}{
		{"acme.lvh.me", "", "acme"},
		{"acme.lvh.me:3000", "tenant=other", "acme"},
		{"shop.localhost:3000", "", "shop"},
		{"www.lvh.me", "", "www"},
		{"lvh.me", "tenant=acme", "acme"},
		{"localhost:3000", "tenant=bakery", "bakery"},
		{"example.com", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.host, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ExtractKey(tc.host, q, DefaultSuffixes))
		})
	}
}

// directory serves tenants keyed by slug and counts requests.
func directory(t *testing.T, hits *atomic.Int32, routes map[string]func(http.ResponseWriter)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if h, ok := routes[r.URL.Path]; ok {
			h(w)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not found."}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func body(status int, s string) func(http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(s))
	}
}

func TestResolve(t *testing.T) {
	var hits atomic.Int32
	srv := directory(t, &hits, map[string]func(http.ResponseWriter){
		"/api/tenants/by-slug/acme/":    body(200, `{"id":"t-1","slug":"acme","business_name":"Acme Bakery","city":"Lyon","country":"FR"}`),
		"/api/tenants/by-slug/num/":     body(200, `{"id":42,"slug":"num","business_name":"Numbered"}`),
		"/api/tenants/by-slug/empty/":   body(200, `{}`),
		"/api/tenants/by-slug/errbody/": body(200, `{"error":"no such tenant"}`),
		"/api/tenants/by-slug/broken/":  body(500, `oops`),
		"/api/tenants/by-slug/garbage/": body(200, `<html>`),
	})
	r := NewResolver(NewClient(srv.URL+"/api", srv.Client()), nil, nil)
	ctx := context.Background()

	res := r.Resolve(ctx, "acme.lvh.me:3000", nil)
	require.Equal(t, StateWelcome, res.State)
	assert.Equal(t, "Acme Bakery", res.Tenant.BusinessName)
	assert.Equal(t, "t-1", res.Tenant.ID)

	res = r.Resolve(ctx, "num.localhost", nil)
	require.Equal(t, StateWelcome, res.State)
	assert.Equal(t, "42", res.Tenant.ID)

	q := url.Values{"tenant": {"empty"}}
	assert.Equal(t, StateNotFound, r.Resolve(ctx, "lvh.me", q).State)
	assert.Equal(t, StateNotFound, r.Resolve(ctx, "errbody.lvh.me", nil).State)
	assert.Equal(t, StateNotFound, r.Resolve(ctx, "missing.lvh.me", nil).State)
	assert.Equal(t, StateLoadFailed, r.Resolve(ctx, "broken.lvh.me", nil).State)
	assert.Equal(t, StateLoadFailed, r.Resolve(ctx, "garbage.lvh.me", nil).State)
	assert.Equal(t, "Tenant not found", StateNotFound.Message())
	assert.Equal(t, "Failed to load tenant", StateLoadFailed.Message())
}

func TestResolveInvalidMakesNoRequest(t *testing.T) {
	var hits atomic.Int32
	srv := directory(t, &hits, nil)
	r := NewResolver(NewClient(srv.URL, srv.Client()), nil, nil)

	res := r.Resolve(context.Background(), "www.lvh.me", nil)
	assert.Equal(t, StateInvalidSubdomain, res.State)
	assert.Equal(t, "Invalid subdomain", res.State.Message())

	res = r.Resolve(context.Background(), "localhost:3000", url.Values{})
	assert.Equal(t, StateInvalidSubdomain, res.State)
	assert.Zero(t, hits.Load())
}

func TestResolveDoesNotCache(t *testing.T) {
	var hits atomic.Int32
	srv := directory(t, &hits, map[string]func(http.ResponseWriter){
		"/tenants/by-slug/acme/": body(200, `{"id":"1"}`),
	})
	r := NewResolver(NewClient(srv.URL, srv.Client()), nil, nil)
	r.Resolve(context.Background(), "acme.lvh.me", nil)
	r.Resolve(context.Background(), "acme.lvh.me", nil)
	assert.EqualValues(t, 2, hits.Load())
}

func TestResolveTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	r := NewResolver(NewClient(srv.URL, nil), nil, nil)
	assert.Equal(t, StateLoadFailed, r.Resolve(context.Background(), "acme.lvh.me", nil).State)
}
