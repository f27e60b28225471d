package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"jcw/jcw/config"
	"jcw/jcw/middlewares"
	"jcw/jcw/services/indexer"
	"jcw/jcw/services/templates"
	"jcw/jcw/services/tenant"
	"jcw/jcw/utils/types"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/crypto/bcrypt"
)

func newAssistant(t *testing.T) *AssistantController {
	t.Helper()
	src, err := indexer.NewCatalogSource()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return NewAssistantController(indexer.New(src), nil)
}

func TestAskRejectsBadMessages(t *testing.T) {
	c := newAssistant(t)
	for _, msg := range []any{nil, "", "   ", 42, []string{"price"}} {
		if _, err := c.Ask(context.Background(), types.AssistantRequest{Message: msg}); !errors.Is(err, ErrMessageRequired) {
			t.Errorf("message %#v: expected ErrMessageRequired, got %v", msg, err)
		}
	}
}

func TestAskAnswersAndIndexesLazily(t *testing.T) {
	c := newAssistant(t)
	if got := c.Status().IndexedPages; len(got) != 0 {
		t.Fatalf("expected nothing indexed before first ask, got %v", got)
	}
	resp, err := c.Ask(context.Background(), types.AssistantRequest{Message: "How much does it cost?", Context: "/websites"})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if !strings.Contains(resp.Response, "€499") || !strings.Contains(resp.Response, "€999") {
		t.Errorf("expected both plan prices in %q", resp.Response)
	}
	st := c.Status()
	if st.Status != AssistantRunning || len(st.IndexedPages) != 5 {
		t.Errorf("unexpected status %+v", st)
	}
}

type failingSource struct{}

func (failingSource) Extract(context.Context, string) (types.PageContent, error) {
	return types.PageContent{}, errors.New("site down")
}

func TestAskFailsWhenNothingCanBeIndexed(t *testing.T) {
	c := NewAssistantController(indexer.New(failingSource{}), nil)
	_, err := c.Ask(context.Background(), types.AssistantRequest{Message: "hello"})
	if !errors.Is(err, indexer.ErrNothingIndexed) {
		t.Errorf("expected ErrNothingIndexed, got %v", err)
	}
}

type stubLookup map[string]types.Tenant

func (s stubLookup) GetBySlug(_ context.Context, slug string) (types.Tenant, error) {
	if slug == "down" {
		return types.Tenant{}, errors.New("connection refused")
	}
	t, ok := s[slug]
	if !ok {
		return types.Tenant{}, tenant.ErrNotFound
	}
	return t, nil
}

func renderTenant(t *testing.T, c *TenantController, host string) (*goquery.Document, TenantView) {
	t.Helper()
	v := c.Resolve(context.Background(), host, url.Values{})
	var buf bytes.Buffer
	if err := c.Render(&buf, v); err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc, v
}

func TestTenantViews(t *testing.T) {
	lookup := stubLookup{"acme": {ID: "1", Slug: "acme", BusinessName: "Acme <Bakery>", City: "Lyon", Country: "FR"}}
	c := NewTenantController(tenant.NewResolver(lookup, nil, nil), nil, "http://localhost:3000")

	doc, v := renderTenant(t, c, "acme.lvh.me")
	if v.State != tenant.StateWelcome {
		t.Fatalf("expected welcome, got %s", v.State)
	}
	if got := doc.Find("h1").Text(); got != "Welcome to Acme <Bakery>!" {
		t.Errorf("unexpected heading %q", got)
	}
	if got := doc.Find(`[data-field="slug"]`).Text(); got != "acme" {
		t.Errorf("unexpected slug %q", got)
	}
	if got := doc.Find(`[data-field="location"]`).Text(); got != "Lyon, FR" {
		t.Errorf("unexpected location %q", got)
	}

	doc, v = renderTenant(t, c, "ghost.lvh.me")
	if v.State != tenant.StateNotFound || v.Error != "Tenant not found" {
		t.Errorf("unexpected view %+v", v)
	}
	if !strings.Contains(doc.Find(".reason").Text(), "doesn't exist") {
		t.Errorf("not-found view should explain the tenant is missing")
	}

	doc, v = renderTenant(t, c, "down.lvh.me")
	if v.State != tenant.StateLoadFailed {
		t.Errorf("expected load_failed, got %s", v.State)
	}
	if !strings.Contains(doc.Find(".reason").Text(), "error loading") {
		t.Errorf("load-failed view should mention an error")
	}
	if href, _ := doc.Find("a.home").Attr("href"); href != "http://localhost:3000" {
		t.Errorf("unexpected home link %q", href)
	}

	_, v = renderTenant(t, c, "www.lvh.me")
	if v.State != tenant.StateInvalidSubdomain || v.Error != "Invalid subdomain" {
		t.Errorf("unexpected view %+v", v)
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cfg := config.Config{JWTSecret: "s3cret", AdminUsername: "admin", AdminPasswordHash: string(hash)}
	c := NewAuthController(cfg, nil)

	token, err := c.Login(context.Background(), "admin", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	sub, err := middlewares.ParseToken("s3cret", token)
	if err != nil || sub != "admin" {
		t.Errorf("token did not verify: %q %v", sub, err)
	}

	if _, err := c.Login(context.Background(), "admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := c.Login(context.Background(), "root", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if _, err := NewAuthController(config.Config{}, nil).Login(context.Background(), "admin", "x"); !errors.Is(err, ErrAuthDisabled) {
		t.Errorf("expected ErrAuthDisabled, got %v", err)
	}
}

func TestTemplatesControllerProxies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/templates/3/toggle_status/" {
			w.Write([]byte(`{"id":"3","name":"Bistro","is_active":false}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Template not found"}`))
	}))
	defer srv.Close()

	c := NewTemplatesController(templates.NewClient(srv.URL, srv.Client()), nil)
	tpl, err := c.ToggleStatus(context.Background(), "3")
	if err != nil || tpl.IsActive {
		t.Errorf("unexpected toggle result %+v %v", tpl, err)
	}
	if err := c.Delete(context.Background(), "9"); err == nil || !strings.Contains(err.Error(), "Template not found") {
		t.Errorf("expected upstream message, got %v", err)
	}
}
