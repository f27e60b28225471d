package indexer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plansPage = `<!doctype html>
<html>
<head>
  <title>Website Plans</title>
  <meta name="description" content="  Choose a   plan. ">
  <script>var ignored = "Sections";</script>
</head>
<body>
  <main>
    <p>We offer two main plans.</p>
    <h2>Starter Plan</h2>
    <p>Perfect for new   businesses.</p>
    <h2>Premium Plan</h2>
    <p>For established companies.</p>
    <ul>
      <li data-service>Website Design</li>
      <li data-service>Hosting</li>
    </ul>
    <div data-plan="Starter"><span data-price>€499</span><ul><li>Up to 5 pages</li><li>Basic SEO</li></ul></div>
  </main>
</body>
</html>`

func TestHTMLSourceExtractsPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/websites" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(plansPage))
	}))
	defer srv.Close()

	src := NewHTMLSource(srv.URL+"/", srv.Client())
	page, err := src.Extract(context.Background(), "/websites")
	require.NoError(t, err)

	assert.Equal(t, "/websites", page.Path)
	assert.Equal(t, "Website Plans", page.Title)
	assert.Equal(t, "Choose a plan.", page.Description)
	assert.Equal(t, "We offer two main plans.", page.Content)
	require.Len(t, page.Sections, 2)
	assert.Equal(t, "Starter Plan", page.Sections[0].Heading)
	assert.Equal(t, "Perfect for new businesses.", page.Sections[0].Content)
	assert.Equal(t, []string{"Website Design", "Hosting"}, page.Services)
	require.Len(t, page.Pricing, 1)
	assert.Equal(t, "Starter", page.Pricing[0].Plan)
	assert.Equal(t, "€499", page.Pricing[0].Price)
	assert.Equal(t, []string{"Up to 5 pages", "Basic SEO"}, page.Pricing[0].Features)
}

func TestHTMLSourceFailsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewHTMLSource(srv.URL, srv.Client()).Extract(context.Background(), "/custom")
	assert.Error(t, err)
}

func TestHTMLSourceFeedsIndexerWithPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/websites" {
			w.Write([]byte(plansPage))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ix := New(NewHTMLSource(srv.URL, srv.Client()))
	require.NoError(t, ix.Refresh(context.Background()))
	assert.Equal(t, []string{"/websites"}, ix.IndexedPaths())
}
