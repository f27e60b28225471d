package indexer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jcw/jcw/utils/types"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// HTMLSource reads the rendered marketing pages and pulls copy out of the
// markup. Sections are h2 headings with the text that follows them; services
// and pricing come from data-service / data-plan annotated elements.
type HTMLSource struct {
	baseURL string
	client  *http.Client
}

func NewHTMLSource(baseURL string, client *http.Client) *HTMLSource {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTMLSource{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (s *HTMLSource) Extract(ctx context.Context, path string) (types.PageContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return types.PageContent{}, err
	}
	req.Header.Set("User-Agent", "jcw-indexer/1.0")
	resp, err := s.client.Do(req)
	if err != nil {
		return types.PageContent{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return types.PageContent{}, fmt.Errorf("fetch %s: bad status %d", path, resp.StatusCode)
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		return types.PageContent{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return ExtractPage(path, goquery.NewDocumentFromNode(root)), nil
}

// ExtractPage maps a parsed document onto PageContent.
func ExtractPage(path string, doc *goquery.Document) types.PageContent {
	doc.Find("script, style, noscript").Remove()

	page := types.PageContent{
		Path:     path,
		Title:    cleanText(doc.Find("title").First().Text()),
		Sections: []types.Section{},
		Services: []string{},
	}
	if page.Title == "" {
		page.Title = cleanText(doc.Find("h1").First().Text())
	}
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		page.Description = cleanText(desc)
	}

	scope := doc.Find("main").First()
	if scope.Length() == 0 {
		scope = doc.Find("body").First()
	}
	page.Content = cleanText(scope.Find("p").First().Text())

	scope.Find("h2").Each(func(_ int, h *goquery.Selection) {
		heading := cleanText(h.Text())
		if heading == "" {
			return
		}
		page.Sections = append(page.Sections, types.Section{
			Heading: heading,
			Content: cleanText(h.NextUntil("h2").Text()),
		})
	})

	doc.Find("[data-service]").Each(func(_ int, sel *goquery.Selection) {
		if name := cleanText(sel.Text()); name != "" {
			page.Services = append(page.Services, name)
		}
	})

	doc.Find("[data-plan]").Each(func(_ int, sel *goquery.Selection) {
		tier := types.PricingTier{
			Plan:  sel.AttrOr("data-plan", ""),
			Price: cleanText(sel.Find("[data-price]").First().Text()),
		}
		sel.Find("li").Each(func(_ int, li *goquery.Selection) {
			tier.Features = append(tier.Features, cleanText(li.Text()))
		})
		page.Pricing = append(page.Pricing, tier)
	})

	return page
}

// cleanText collapses runs of whitespace.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
