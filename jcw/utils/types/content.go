// jcw/utils/types/content.go
package types

type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Content string `json:"content" yaml:"content"`
}

type PricingTier struct {
	Plan     string   `json:"plan" yaml:"plan"`
	Price    string   `json:"price" yaml:"price"`
	Features []string `json:"features" yaml:"features"`
}

// PageContent is the marketing copy indexed for one site path.
type PageContent struct {
	Path        string        `json:"path" yaml:"path"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Content     string        `json:"content" yaml:"content"`
	Sections    []Section     `json:"sections" yaml:"sections"`
	Services    []string      `json:"services,omitempty" yaml:"services"`
	Pricing     []PricingTier `json:"pricing,omitempty" yaml:"pricing"`
}
