package indexer

import (
	"context"
	_ "embed"
	"fmt"

	"jcw/jcw/utils/types"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// CatalogSource serves hand written page copy from a YAML document.
type CatalogSource struct {
	pages map[string]types.PageContent
}

type catalogFile struct {
	Pages []types.PageContent `yaml:"pages"`
}

// NewCatalogSource parses the embedded catalog.
func NewCatalogSource() (*CatalogSource, error) {
	return ParseCatalog(defaultCatalog)
}

// ParseCatalog builds a CatalogSource from raw YAML.
func ParseCatalog(data []byte) (*CatalogSource, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	pages := make(map[string]types.PageContent, len(file.Pages))
	for _, p := range file.Pages {
		if p.Path == "" {
			return nil, fmt.Errorf("parse catalog: entry %q has no path", p.Title)
		}
		if _, dup := pages[p.Path]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate path %q", p.Path)
		}
		pages[p.Path] = p
	}
	return &CatalogSource{pages: pages}, nil
}

// Extract returns the catalog entry for path, or the default shell.
func (s *CatalogSource) Extract(_ context.Context, path string) (types.PageContent, error) {
	if p, ok := s.pages[path]; ok {
		return p, nil
	}
	return DefaultPage(path), nil
}
