// jcw/utils/types/template.go
package types

import "io"

type Template struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	WebsiteType     string  `json:"website_type"`
	FileName        string  `json:"file_name"`
	PreviewImage    *string `json:"preview_image"`
	PreviewImageURL *string `json:"preview_image_url"`
	HTMLContent     string  `json:"html_content"`
	CSSContent      string  `json:"css_content"`
	IsActive        bool    `json:"is_active"`
	UsedByCount     int     `json:"used_by_count"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// TemplateUpload is the multipart payload for a new template.
type TemplateUpload struct {
	Name             string
	Category         string
	Description      string
	WebsiteType      string
	PreviewImageName string
	PreviewImage     io.Reader
}

type TemplateCode struct {
	HTMLContent string `json:"html_content"`
	CSSContent  string `json:"css_content"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	FileName    string `json:"file_name"`
}

type TemplateStats struct {
	TotalTemplates  int `json:"total_templates"`
	ActiveTemplates int `json:"active_templates"`
	CategoriesCount int `json:"categories_count"`
	TotalUsage      int `json:"total_usage"`
}

type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
