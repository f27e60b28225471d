// jcw/utils/types/tenant.go
package types

type Tenant struct {
	ID               string `json:"id"`
	Slug             string `json:"slug"`
	BusinessName     string `json:"business_name"`
	IndustryCategory string `json:"industry_category"`
	City             string `json:"city"`
	Country          string `json:"country"`
	ContactEmail     string `json:"contact_email"`
	IsActive         bool   `json:"is_active"`
}
