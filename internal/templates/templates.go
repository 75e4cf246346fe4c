// Package templates holds the static legal-template catalog.
package templates

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/legalmindhq/legalmind-api/internal/models"
)

// Store is the read-only catalog, built once at startup and injected where
// needed.
type Store struct {
	catalog models.TemplateCatalog
}

func NewStore() *Store {
	return &Store{
		catalog: models.TemplateCatalog{
			Contracts: []models.Template{
				{
					ID:          "nda",
					Name:        "Non-Disclosure Agreement",
					Description: "Standard NDA template for confidential information protection",
					Category:    "Contracts",
				},
				{
					ID:          "service-agreement",
					Name:        "Service Agreement",
					Description: "Professional services contract template",
					Category:    "Contracts",
				},
			},
			Policies: []models.Template{
				{
					ID:          "privacy-policy",
					Name:        "Privacy Policy",
					Description: "GDPR-compliant privacy policy template",
					Category:    "Policies",
				},
				{
					ID:          "terms-of-service",
					Name:        "Terms of Service",
					Description: "Website terms of service template",
					Category:    "Policies",
				},
			},
			Letters: []models.Template{
				{
					ID:          "demand-letter",
					Name:        "Demand Letter",
					Description: "Professional demand letter template",
					Category:    "Letters",
				},
			},
		},
	}
}

func (s *Store) Catalog() models.TemplateCatalog {
	return s.catalog
}

// Generate renders the templated text for a catalog entry, echoing the
// requested customizations.
func (s *Store) Generate(templateID string, customizations map[string]any) (string, error) {
	custJSON, err := json.MarshalIndent(customizations, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal customizations: %w", err)
	}

	return fmt.Sprintf(`
LEGAL DOCUMENT TEMPLATE
======================

Template ID: %s
Generated: %s

[This would contain the actual template content based on the templateId and customizations]

Customizations Applied:
%s

Note: This template should be reviewed and customized by legal professionals before use.
`, templateID, time.Now().Format("2006-01-02"), string(custJSON)), nil
}
