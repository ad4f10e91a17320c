// internal/core/domain/project.go
package domain

// Project is the minimal projection of a production the core needs: identity
// for listing enrichment and the order-validation gate setting.
type Project struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	ProductionCompany      string `json:"production_company,omitempty"`
	RequireOrderValidation bool   `json:"require_order_validation"`
}

// DisplayName returns the name shown to other productions on the marketplace.
func (p Project) DisplayName() string {
	if p.ProductionCompany != "" {
		return p.ProductionCompany
	}
	if p.Name != "" {
		return p.Name
	}
	return "Unknown production"
}
