// Package company holds the corporate side of the model: companies and the
// company-scoped translation transactions billed against them.
package company

import (
	"strings"

	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/shared"
)

// Company is a corporate account. Created out of band (seed/admin) and long-lived.
type Company struct {
	shared.BaseEntity
	Name           string
	LineOfBusiness string
}

// NewCompany creates a company with a database-generated id
func NewCompany(name, lineOfBusiness string) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Company name must not be empty")
	}

	return &Company{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		LineOfBusiness: strings.TrimSpace(lineOfBusiness),
	}, nil
}
