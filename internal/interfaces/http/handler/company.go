package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	companyapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/company"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/interfaces/http/dto"
)

// CreateCompanyRequest registers a company
type CreateCompanyRequest struct {
	Name           string `json:"name" binding:"required"`
	LineOfBusiness string `json:"line_of_business"`
}

// CompanyResponse is the published company shape
type CompanyResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	LineOfBusiness string    `json:"line_of_business,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func companyFromDomain(c *company.Company) CompanyResponse {
	return CompanyResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		LineOfBusiness: c.LineOfBusiness,
		CreatedAt:      c.CreatedAt,
	}
}

// CompanyHandler exposes company registration and lookups
type CompanyHandler struct {
	BaseHandler
	companies *companyapp.Service
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companies *companyapp.Service) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// Create handles POST /api/v1/companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid company request: "+err.Error())
		return
	}

	created, err := h.companies.Create(c.Request.Context(), req.Name, req.LineOfBusiness)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, companyFromDomain(created))
}

// Get handles GET /api/v1/companies/:company_id
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("company_id"))
	if err != nil {
		h.BadRequest(c, "Company id must be a UUID")
		return
	}

	found, err := h.companies.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, companyFromDomain(found))
}

// List handles GET /api/v1/companies
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companies.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, companyFromDomain(&companies[i]))
	}
	h.Success(c, out)
}

// ListTransactions handles GET /api/v1/companies/:company_id/transactions
func (h *CompanyHandler) ListTransactions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("company_id"))
	if err != nil {
		h.BadRequest(c, "Company id must be a UUID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}
	req.Normalize()

	filter := company.TransactionFilter{Page: req.Page, PageSize: req.PageSize}
	if req.Status != "" {
		status := company.TransactionStatus(req.Status)
		filter.Status = &status
	}
	if req.FromDate != "" {
		from, err := time.Parse("2006-01-02", req.FromDate)
		if err != nil {
			h.BadRequest(c, "from_date must be YYYY-MM-DD")
			return
		}
		filter.FromDate = &from
	}
	if req.ToDate != "" {
		to, err := time.Parse("2006-01-02", req.ToDate)
		if err != nil {
			h.BadRequest(c, "to_date must be YYYY-MM-DD")
			return
		}
		filter.ToDate = &to
	}

	txns, total, err := h.companies.ListTransactions(c.Request.Context(), id, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]CompanyTransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, CompanyTransactionFromDomain(&txns[i]))
	}
	h.SuccessWithMeta(c, out, total, req.Page, req.PageSize)
}
