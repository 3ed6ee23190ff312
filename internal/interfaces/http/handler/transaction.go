package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	translationapp "github.com/AiConcept2025/TranslatorWebServer-sub001/internal/application/translation"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/domain/translation"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/interfaces/http/dto"
	"github.com/AiConcept2025/TranslatorWebServer-sub001/internal/interfaces/http/middleware"
)

// TransactionHandler handles transaction creation and queries
type TransactionHandler struct {
	BaseHandler
	transactions *translationapp.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactions *translationapp.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// Create handles POST /api/v1/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid transaction request: "+err.Error())
		return
	}

	in := translationapp.CreateTransactionInput{
		TransactionID:  req.TransactionID,
		UserName:       req.UserName,
		UserEmail:      req.UserEmail,
		CompanyName:    req.CompanyName,
		DocumentURL:    req.DocumentURL,
		NumberOfUnits:  req.NumberOfUnits,
		UnitType:       req.UnitType,
		CostPerUnit:    decimal.NewFromFloat(req.CostPerUnit),
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		Currency:       req.Currency,
	}
	if req.CompanyID != "" {
		companyID, err := uuid.Parse(req.CompanyID)
		if err != nil {
			h.BadRequest(c, "Invalid company id")
			return
		}
		in.CompanyID = &companyID
	}

	// The authenticated user owns individual transactions
	if in.CompanyID == nil && in.CompanyName == "" {
		if user, ok := middleware.GetAuthUser(c); ok {
			if in.UserEmail == "" {
				in.UserEmail = user.Email
			}
			if in.UserName == "" {
				in.UserName = user.FullName
			}
		}
	}

	result, err := h.transactions.Create(c.Request.Context(), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if result.Kind == translationapp.KindCompany {
		h.Created(c, CompanyTransactionFromDomain(result.Company))
		return
	}
	h.Created(c, IndividualTransactionFromDomain(result.Individual))
}

// Get handles GET /api/v1/transactions/:transaction_id
func (h *TransactionHandler) Get(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	if txn, err := h.transactions.GetIndividual(c.Request.Context(), transactionID); err == nil {
		h.Success(c, IndividualTransactionFromDomain(txn))
		return
	}

	ctxn, err := h.transactions.GetCompanyScoped(c.Request.Context(), transactionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, CompanyTransactionFromDomain(ctxn))
}

// ListMine handles GET /api/v1/transactions for the authenticated user
func (h *TransactionHandler) ListMine(c *gin.Context) {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		h.Unauthorized(c, "Authorization required")
		return
	}

	var list dto.ListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BadRequest(c, "Invalid list parameters")
		return
	}
	list.Normalize()

	filter := translation.TransactionFilter{
		Page:     list.Page,
		PageSize: list.PageSize,
	}
	if list.Status != "" {
		status := translation.TransactionStatus(list.Status)
		filter.Status = &status
	}

	txns, err := h.transactions.ListByUser(c.Request.Context(), user.Email, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]IndividualTransactionResponse, len(txns))
	for i := range txns {
		out[i] = IndividualTransactionFromDomain(&txns[i])
	}
	h.Success(c, out)
}
