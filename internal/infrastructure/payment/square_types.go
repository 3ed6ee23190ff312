package payment

// Wire types for the Square-style payments API.

type squareMoney struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type squareCreatePaymentRequest struct {
	IdempotencyKey string      `json:"idempotency_key"`
	SourceID       string      `json:"source_id"`
	AmountMoney    squareMoney `json:"amount_money"`
	ReferenceID    string      `json:"reference_id,omitempty"`
	Note           string      `json:"note,omitempty"`
}

type squarePayment struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	AmountMoney squareMoney `json:"amount_money"`
	ReferenceID string      `json:"reference_id,omitempty"`
	CreatedAt   string      `json:"created_at"`
}

type squareCreatePaymentResponse struct {
	Payment *squarePayment `json:"payment"`
	Errors  []squareError  `json:"errors,omitempty"`
}

type squareCreateRefundRequest struct {
	IdempotencyKey string      `json:"idempotency_key"`
	PaymentID      string      `json:"payment_id"`
	AmountMoney    squareMoney `json:"amount_money"`
	Reason         string      `json:"reason,omitempty"`
}

type squareRefund struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	PaymentID   string      `json:"payment_id"`
	AmountMoney squareMoney `json:"amount_money"`
	CreatedAt   string      `json:"created_at"`
}

type squareCreateRefundResponse struct {
	Refund *squareRefund `json:"refund"`
	Errors []squareError `json:"errors,omitempty"`
}

type squareError struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail,omitempty"`
}
