// internal/core/domain/transaction.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus: PENDING -> VALIDATED, or PENDING -> CANCELLED.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionValidated TransactionStatus = "validated"
	TransactionCancelled TransactionStatus = "cancelled"
)

// TransactionLine is an immutable snapshot of one purchased item. A
// transaction is a receipt, not a live reference.
type TransactionLine struct {
	ItemID   string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Transaction is a cross-production purchase record, appended to the ledger
// together with the stock decrement on the seller's item.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	SellerID    string            `json:"seller_id"`
	SellerName  string            `json:"seller_name"`
	BuyerID     string            `json:"buyer_id"`
	BuyerName   string            `json:"buyer_name"`
	Items       []TransactionLine `json:"items"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	PlatformFee decimal.Decimal   `json:"platform_fee"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	InvoicedAt  *time.Time        `json:"invoiced_at,omitempty"`
}

// NewTransaction builds a PENDING transaction, computing the total and the
// fixed platform commission from the line snapshots.
func NewTransaction(sellerID, sellerName, buyerID, buyerName string, lines []TransactionLine) Transaction {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return Transaction{
		ID:          uuid.New(),
		SellerID:    sellerID,
		SellerName:  sellerName,
		BuyerID:     buyerID,
		BuyerName:   buyerName,
		Items:       lines,
		TotalAmount: total,
		PlatformFee: PlatformFee(total),
		Status:      TransactionPending,
		CreatedAt:   time.Now(),
	}
}

// Validate checks the record before it is appended to the ledger
func (t *Transaction) Validate() error {
	if t.SellerID == "" || t.BuyerID == "" {
		return ValidationError{Field: "seller_id/buyer_id", Reason: "are required"}
	}
	if len(t.Items) == 0 {
		return ValidationError{Field: "items", Reason: "cannot be empty"}
	}
	for _, l := range t.Items {
		if l.Quantity <= 0 {
			return ValidationError{Field: "items.quantity", Reason: "must be positive"}
		}
		if l.Price.IsNegative() {
			return ValidationError{Field: "items.price", Reason: "cannot be negative"}
		}
	}
	return nil
}
