// internal/core/domain/buyback.go
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BuyBackStatus is the board entry lifecycle: AVAILABLE -> RESERVED -> SOLD,
// with RESERVED -> AVAILABLE as the cancel-reservation transition.
type BuyBackStatus string

const (
	BuyBackAvailable BuyBackStatus = "available"
	BuyBackReserved  BuyBackStatus = "reserved"
	BuyBackSold      BuyBackStatus = "sold"
)

// BuyBackItem is a department-internal resale record. Quantity is implicitly
// one: a distinct listing per physical unit.
type BuyBackItem struct {
	ID               string           `json:"id"`
	ProjectID        string           `json:"project_id"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Price            decimal.Decimal  `json:"price"`
	OriginalPrice    *decimal.Decimal `json:"original_price,omitempty"`
	Photo            string           `json:"photo,omitempty"`
	SellerDepartment Department       `json:"seller_department"`
	Status           BuyBackStatus    `json:"status"`
	ReservedBy       *Department      `json:"reserved_by,omitempty"`
	ReservedByName   string           `json:"reserved_by_name,omitempty"`
	ReservedByUserID string           `json:"reserved_by_user_id,omitempty"`
	Date             time.Time        `json:"date"`
}

// Validate checks the entry before persistence
func (b *BuyBackItem) Validate() error {
	if b.ID == "" {
		return ValidationError{Field: "id", Reason: "is required"}
	}
	if strings.TrimSpace(b.Name) == "" {
		return ValidationError{Field: "name", Reason: "is required"}
	}
	if b.SellerDepartment == "" {
		return ValidationError{Field: "seller_department", Reason: "is required"}
	}
	if b.Price.IsNegative() && !b.Price.Equal(PriceTBD) {
		return ValidationError{Field: "price", Reason: "cannot be negative"}
	}
	if b.Status == "" {
		b.Status = BuyBackAvailable
	}
	return nil
}

// Reserve transitions AVAILABLE -> RESERVED and records the holder.
func (b *BuyBackItem) Reserve(actor Actor) error {
	if b.Status != BuyBackAvailable {
		return ValidationError{Field: "status", Reason: "only available items can be reserved"}
	}
	dept := actor.Department
	b.Status = BuyBackReserved
	b.ReservedBy = &dept
	b.ReservedByName = actor.Name
	b.ReservedByUserID = actor.UserID
	return nil
}

// Unreserve transitions RESERVED -> AVAILABLE. Only the holding department or
// production may cancel; reservation fields are cleared together.
func (b *BuyBackItem) Unreserve(actor Actor) error {
	if b.Status != BuyBackReserved {
		return ValidationError{Field: "status", Reason: "item is not reserved"}
	}
	if !actor.IsProduction() && (b.ReservedBy == nil || *b.ReservedBy != actor.Department) {
		return AuthorizationError{Actor: actor.Department, Action: "cancel this reservation"}
	}
	b.Status = BuyBackAvailable
	b.ReservedBy = nil
	b.ReservedByName = ""
	b.ReservedByUserID = ""
	return nil
}

// ConfirmSale transitions RESERVED -> SOLD. Allowed for the seller, the
// reservation holder, or production. Reservation fields are retained as the
// sale record.
func (b *BuyBackItem) ConfirmSale(actor Actor) error {
	if b.Status != BuyBackReserved {
		return ValidationError{Field: "status", Reason: "only reserved items can be sold"}
	}
	allowed := actor.IsProduction() ||
		actor.Department == b.SellerDepartment ||
		(b.ReservedBy != nil && *b.ReservedBy == actor.Department)
	if !allowed {
		return AuthorizationError{Actor: actor.Department, Action: "confirm this sale"}
	}
	b.Status = BuyBackSold
	return nil
}

// CanDelete reports whether the actor may remove the entry (any status).
func (b *BuyBackItem) CanDelete(actor Actor) bool {
	return actor.IsProduction() || actor.Department == b.SellerDepartment
}
