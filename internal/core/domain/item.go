// internal/core/domain/item.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Department represents a production department
type Department string

// Department constants
const (
	DepartmentCamera    Department = "camera"
	DepartmentLighting  Department = "lighting"
	DepartmentGrip      Department = "grip"
	DepartmentSetOps    Department = "set_ops"
	DepartmentSetDesign Department = "set_design"
	DepartmentDirecting Department = "directing"
	DepartmentSound     Department = "sound"
	DepartmentCostume   Department = "costume"
	DepartmentMakeup    Department = "makeup"
	DepartmentHair      Department = "hair"
	DepartmentProps     Department = "props"

	// DepartmentProduction is the administrative role; it sees and may act on
	// every department's items.
	DepartmentProduction Department = "production"
)

// ItemStatus is derived from quantity changes, never set independently
type ItemStatus string

const (
	StatusNew   ItemStatus = "new"
	StatusUsed  ItemStatus = "used"
	StatusEmpty ItemStatus = "empty"
)

// SurplusAction represents the disposition state of surplus stock
type SurplusAction string

const (
	SurplusNone          SurplusAction = "none"
	SurplusReleasedToPro SurplusAction = "released_to_prod"
	SurplusMarketplace   SurplusAction = "marketplace"
	SurplusDonation      SurplusAction = "donation"
	SurplusShortFilm     SurplusAction = "short_film"
	SurplusBuyBack       SurplusAction = "buyback"
)

// Priced reports whether the disposition carries a resale/valuation price.
func (a SurplusAction) Priced() bool {
	switch a {
	case SurplusMarketplace, SurplusDonation, SurplusShortFilm, SurplusBuyBack:
		return true
	}
	return false
}

// Valid reports whether the value is a known disposition.
func (a SurplusAction) Valid() bool {
	switch a {
	case SurplusNone, SurplusReleasedToPro, SurplusMarketplace,
		SurplusDonation, SurplusShortFilm, SurplusBuyBack:
		return true
	}
	return false
}

// Composition classifies an item's new/started quantity mix
type Composition string

const (
	AllNew           Composition = "all_new"
	PartiallyStarted Composition = "partially_started"
	AllStarted       Composition = "all_started"
)

// PriceTBD is the sentinel accepted on input for "price to be determined".
var PriceTBD = decimal.NewFromInt(-1)

// Item is a consumable/material unit owned by exactly one production.
// Cross-production visibility is by value only (see Listing); two items in
// different productions are never merged into one row.
type Item struct {
	ID              string           `json:"id"`
	ProjectID       string           `json:"project_id"`
	Name            string           `json:"name"`
	Department      Department       `json:"department"`
	QuantityInitial int              `json:"quantity_initial"`
	QuantityCurrent int              `json:"quantity_current"`
	QuantityStarted int              `json:"quantity_started"`
	Unit            string           `json:"unit"`
	Status          ItemStatus       `json:"status"`
	Purchased       bool             `json:"purchased"`
	IsBought        bool             `json:"is_bought"`
	IsValidated     *bool            `json:"is_validated,omitempty"`
	SurplusAction   SurplusAction    `json:"surplus_action"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Listing is a read-only cross-production view of an item flagged for the
// marketplace, enriched with its owning production's identity.
type Listing struct {
	Item
	ProductionName string `json:"production_name"`
}

// Validate performs domain validation on the item
func (i *Item) Validate() error {
	if i.ID == "" {
		return ValidationError{Field: "id", Reason: "is required"}
	}
	if strings.TrimSpace(i.Name) == "" {
		return ValidationError{Field: "name", Reason: "is required"}
	}
	if i.Department == "" {
		return ValidationError{Field: "department", Reason: "is required"}
	}
	if i.QuantityCurrent < 0 {
		return ValidationError{Field: "quantity_current", Reason: "cannot be negative"}
	}
	if i.QuantityStarted < 0 || i.QuantityStarted > i.QuantityCurrent {
		return ValidationError{
			Field:  "quantity_started",
			Reason: fmt.Sprintf("must be between 0 and quantity_current (%d)", i.QuantityCurrent),
		}
	}
	if i.Price != nil && i.Price.IsNegative() && !i.Price.Equal(PriceTBD) {
		return ValidationError{Field: "price", Reason: "cannot be negative"}
	}
	if !i.SurplusAction.Valid() {
		return ValidationError{Field: "surplus_action", Reason: "unknown disposition"}
	}
	if i.Status == "" {
		i.Status = StatusNew
	}
	return nil
}

// MatchKey returns the case-insensitive, whitespace-trimmed key used to match
// items by name across productions.
func (i *Item) MatchKey() string {
	return strings.ToLower(strings.TrimSpace(i.Name))
}

// AdjustQuantity applies a signed delta to the current quantity, clamping at
// zero, and recomputes the derived status. quantityStarted is clamped down so
// the started count never exceeds the remaining units.
func (i *Item) AdjustQuantity(delta int) {
	q := i.QuantityCurrent + delta
	if q < 0 {
		q = 0
	}
	i.QuantityCurrent = q
	if i.QuantityStarted > q {
		i.QuantityStarted = q
	}
	switch {
	case q == 0:
		i.Status = StatusEmpty
	case q < i.QuantityInitial:
		i.Status = StatusUsed
	}
}

// MarkStarted opens one sealed unit. It is a no-op when every remaining unit
// is already started.
func (i *Item) MarkStarted() bool {
	if i.QuantityStarted >= i.QuantityCurrent {
		return false
	}
	i.QuantityStarted++
	i.Status = StatusUsed
	return true
}

// Composition classifies the new/started mix of the current quantity.
func (i *Item) Composition() Composition {
	switch {
	case i.QuantityStarted == 0:
		return AllNew
	case i.QuantityStarted >= i.QuantityCurrent:
		return AllStarted
	default:
		return PartiallyStarted
	}
}

// SetPrice records a resale price, snapshotting the first-ever acquisition
// price into OriginalPrice before it is overwritten. OriginalPrice is
// immutable once set.
func (i *Item) SetPrice(price decimal.Decimal) {
	if i.OriginalPrice == nil && i.Price != nil && !i.Price.Equal(PriceTBD) {
		prev := *i.Price
		i.OriginalPrice = &prev
	}
	i.Price = &price
}

// PriceValue returns the recorded price, or zero when unset or TBD.
func (i *Item) PriceValue() decimal.Decimal {
	if i.Price == nil || i.Price.Equal(PriceTBD) {
		return decimal.Zero
	}
	return *i.Price
}

// BasePrice returns the price basis for resale computations:
// originalPrice ?? price ?? 0.
func (i *Item) BasePrice() decimal.Decimal {
	if i.OriginalPrice != nil && !i.OriginalPrice.Equal(PriceTBD) {
		return *i.OriginalPrice
	}
	return i.PriceValue()
}

// PrepareForStorage fills timestamps and defaults before persistence
func (i *Item) PrepareForStorage() {
	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.UpdatedAt = now
	if i.Status == "" {
		i.Status = StatusNew
	}
	if i.SurplusAction == "" {
		i.SurplusAction = SurplusNone
	}
	if i.QuantityInitial == 0 {
		i.QuantityInitial = i.QuantityCurrent
	}
}
