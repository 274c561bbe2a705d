package request

import "github.com/google/uuid"

// OrderLineRequest is one submitted order line. Qty stays a string so
// the service can parse it as an exact decimal; lines are kept in the
// order they were submitted.
type OrderLineRequest struct {
	ItemID uuid.UUID `json:"item_id" binding:"required"`
	Qty    string    `json:"qty" binding:"required"`
}

// CreateOrderRequest represents an order submission for a supplier
type CreateOrderRequest struct {
	OutletID     uuid.UUID          `json:"outlet_id" binding:"required"`
	Notes        string             `json:"notes"`
	DeliveryDate string             `json:"delivery_date" binding:"omitempty,max=32"`
	Lines        []OrderLineRequest `json:"lines" binding:"required"`
}
