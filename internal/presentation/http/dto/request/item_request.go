package request

// CreateItemRequest represents a create catalog item request.
// DefaultQty is a decimal string so fractional quantities like "2.5"
// survive the round trip exactly.
type CreateItemRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=160"`
	Unit       string  `json:"unit" binding:"required,min=1,max=32"`
	DefaultQty string  `json:"default_qty"`
	ItemType   *string `json:"item_type" binding:"omitempty,max=64"`
}

// UpdateItemRequest represents an update catalog item request
type UpdateItemRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=160"`
	Unit       *string `json:"unit" binding:"omitempty,min=1,max=32"`
	DefaultQty *string `json:"default_qty"`
	ItemType   *string `json:"item_type" binding:"omitempty,max=64"`
	Active     *bool   `json:"active"`
}
