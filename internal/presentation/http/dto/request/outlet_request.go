package request

// CreateOutletRequest represents a create outlet request
type CreateOutletRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=100"`
	Address string  `json:"address" binding:"required,min=1,max=200"`
	Notes   *string `json:"notes"`
}

// UpdateOutletRequest represents an update outlet request
type UpdateOutletRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Address *string `json:"address" binding:"omitempty,min=1,max=200"`
	Notes   *string `json:"notes"`
}
