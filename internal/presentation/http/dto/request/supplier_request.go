package request

// CreateSupplierRequest represents a create supplier request
type CreateSupplierRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Phone    string  `json:"phone" binding:"max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Category *string `json:"category" binding:"omitempty,max=64"`
	Notes    *string `json:"notes"`
}

// UpdateSupplierRequest represents an update supplier request
type UpdateSupplierRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Category *string `json:"category" binding:"omitempty,max=64"`
	Notes    *string `json:"notes"`
}
