package product

// ProductCreate is the request schema for creating a product.
type ProductCreate struct {
	Name        string  `json:"name" minLength:"1" maxLength:"255"`
	Description string  `json:"description,omitempty" maxLength:"1000"`
	Price       float64 `json:"price" minimum:"0"`
	Quantity    int     `json:"quantity" minimum:"0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ProductUpdate is the request schema for partially updating a product.
// Nil fields are left untouched.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty" minLength:"1" maxLength:"255"`
	Description *string  `json:"description,omitempty" maxLength:"1000"`
	Price       *float64 `json:"price,omitempty" minimum:"0"`
	Quantity    *int     `json:"quantity,omitempty" minimum:"0"`
	IsActive    *bool    `json:"is_active,omitempty"`
}
