package category

// CategoryCreate is the request schema for creating a category.
type CategoryCreate struct {
	Name        string `json:"name" minLength:"1" maxLength:"255"`
	Description string `json:"description,omitempty" maxLength:"1000"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// CategoryUpdate is the request schema for partially updating a category.
// Nil fields are left untouched.
type CategoryUpdate struct {
	Name        *string `json:"name,omitempty" minLength:"1" maxLength:"255"`
	Description *string `json:"description,omitempty" maxLength:"1000"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
