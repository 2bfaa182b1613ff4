package product

import "fmt"

// NotFoundError reports a missing product by id.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ID)
}

// ValidationError reports input rejected by the service layer.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
