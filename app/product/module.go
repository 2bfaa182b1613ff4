// Package product exposes CRUD storage, services and HTTP routes
// for the product resource.
package product

// Manifest describes this module to the application shell.
var Manifest = struct {
	Name  string
	Label string
	Table string
}{
	Name:  "product",
	Label: "Product",
	Table: "products",
}
