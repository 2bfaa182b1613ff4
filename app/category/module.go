// Package category exposes CRUD storage, services and HTTP routes
// for the category resource.
package category

// Manifest describes this module to the application shell.
var Manifest = struct {
	Name  string
	Label string
	Table string
}{
	Name:  "category",
	Label: "Category",
	Table: "categories",
}
