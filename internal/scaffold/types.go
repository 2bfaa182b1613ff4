// Package scaffold generates CRUD module skeletons and inventories the
// modules already present in an application directory.
package scaffold

// Kind labels the role an artifact plays inside a generated module.
type Kind string

const (
	KindDataModel          Kind = "data-model"
	KindSchemas            Kind = "schemas"
	KindPersistenceAdapter Kind = "persistence-adapter"
	KindBusinessService    Kind = "business-service"
	KindRouteHandlers      Kind = "route-handlers"
	KindErrorTaxonomy      Kind = "error-taxonomy"
	KindModuleManifest     Kind = "module-manifest"
	KindDocumentation      Kind = "documentation"
)

// Artifact binds an output filename to its template and kind.
type Artifact struct {
	Kind     Kind
	FileName string
	Template string
}

// Artifacts lists every generated file in write order.
var Artifacts = []Artifact{
	{Kind: KindModuleManifest, FileName: "module.go", Template: "module.go.tmpl"},
	{Kind: KindDataModel, FileName: "model.go", Template: "model.go.tmpl"},
	{Kind: KindSchemas, FileName: "schemas.go", Template: "schemas.go.tmpl"},
	{Kind: KindPersistenceAdapter, FileName: "crud.go", Template: "crud.go.tmpl"},
	{Kind: KindBusinessService, FileName: "service.go", Template: "service.go.tmpl"},
	{Kind: KindRouteHandlers, FileName: "routes.go", Template: "routes.go.tmpl"},
	{Kind: KindErrorTaxonomy, FileName: "errors.go", Template: "errors.go.tmpl"},
	{Kind: KindDocumentation, FileName: "README.md", Template: "readme.md.tmpl"},
}

// GeneratedArtifact is a rendered file ready to be written.
type GeneratedArtifact struct {
	Kind     Kind
	FileName string
	Content  string
}

// Outcome is the per-file result of a write attempt.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeSkipped Outcome = "skipped-exists"
	OutcomeFailed  Outcome = "failed"
)

// WriteResult records what happened to a single artifact.
type WriteResult struct {
	Kind     Kind    `json:"kind"`
	FileName string  `json:"file"`
	Path     string  `json:"path"`
	Outcome  Outcome `json:"outcome"`
	Error    string  `json:"error,omitempty"`
}

// Report summarizes a scaffold run.
type Report struct {
	Name    string        `json:"name"`
	Module  string        `json:"module"`
	Dir     string        `json:"dir"`
	Results []WriteResult `json:"results"`
	Created int           `json:"created"`
	Skipped int           `json:"skipped"`
	Failed  int           `json:"failed"`
}

// ModuleDescriptor describes one module found by Scan.
type ModuleDescriptor struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Files    int    `json:"files"`
	Complete bool   `json:"complete"`
}
