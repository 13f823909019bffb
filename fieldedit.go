// Package fieldedit is the entry point for validated text fields: it wires
// the OpenAPI loader and parser, the bundle catalog and the edit session
// into a small set of constructors.
package fieldedit

import (
	"context"
	"embed"
	"io/fs"

	internalLoader "github.com/goliatone/go-fieldedit/internal/openapi/loader"
	internalParser "github.com/goliatone/go-fieldedit/internal/openapi/parser"
	"github.com/goliatone/go-fieldedit/pkg/bundle"
	pkgopenapi "github.com/goliatone/go-fieldedit/pkg/openapi"
	"github.com/goliatone/go-fieldedit/pkg/orchestrator"
	"github.com/goliatone/go-fieldedit/pkg/session"
)

//go:embed bundles/*.yaml
var embeddedBundles embed.FS

// DefaultBundlesFS exposes the bundle files shipped with the module.
func DefaultBundlesFS() fs.FS {
	sub, err := fs.Sub(embeddedBundles, "bundles")
	if err != nil {
		return embeddedBundles
	}
	return sub
}

// LoadBundles parses bundle files from fsys, falling back to the preset
// catalog for names the files do not define. A nil fsys loads the embedded
// defaults.
func LoadBundles(fsys fs.FS) (*bundle.Store, error) {
	if fsys == nil {
		fsys = DefaultBundlesFS()
	}
	return bundle.LoadFS(fsys, bundle.NewCatalog())
}

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewEditor builds an editor for b.
func NewEditor(b bundle.Bundle, options ...session.Option) *session.Editor {
	return session.New(b, options...)
}

// FieldsFromOpenAPI loads source and derives the fields of operationID.
func FieldsFromOpenAPI(ctx context.Context, source pkgopenapi.Source, operationID string, options ...orchestrator.Option) ([]pkgopenapi.Field, error) {
	result, err := orchestrator.New(options...).Fields(ctx, orchestrator.Request{
		Source:      source,
		OperationID: operationID,
	})
	if err != nil {
		return nil, err
	}
	return result.Fields, nil
}
