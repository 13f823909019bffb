package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	internalLoader "github.com/goliatone/go-fieldedit/internal/openapi/loader"
	internalParser "github.com/goliatone/go-fieldedit/internal/openapi/parser"
	"github.com/goliatone/go-fieldedit/pkg/bundle"
	pkgopenapi "github.com/goliatone/go-fieldedit/pkg/openapi"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// Transformer mutates derived fields before overrides apply.
type Transformer interface {
	Transform(ctx context.Context, op pkgopenapi.Operation, fields []pkgopenapi.Field) ([]pkgopenapi.Field, error)
}

// TransformerFunc adapts a function to Transformer.
type TransformerFunc func(ctx context.Context, op pkgopenapi.Operation, fields []pkgopenapi.Field) ([]pkgopenapi.Field, error)

// Transform calls f.
func (f TransformerFunc) Transform(ctx context.Context, op pkgopenapi.Operation, fields []pkgopenapi.Field) ([]pkgopenapi.Field, error) {
	return f(ctx, op, fields)
}

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithResolver injects the resolver that maps schemas to bundles.
func WithResolver(resolver *pkgopenapi.Resolver) Option {
	return func(o *Orchestrator) {
		o.resolver = resolver
	}
}

// WithStore supplies loaded bundle files. A file bundle named
// "<operationId>.<field>" or "<field>" replaces the derived bundle.
func WithStore(store *bundle.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithBundleFS loads bundle files from fsys during construction.
func WithBundleFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.bundleFS = fsys
	}
}

// WithTransformer registers a Transformer that runs after resolution.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the pipeline from OpenAPI document to fields. It
// applies the built-in loader, parser and resolver unless callers inject
// their own.
type Orchestrator struct {
	loader        pkgopenapi.Loader
	parser        pkgopenapi.Parser
	resolver      *pkgopenapi.Resolver
	store         *bundle.Store
	bundleFS      fs.FS
	transformer   Transformer
	logger        *slog.Logger
	initialiseErr error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to derive fields from an operation.
type Request struct {
	// Source identifies where the OpenAPI document lives. Optional when Document
	// is supplied.
	Source pkgopenapi.Source

	// Document allows callers to bypass the loader.
	Document *pkgopenapi.Document

	// OperationID selects the operation whose request body is edited.
	OperationID string
}

// Result is the derived operation and its fields.
type Result struct {
	Operation pkgopenapi.Operation
	Fields    []pkgopenapi.Field
}

// Fields executes the loader → parser → resolver sequence.
func (o *Orchestrator) Fields(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if req.OperationID == "" {
		return Result{}, errors.New("orchestrator: operation id is required")
	}

	operations, err := o.Operations(ctx, req)
	if err != nil {
		return Result{}, err
	}
	op, ok := operations[req.OperationID]
	if !ok {
		return Result{}, fmt.Errorf("orchestrator: operation %q not found", req.OperationID)
	}

	fields, err := o.resolver.Fields(op)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: resolve fields: %w", err)
	}
	if o.transformer != nil {
		fields, err = o.transformer.Transform(ctx, op, fields)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: transform fields: %w", err)
		}
	}
	fields = o.applyOverrides(op.ID, fields)

	o.logger.Debug("fields derived", "operation", op.ID, "count", len(fields))
	return Result{Operation: op, Fields: fields}, nil
}

// Operations loads and parses the requested document.
func (o *Orchestrator) Operations(ctx context.Context, req Request) (map[string]pkgopenapi.Operation, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse operations: %w", err)
	}
	return operations, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) applyOverrides(operationID string, fields []pkgopenapi.Field) []pkgopenapi.Field {
	if o.store == nil {
		return fields
	}
	for idx, field := range fields {
		for _, key := range []string{operationID + "." + field.Name, field.Name} {
			if b, ok := o.store.Loaded(key); ok {
				o.logger.Debug("bundle override", "operation", operationID, "field", field.Name, "bundle", key)
				fields[idx].Bundle = b
				fields[idx].Rule = "override"
				break
			}
		}
	}
	return fields
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.store == nil && o.bundleFS != nil {
		store, err := bundle.LoadFS(o.bundleFS, nil)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load bundles: %w", err)
			return
		}
		o.store = store
	}
	if o.resolver == nil {
		var catalog *bundle.Catalog
		if o.store != nil {
			catalog = o.store.Catalog()
		}
		o.resolver = pkgopenapi.NewResolver(catalog)
	}
}
