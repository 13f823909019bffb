package openapi

import "context"

// Parser normalises OpenAPI documents into operation wrappers keyed by
// operation id.
type Parser interface {
	Operations(ctx context.Context, doc Document) (map[string]Operation, error)
}

// ParserOptions exposes parsing toggles.
type ParserOptions struct {
	// ResolveReferences controls whether the parser eagerly resolves $ref
	// pointers. Defaults to true for full documents.
	ResolveReferences bool

	// AllowPartialDocuments accepts documents without paths. Defaults to
	// false.
	AllowPartialDocuments bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithReferenceResolution toggles eager reference resolution.
func WithReferenceResolution(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ResolveReferences = enabled
	}
}

// WithPartialDocuments toggles support for component-only documents.
func WithPartialDocuments(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowPartialDocuments = enabled
	}
}

// NewParserOptions applies ParserOption functions over the defaults.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		ResolveReferences:     true,
		AllowPartialDocuments: false,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

