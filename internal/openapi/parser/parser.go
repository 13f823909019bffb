package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-fieldedit/pkg/openapi"
)

// Parser implements pkgopenapi.Parser using kin-openapi.
type Parser struct {
	options pkgopenapi.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	return &Parser{options: options}
}

// Operations converts a Document into a map keyed by operationId.
func (p *Parser) Operations(ctx context.Context, doc pkgopenapi.Document) (map[string]pkgopenapi.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.ResolveReferences,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		if !p.options.AllowPartialDocuments {
			return nil, errors.New("openapi parser: document does not contain any paths")
		}
	}

	if err := p.resolveReferences(ctx, loader, spec); err != nil {
		return nil, err
	}

	operations := make(map[string]pkgopenapi.Operation)
	if spec.Paths != nil {
		for path, item := range spec.Paths.Map() {
			if item == nil {
				continue
			}
			p.collectOperation(ctx, operations, "GET", path, item.Get)
			p.collectOperation(ctx, operations, "PUT", path, item.Put)
			p.collectOperation(ctx, operations, "POST", path, item.Post)
			p.collectOperation(ctx, operations, "DELETE", path, item.Delete)
			p.collectOperation(ctx, operations, "PATCH", path, item.Patch)
			p.collectOperation(ctx, operations, "HEAD", path, item.Head)
			p.collectOperation(ctx, operations, "OPTIONS", path, item.Options)
			p.collectOperation(ctx, operations, "TRACE", path, item.Trace)
		}
	}

	if len(operations) == 0 && !p.options.AllowPartialDocuments {
		return nil, errors.New("openapi parser: no operations extracted")
	}

	return operations, nil
}

func (p *Parser) resolveReferences(ctx context.Context, loader *openapi3.Loader, spec *openapi3.T) error {
	if !p.options.ResolveReferences {
		return nil
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("openapi parser: validate: %w", err)
	}
	return nil
}

func (p *Parser) collectOperation(ctx context.Context, target map[string]pkgopenapi.Operation, method, path string, operation *openapi3.Operation) {
	if ctx.Err() != nil {
		return
	}
	if operation == nil {
		return
	}
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}

	op, err := pkgopenapi.NewOperation(opID, method, path, p.extractRequestSchema(operation.RequestBody))
	if err != nil {
		// Invalid operations are skipped.
		return
	}
	op.Summary = operation.Summary
	op.Description = operation.Description
	target[opID] = op
}

func (p *Parser) extractRequestSchema(requestBody *openapi3.RequestBodyRef) pkgopenapi.Schema {
	if requestBody == nil {
		return pkgopenapi.Schema{}
	}
	if requestBody.Value == nil {
		return pkgopenapi.Schema{Ref: requestBody.Ref}
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok {
			return convertSchema(mt.Schema)
		}
	}
	for _, mt := range content {
		return convertSchema(mt.Schema)
	}
	return pkgopenapi.Schema{}
}

func convertSchema(ref *openapi3.SchemaRef) pkgopenapi.Schema {
	return convertSchemaDepth(ref, 0)
}

// maxDepth bounds recursion through self-referencing components.
const maxDepth = 16

func convertSchemaDepth(ref *openapi3.SchemaRef, depth int) pkgopenapi.Schema {
	if ref == nil {
		return pkgopenapi.Schema{}
	}
	if ref.Value == nil || depth > maxDepth {
		return pkgopenapi.Schema{Ref: ref.Ref}
	}
	src := ref.Value
	schema := pkgopenapi.Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Description: src.Description,
		Default:     src.Default,
		ReadOnly:    src.ReadOnly,
		Pattern:     src.Pattern,
	}

	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	}
	if len(src.Properties) > 0 {
		schema.Properties = make(map[string]pkgopenapi.Schema, len(src.Properties))
		for name, property := range src.Properties {
			schema.Properties[name] = convertSchemaDepth(property, depth+1)
		}
	}
	if src.Items != nil {
		items := convertSchemaDepth(src.Items, depth+1)
		schema.Items = &items
	}
	schema.Minimum = bound(src.Min, src.ExclusiveMin, schema.Type, 1)
	schema.Maximum = bound(src.Max, src.ExclusiveMax, schema.Type, -1)
	if src.MinLength != 0 {
		value := int(src.MinLength)
		schema.MinLength = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		schema.MaxLength = &value
	}
	schema.Extensions = extractExtensions(src.Extensions)
	mergeAllOf(&schema, src.AllOf, depth)
	return schema
}

// bound copies a numeric limit. Exclusive integer limits are tightened by one
// step; exclusive number limits stay inclusive.
func bound(limit *float64, exclusive bool, schemaType string, step float64) *float64 {
	if limit == nil {
		return nil
	}
	value := *limit
	if exclusive && schemaType == "integer" {
		value += step
	}
	return &value
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}

const extensionNamespace = "x-fieldedit"

func extractExtensions(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	result := make(map[string]any)
	for key, value := range raw {
		if strings.HasPrefix(key, extensionNamespace+"-") {
			result[key] = value
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// mergeAllOf folds allOf members into target. Members contribute properties,
// required names and extensions; fields set on target win over members.
func mergeAllOf(target *pkgopenapi.Schema, refs openapi3.SchemaRefs, depth int) {
	if target == nil || len(refs) == 0 {
		return
	}
	for _, ref := range refs {
		if ref == nil || ref.Value == nil {
			continue
		}
		member := convertSchemaDepth(ref, depth+1)
		if target.Type == "" {
			target.Type = member.Type
		}
		if len(member.Properties) > 0 {
			if target.Properties == nil {
				target.Properties = make(map[string]pkgopenapi.Schema, len(member.Properties))
			}
			for name, property := range member.Properties {
				if _, exists := target.Properties[name]; !exists {
					target.Properties[name] = property
				}
			}
		}
		for _, name := range member.Required {
			if !target.IsRequired(name) {
				target.Required = append(target.Required, name)
			}
		}
		for key, value := range member.Extensions {
			if target.Extensions == nil {
				target.Extensions = make(map[string]any, len(member.Extensions))
			}
			if _, exists := target.Extensions[key]; !exists {
				target.Extensions[key] = value
			}
		}
	}
}
