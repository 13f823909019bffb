package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldedit/pkg/bundle"
	pkgopenapi "github.com/goliatone/go-fieldedit/pkg/openapi"
	"github.com/goliatone/go-fieldedit/pkg/orchestrator"
	"github.com/goliatone/go-fieldedit/pkg/testsupport"
)

const accountsDoc = `
openapi: 3.0.3
info: {title: Accounts, version: "1"}
paths:
  /accounts:
    post:
      operationId: createAccount
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [email]
              properties:
                email: {type: string, format: email}
                phone: {type: string, x-fieldedit-template: "ddd-ddd-dddd"}
                plan: {type: string, enum: [free, pro]}
                sku: {type: string}
      responses:
        "201": {description: created}
`

func TestOrchestratorDerivesFields(t *testing.T) {
	t.Parallel()

	doc := testsupport.InlineDocument(t, "accounts.yaml", accountsDoc)
	orch := orchestrator.New()

	result, err := orch.Fields(context.Background(), orchestrator.Request{
		Document:    &doc,
		OperationID: "createAccount",
	})
	if err != nil {
		t.Fatalf("fields: %v", err)
	}

	got := make(map[string]string, len(result.Fields))
	for _, field := range result.Fields {
		got[field.Name] = field.Bundle.Name
	}
	want := map[string]string{
		"email": bundle.PresetEmail,
		"phone": pkgopenapi.RuleTemplate,
		"plan":  bundle.PresetChoice,
		"sku":   "text",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bundles mismatch (-want +got):\n%s", diff)
	}
	if result.Operation.Method != "POST" {
		t.Fatalf("method = %q", result.Operation.Method)
	}
}

func TestOrchestratorAppliesBundleOverrides(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"bundles.yaml": {Data: []byte(`
bundles:
  createAccount.sku:
    preset: hexColor
  plan:
    readOnly: true
`)},
	}
	doc := testsupport.InlineDocument(t, "accounts.yaml", accountsDoc)
	orch := orchestrator.New(orchestrator.WithBundleFS(fsys))

	result, err := orch.Fields(context.Background(), orchestrator.Request{
		Document:    &doc,
		OperationID: "createAccount",
	})
	if err != nil {
		t.Fatalf("fields: %v", err)
	}

	byName := make(map[string]pkgopenapi.Field, len(result.Fields))
	for _, field := range result.Fields {
		byName[field.Name] = field
	}
	if sku := byName["sku"]; sku.Rule != "override" || sku.Bundle.Capitalization != bundle.CapitalizeAll {
		t.Fatalf("sku override not applied: %+v", sku)
	}
	if plan := byName["plan"]; !plan.Bundle.ReadOnly {
		t.Fatalf("plan override not applied: %+v", plan)
	}
	if email := byName["email"]; email.Rule == "override" {
		t.Fatalf("catalog presets must not override by name")
	}
}

func TestOrchestratorTransformer(t *testing.T) {
	t.Parallel()

	doc := testsupport.InlineDocument(t, "accounts.yaml", accountsDoc)
	orch := orchestrator.New(orchestrator.WithTransformer(orchestrator.TransformerFunc(
		func(_ context.Context, _ pkgopenapi.Operation, fields []pkgopenapi.Field) ([]pkgopenapi.Field, error) {
			return fields[:1], nil
		},
	)))

	result, err := orch.Fields(context.Background(), orchestrator.Request{Document: &doc, OperationID: "createAccount"})
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if len(result.Fields) != 1 || result.Fields[0].Name != "email" {
		t.Fatalf("transformer not applied: %+v", result.Fields)
	}

	failing := orchestrator.New(orchestrator.WithTransformer(orchestrator.TransformerFunc(
		func(context.Context, pkgopenapi.Operation, []pkgopenapi.Field) ([]pkgopenapi.Field, error) {
			return nil, errors.New("boom")
		},
	)))
	if _, err := failing.Fields(context.Background(), orchestrator.Request{Document: &doc, OperationID: "createAccount"}); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected transformer error, got %v", err)
	}
}

func TestOrchestratorRequestErrors(t *testing.T) {
	t.Parallel()

	doc := testsupport.InlineDocument(t, "accounts.yaml", accountsDoc)
	orch := orchestrator.New()

	cases := []struct {
		name string
		req  orchestrator.Request
		want string
	}{
		{"missing operation id", orchestrator.Request{Document: &doc}, "operation id is required"},
		{"missing source", orchestrator.Request{OperationID: "createAccount"}, "source or document is required"},
		{"unknown operation", orchestrator.Request{Document: &doc, OperationID: "nope"}, `operation "nope" not found`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := orch.Fields(context.Background(), tc.req)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q, got %v", tc.want, err)
			}
		})
	}

	broken := orchestrator.New(orchestrator.WithBundleFS(fstest.MapFS{
		"bad.yaml": {Data: []byte("bundles:\n  x:\n    preset: nope\n")},
	}))
	if _, err := broken.Fields(context.Background(), orchestrator.Request{Document: &doc, OperationID: "createAccount"}); err == nil {
		t.Fatal("expected bundle load error")
	}
}
