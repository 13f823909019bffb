package openapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-fieldedit"
	pkgopenapi "github.com/goliatone/go-fieldedit/pkg/openapi"
)

func TestLoaderParserIntegration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	fixture := filepath.Join("testdata", "accounts.yaml")
	data, err := os.ReadFile(fixture)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	tmp := t.TempDir()
	filePath := filepath.Join(tmp, "accounts.yaml")
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		t.Fatalf("write temp fixture: %v", err)
	}

	loader := fieldedit.NewLoader()

	// File source
	docFile, err := loader.Load(ctx, pkgopenapi.SourceFromFile(filePath))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}

	parser := fieldedit.NewParser()
	fromFile, err := parser.Operations(ctx, docFile)
	if err != nil {
		t.Fatalf("parse file document: %v", err)
	}

	// HTTP source
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}))
	defer server.Close()

	loaderHTTP := fieldedit.NewLoader(pkgopenapi.WithHTTPFallback(0))
	docHTTP, err := loaderHTTP.Load(ctx, pkgopenapi.SourceFromURL(server.URL))
	if err != nil {
		t.Fatalf("load http: %v", err)
	}
	fromHTTP, err := parser.Operations(ctx, docHTTP)
	if err != nil {
		t.Fatalf("parse http document: %v", err)
	}

	if len(fromFile) != 2 || len(fromHTTP) != len(fromFile) {
		t.Fatalf("operation counts differ: file=%d http=%d", len(fromFile), len(fromHTTP))
	}
}
