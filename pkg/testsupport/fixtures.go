package testsupport

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-fieldedit/pkg/openapi"
)

// LoadDocument reads a fixture and builds an openapi.Document using a file
// source. Failures stop the test.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T.
func LoadDocumentFromPath(path string) (pkgopenapi.Document, error) {
	if path == "" {
		return pkgopenapi.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), data)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// InlineDocument wraps raw bytes in a Document with an fs source named name.
func InlineDocument(t *testing.T, name string, raw string) pkgopenapi.Document {
	t.Helper()

	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFS(name), []byte(raw))
	if err != nil {
		t.Fatalf("inline document: %v", err)
	}
	return doc
}

// Diff returns a cmp diff between want and got.
func Diff(want, got any, opts ...cmp.Option) string {
	return cmp.Diff(want, got, opts...)
}
