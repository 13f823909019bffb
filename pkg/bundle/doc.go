// Package bundle pairs validator lists with presentation hints. A Bundle is
// plain data: named presets cover the common formats, a Catalog resolves them
// by name and LoadFS reads additional bundles from YAML or JSON files.
package bundle
