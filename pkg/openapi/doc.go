// Package openapi exposes the loader and parser contracts used to read OpenAPI
// documents, and derives field bundles from operation request bodies.
// Implementations live under internal/openapi to keep kin-openapi out of the
// public API.
package openapi
