// Package orchestrator wires the loader → parser → resolver pipeline that turns
// an OpenAPI operation into editable fields, with bundle files overriding the
// derived bundles.
package orchestrator
