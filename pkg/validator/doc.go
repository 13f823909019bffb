// Package validator defines the capabilities a field validator may offer and
// the catalog of built-in validators.
//
// Every validator implements Validator. A validator may additionally implement
// Responder, to take part in per-keystroke decisions, and Preprocessor, to map
// between the marked-up display text and the raw stored value. Consumers use
// AsResponder and AsPreprocessor to query those capabilities; a validator that
// lacks one is simply skipped.
//
// Validators are immutable once constructed and safe to share between fields
// and goroutines.
package validator
