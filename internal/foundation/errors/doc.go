// Package errors provides the classified error primitives used across stdsites.
//
// A ClassifiedError carries a broad category (config, validation, not_found,
// filesystem, render, internal), a severity and structured context. Errors are
// created with the fluent builder:
//
//	err := errors.NotFoundError("unknown site key").
//		WithContext("site_key", key).
//		Build()
//
// The CLI adapter maps categories to process exit codes and formats errors for
// terminal output.
package errors
