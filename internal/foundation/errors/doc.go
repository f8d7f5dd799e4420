// Package errors provides the classified error primitives used across getapi-site.
//
// Every failure the site build can hit is fatal: a provider file that does not
// parse, a template that references a missing field, an output directory that
// cannot be written. The classification exists so the CLI can pick an exit code
// and log the error with structured context, not to drive recovery.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, provider, template, filesystem, ...)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit code and message selection for the command line
//
// Example usage:
//
//	err := errors.WrapError(parseErr, errors.CategoryProvider, "failed to parse provider file").
//		WithContext("path", path).
//		Fatal().
//		Build()
package errors
