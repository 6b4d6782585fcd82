// Package errors provides the structured error handling used across the
// catalog service.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping for the REST boundary
//   - Error context preservation through wrapping
//   - An ordered validation builder for field-level rules
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("invalid id: %d", id)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// Changing error semantics:
//
//	if err := row.Scan(...); err != nil {
//	    if err == sql.ErrNoRows {
//	        return errors.NotFoundf("character with ID %d not found", id)
//	    }
//	    return errors.Wrap(err, "database error")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // 404 at the boundary
//	}
//
//	code := errors.GetCode(err)
//	status := code.HTTPStatus()
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateMaxLength("name", input.Name, 100, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Every rule runs before Build fails, and the resulting error carries the
// ordered list of violated rules in its metadata under
// "validation_errors", so the caller can fix all problems in one
// round-trip.
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound)
//   - Wrap store and cache errors with operation context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Map codes to HTTP statuses
//   - Surface user-friendly messages, never driver detail
package errors
