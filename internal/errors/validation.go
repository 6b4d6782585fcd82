package errors

import (
	"fmt"
	"strings"
	"time"
)

// FieldViolation is a single validation rule violation on a named field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (fv FieldViolation) String() string {
	return fmt.Sprintf("%s %s", fv.Field, fv.Message)
}

// ValidationError collects validation rule violations for one input.
// Violations keep the order in which they were recorded, so callers can
// surface every broken rule in a single response in a stable order.
type ValidationError struct {
	Violations []FieldViolation `json:"violations"`
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if len(v.Violations) == 0 {
		return "validation failed"
	}

	parts := make([]string, len(v.Violations))
	for i, fv := range v.Violations {
		parts[i] = fv.String()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// NewValidationError creates a new validation error
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add records a violation for a field
func (v *ValidationError) Add(field, message string) {
	v.Violations = append(v.Violations, FieldViolation{Field: field, Message: message})
}

// Addf records a formatted violation for a field
func (v *ValidationError) Addf(field, format string, args ...interface{}) {
	v.Add(field, fmt.Sprintf(format, args...))
}

// HasViolations returns true if any rule was violated
func (v *ValidationError) HasViolations() bool {
	return len(v.Violations) > 0
}

// Messages returns the human-readable messages in recording order
func (v *ValidationError) Messages() []string {
	msgs := make([]string, len(v.Violations))
	for i, fv := range v.Violations {
		msgs[i] = fv.String()
	}
	return msgs
}

// ToError converts the collected violations to a standard Error, carrying
// the ordered message list in metadata. Returns nil when nothing was
// violated.
func (v *ValidationError) ToError() *Error {
	if !v.HasViolations() {
		return nil
	}

	return InvalidArgument(v.Error()).WithMeta("validation_errors", v.Messages())
}

// ValidationBuilder provides a fluent interface for building validation
// errors. Every rule runs; violations accumulate in order, and Build
// returns nil if none were recorded.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		err: NewValidationError(),
	}
}

// Field adds a validation violation for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.Add(field, message)
	return vb
}

// Fieldf adds a formatted validation violation for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	vb.err.Addf(field, format, args...)
	return vb
}

// RequiredField adds a required field violation
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns the error if there are violations, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if vb.err.HasViolations() {
		return vb.err.ToError()
	}
	return nil
}

// Validation helper functions

// ValidateRequired records a violation when a string field is empty
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateMaxLength records a violation when a string exceeds maxLen.
// An empty string never exceeds, so this never double-reports with
// ValidateRequired.
func ValidateMaxLength(field, value string, maxLen int, vb *ValidationBuilder) {
	if len(value) > maxLen {
		vb.Fieldf(field, "must be no more than %d characters", maxLen)
	}
}

// ValidatePositive records a violation when an identifier is not strictly
// positive
func ValidatePositive(field string, value int64, vb *ValidationBuilder) {
	if value <= 0 {
		vb.Field(field, "must be a positive integer")
	}
}

// DateLayout is the calendar date format accepted by ValidateDate.
const DateLayout = "2006-01-02"

// ValidateDate records a violation unless value parses as a YYYY-MM-DD
// date and re-renders to the identical string. The round-trip check
// rejects normalized dates like 2021-02-30 as well as any separator other
// than "-".
func ValidateDate(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		// required is reported separately
		return
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil || t.Format(DateLayout) != value {
		vb.Field(field, "must be a valid date in YYYY-MM-DD format")
	}
}
