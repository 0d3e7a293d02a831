package contract

import "errors"

var (
	ErrModelInvoke     = errors.New("model invoke failed")
	ErrSchemaViolation = errors.New("model response violates schema")
	ErrPromptMissing   = errors.New("required prompt is missing")
	ErrValidation      = errors.New("validation failed")

	// ErrCustomerNotFound is returned by Directory lookups for unknown ids.
	ErrCustomerNotFound = errors.New("customer not found")
)
