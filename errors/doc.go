/*
Package errors provides semantic error types for the entityresolve library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper
functions.

Common Errors:

	var (
	    ErrNotFound               = errors.New("entity not found")
	    ErrAlreadyExists          = errors.New("entity already exists")
	    ErrInvalidInput           = errors.New("invalid input")
	    ErrConditionFailed        = errors.New("condition check failed")
	    ErrUnrecognizedEntityType = errors.New("unrecognized entity type")
	    ErrUnrecognizedImportType = errors.New("unrecognized import type")
	)

Usage:

	// Distinguish which registry missed
	model, err := reg.EntityModel(typeName)
	if err != nil {
	    if errors.IsUnrecognizedEntityType(err) {
	        // surface as a client-facing error
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("Work", bbid)
	err := errors.NewValidationError("bbid", "not a valid BBID")
	err := errors.NewConditionFailedError("update", "revision mismatch")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
