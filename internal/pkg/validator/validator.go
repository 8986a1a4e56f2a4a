// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the built-in tags it registers a "trimmed" tag that rejects strings with
// leading or trailing whitespace, used for wallet identities.
package validator

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidation is returned as the first error in a multi-error chain when validation fails.
//
// This sentinel error allows callers to detect validation failures explicitly,
// even when multiple field errors are returned.
var ErrValidation = errors.New("validation error")

var (
	validator         *gvalidator.Validate
	initValidatorOnce sync.Once
)

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Identity': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// trimmed reports whether a string field has no surrounding whitespace.
func trimmed(fl gvalidator.FieldLevel) bool {
	s := fl.Field().String()
	return s == strings.TrimSpace(s)
}

// Init initializes the validator only once, enabling required struct validation
// and registering the custom tags of this package.
//
// It is safe to call Init multiple times; only the first call takes effect.
func Init() {
	initValidatorOnce.Do(func() {
		v := gvalidator.New(gvalidator.WithRequiredStructEnabled())
		if err := v.RegisterValidation("trimmed", trimmed); err != nil {
			panic(err)
		}

		validator = v
	})
}

// formatError transforms a raw validator error into a human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidation
// as the root, followed by one formatted message per field error. Otherwise the original
// error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		var (
			field = validationErr.Field()
			tag   = validationErr.Tag()
			value = validationErr.Value()
		)

		errs = append(errs, fmt.Errorf(errStringFormat, field, value, tag))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass. Otherwise it returns a combined error that
// includes ErrValidation and one formatted message for each failing field.
//
//	type Input struct {
//	    Name string `validate:"required,trimmed"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidation) {
//	    // Handle validation failure
//	}
func Validate(v any) error {
	Init()

	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
