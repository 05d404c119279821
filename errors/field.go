package errors

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Field wraps err with the name of the configuration or input attribute it
// was found for. It returns nil if err is nil.
//
// Field names are lower case, dot separated paths matching the JSON
// representation. List elements are addressed by their index starting with
// 0, for example participants.2.weight
func Field(name string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{parent: err, field: name, desc: description}
}

// AppendField adds a field error to errs. Nothing is added if fieldErr is
// nil.
func AppendField(errs error, name string, fieldErr error) error {
	return Append(errs, Field(name, fieldErr, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return fmt.Sprintf("field %q: %s", e.field, e.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", e.field, e.desc, e.parent)
}

func (e *fieldError) Cause() error {
	return e.parent
}

func (e *fieldError) Unwrap() error {
	return e.parent
}

// FieldErrors returns all errors reported for given field name. Errors
// combined with Append are inspected one by one. The search along a chain
// stops at the outermost matching field error.
func FieldErrors(err error, name string) []error {
	var found []error
	for !isNilErr(err) {
		if f, ok := err.(*fieldError); ok && f.field == name {
			return append(found, f)
		}
		if errs := multierr.Errors(err); len(errs) > 1 {
			for _, e := range errs {
				found = append(found, FieldErrors(e, name)...)
			}
			return found
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return found
}
