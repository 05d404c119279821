package errors

import (
	"reflect"

	"go.uber.org/multierr"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If none of the given errors is non-nil, nil is returned. A single non-nil
// error is returned as it is, without wrapping.
func Append(errs ...error) error {
	var res error
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		res = multierr.Append(res, e)
	}
	return res
}

// Errors returns the list of errors clubbed together by Append.
func Errors(err error) []error {
	return multierr.Errors(err)
}

// isNilErr returns true if given error is nil, including typed nil values
// wrapped in the error interface.
func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}
