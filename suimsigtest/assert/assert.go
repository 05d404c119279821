// Package assert provides the small set of test assertions used across the
// suimsig packages.
package assert

import (
	"bytes"
	"reflect"

	"github.com/iov-one/suimsig/errors"
)

// Tester is implemented by *testing.T and *testing.B.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
	Logf(string, ...interface{})
}

// Nil fails the test if given value is not nil. Errors are printed with
// their stack trace.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		t.Fatalf("want nil, got %+v", value)
	}
}

// NotNil fails the test if given value is nil.
func NotNil(t Tester, value interface{}) {
	t.Helper()
	if isNil(value) {
		t.Fatal("want a non nil value")
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// Equal fails the test if two values are not deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// BytesEqual fails the test if two byte slices differ. Nil and empty slices
// are equal.
func BytesEqual(t Tester, want, got []byte) {
	t.Helper()
	if !bytes.Equal(want, got) {
		t.Fatalf("bytes not equal\nwant %x\n got %x", want, got)
	}
}

// Panics fails the test if fn returns without panicking.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	fn()
}

// FieldError fails the test unless err holds exactly one error for given
// field and that error is of the wanted kind. Use nil as want to ensure no
// error was reported for the field.
func FieldError(t Tester, err error, field string, want *errors.Error) {
	t.Helper()

	errs := errors.FieldErrors(err, field)
	switch {
	case want == nil && len(errs) == 0:
		return
	case want == nil:
		logErrors(t, errs)
		t.Fatalf("want no %q field error, got %d", field, len(errs))
	case len(errs) == 0:
		t.Fatalf("want %q field error %q, got none in %v", field, want, err)
	case len(errs) > 1:
		logErrors(t, errs)
		t.Fatalf("want one %q field error, got %d", field, len(errs))
	case !want.Is(errs[0]):
		t.Fatalf("want %q field error %q, got %+v", field, want, errs[0])
	}
}

func logErrors(t Tester, errs []error) {
	for i, e := range errs {
		t.Logf("\terror %d: %q", i+1, e)
	}
}

// IsErr fails the test if got is not of the want error kind.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if kind, ok := want.(interface{ Is(error) bool }); ok && kind.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}
