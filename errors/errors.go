package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput stands for general input problems indication, for
	// example a transaction stamped with a foreign sender.
	ErrInvalidInput = Register(2, "invalid input")

	// ErrConfig is returned when a participant set, a threshold or
	// a configuration file cannot be used. The caller must fix the
	// configuration before retrying.
	ErrConfig = Register(3, "invalid configuration")

	// ErrDecode is returned when externally supplied bytes or strings are
	// malformed (base64, keys, signatures, envelopes, BCS data).
	ErrDecode = Register(4, "cannot decode")

	// ErrMissingKey is returned when a signature is requested from
	// a credential that does not hold a private key.
	ErrMissingKey = Register(5, "missing private key")

	// ErrNotFound is returned when a selector or a signer does not resolve
	// to a known participant.
	ErrNotFound = Register(6, "not found")

	// ErrPayloadMismatch is returned when partial signatures that are
	// combined were created for different transaction payloads.
	ErrPayloadMismatch = Register(7, "payload mismatch")

	// ErrDuplicateSigner is returned when the same participant contributed
	// more than one partial signature.
	ErrDuplicateSigner = Register(8, "duplicate signer")

	// ErrThresholdNotMet is returned when the summed weight of the
	// contributing participants is lower than the threshold.
	ErrThresholdNotMet = Register(9, "threshold not met")

	// ErrInvalidSignature is returned when a signature does not verify
	// against the payload and the public key it claims.
	ErrInvalidSignature = Register(10, "invalid signature")

	// ErrSubmission is returned by the ledger client when a transaction
	// cannot be built, submitted or executed.
	ErrSubmission = Register(11, "submission failed")

	// ErrEmpty is returned when a value fails a not empty assertion.
	ErrEmpty = Register(12, "value is empty")

	// ErrHuman is returned when application reaches a code path which should not
	// ever be reached if the code was written as expected.
	ErrHuman = Register(13, "coding error")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info.
	ErrPanic = Register(111222, "panic")
)

// Register returns an error instance that should be used as the base for
// creating error instances during runtime.
//
// Popular root errors are declared in this package, but extensions may want to
// declare custom codes. This function ensures that no error code is used
// twice. Attempt to reuse an error code results in panic.
//
// Use this function only during a program startup phase.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[err.code] = err
	return err
}

// usedCodes is keeping track of used codes to ensure their uniqueness. No two
// error instances should share the same error code.
var usedCodes = map[uint32]*Error{
	1: nil, // Error code 1 is restricted for errors not created by this package.
}

// Error represents a root error.
//
// Root errors categorize issues. Each instance created during the runtime
// should wrap one of the declared root errors. This allows error tests and
// returning a stable error code to the client.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// Code returns the registered code of this error kind.
func (e Error) Code() uint32 {
	return e.code
}

// New returns a new error. Returned instance is having the root cause set to
// this error. Below two lines are equal
//
//	e.New("my description")
//	Wrap(e, "my description")
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is basically New with formatting capabilities.
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is check if given error instance is of a given kind/type. This involves
// unwrapping given error using the Cause method if available.
func (kind *Error) Is(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if kind == nil {
		if err == nil {
			return true
		}
		return reflect.ValueOf(err).IsNil()
	}

	for {
		if err == kind {
			return true
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return false
		}
	}
}

// Code returns the code of the root error kind of given error. Errors that
// were not created by this package have code 1 and nil has code 0.
func Code(err error) uint32 {
	if err == nil {
		return 0
	}
	for {
		if e, ok := err.(*Error); ok {
			return e.code
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return 1
		}
	}
}

// Wrap extends given error with an additional information.
//
// If err is nil, this returns nil, avoiding the need for an if statement when
// wrapping a error returned at the end of a function
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	// If this error does not carry the stacktrace information yet, attach
	// one. This should be done only once per error at the lowest frame
	// possible (most inner wrap).
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf extends given error with an additional information.
//
// This function works like Wrap function with additional funtionality of
// formatting the input as specified.
func Wrapf(err error, format string, args ...interface{}) error {
	desc := fmt.Sprintf(format, args...)
	return Wrap(err, desc)
}

type wrappedError struct {
	// This error layer description.
	msg string
	// The underlying error that triggered this one.
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Unwrap allows the standard library errors package to inspect the chain.
func (e *wrappedError) Unwrap() error {
	return e.parent
}

// Format works like pkg/errors: %+v prints the stack trace of the most inner
// wrap, %s and %v only the message.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprint(s, e.Error())
		if st := stackTrace(e); st != nil {
			fmt.Fprintf(s, "%+v", st.StackTrace())
		}
		return
	}
	fmt.Fprint(s, e.Error())
}

// Recover captures a panic and stop its propagation. If panic happens it is
// transformed into a ErrPanic instance and assigned to given error. Call this
// function using defer in order to work as expected.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// causer is an interface implemented by an error that supports wrapping. Use
// it to test if an error wraps another error instance.
type causer interface {
	Cause() error
}

type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

// stackTrace returns the first found stack tracer in the chain of given error.
func stackTrace(err error) stackTracer {
	for {
		if st, ok := err.(stackTracer); ok {
			return st
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}
