/*
Package errors implements custom error interfaces for suimsig.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. Every failure of the
multisig protocol maps to exactly one registered kind, so that a caller can
decide whether to fix the configuration (ErrConfig), re-supply input
(ErrDecode), gather different partial signatures (ErrPayloadMismatch,
ErrDuplicateSigner, ErrThresholdNotMet) or give up (ErrMissingKey).

If you want to register a custom error - use Register(code, description).
For reusing errors - use Errxxx.New and Errxxx.Newf, or Wrap and Wrapf.
Test the kind of an error with Errxxx.Is(err).

There is also support for stacktraces. Please ensure you create the custom error using
ErrXyz.New("...") or errors.Wrap(err, "...") at the point of creation to ensure we attach
a stacktrace. If you wrap multiple times, we only record the first wrap with the stacktrace.
(And don't do this as a global `var ErrFoo = errors.ErrHuman.New("foo")` or you will get a
useless stacktrace).

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context for the error

	%s is just the error message
	%+v is the message followed by the stack trace
*/
package errors
