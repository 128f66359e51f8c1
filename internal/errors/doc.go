// Package errors provides error handling conventions for the fontls CLI.
//
// It defines an ExitError type for CLI exit code handling and exit code
// constants following standard Unix conventions. Domain sentinel errors
// live with the packages that raise them (see internal/fontdir).
//
// [ExitError] wraps an underlying error with an exit code and an optional
// suggestion shown to the user:
//
//	var exitErr *flserrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
