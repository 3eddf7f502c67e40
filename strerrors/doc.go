// Package strerrors provides structured error types for the stringutil library.
//
// Import path: github.com/arturdoruch/stringutil/strerrors
//
// Almost every stringutil function is total: malformed input is sanitized,
// never rejected. Errors are reserved for arguments outside a closed set,
// such as an unknown target operating system passed to casing.ToFilename or
// an unknown encoding name passed to charset.LookupEncoding.
//
// # Sentinel Errors
//
//   - [ErrInvalidArgument]: Matches any [InvalidArgumentError]
//
// # Usage Examples
//
// Check the error category with errors.Is():
//
//	name, err := casing.ToFilename(title, casing.OS(userInput))
//	if errors.Is(err, strerrors.ErrInvalidArgument) {
//	    // Report the bad platform name to the caller
//	}
//
// Extract details with errors.As():
//
//	var argErr *strerrors.InvalidArgumentError
//	if errors.As(err, &argErr) {
//	    fmt.Printf("%s must be one of %v\n", argErr.Argument, argErr.Allowed)
//	}
package strerrors
