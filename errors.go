package cookie

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPair is returned when the name/value segment has no '='.
	ErrMalformedPair = errors.New("malformed HTTP cookie")
	// ErrEmptyName is returned when the name/value segment starts with '='.
	ErrEmptyName = errors.New("cookie name must not be empty")
	// ErrEmptyValue is returned when a cookie or directive value is empty after trimming.
	ErrEmptyValue = errors.New("value must not be empty")
	// ErrDirectiveMissingValue is returned when Domain, Expires, Max-Age, Path
	// or SameSite appear without a value.
	ErrDirectiveMissingValue = errors.New("directive needs a value")
	// ErrInvalidDate is returned when no supported date layout matches.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidSameSite is returned for SameSite values other than strict, lax or none.
	ErrInvalidSameSite = errors.New("invalid SameSite cookie directive value")
	// ErrInvalidMaxAge is returned for negative or non-numeric Max-Age values.
	ErrInvalidMaxAge = errors.New("cannot parse Max-Age")
	// ErrNoNameValuePair is returned when the header holds only directives.
	ErrNoNameValuePair = errors.New("cookie has not got name/value")
)

// ParseError describes a failed parse of a Set-Cookie value or one of its directives.
type ParseError struct {
	Input     string // Offending text
	Directive string // Lower-cased directive key, if the failure is inside a directive
	Err       error  // One of the Err* sentinels
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Directive != "":
		return fmt.Sprintf("directive %s: %v", e.Directive, e.Err)
	case e.Input != "":
		return fmt.Sprintf("%v: %s", e.Err, e.Input)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(input string, err error) *ParseError {
	return &ParseError{Input: input, Err: err}
}

func newDirectiveError(key, input string, err error) *ParseError {
	return &ParseError{Input: input, Directive: key, Err: err}
}
