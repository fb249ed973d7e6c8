// Package domainerrors defines the validation error model shared by every
// identifier package. Each failure carries a discriminated Code so callers
// and tests can match on the reason instead of parsing message text; the
// human-readable message is built at the failure site.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies why a number failed validation.
type Code string

// Validation failure reasons.
const (
	// CodeLength: the input does not decompose into exactly ten decimal digits.
	CodeLength Code = "length"
	// CodeFormat: the input contains a character that is neither a digit nor
	// whitespace, or a digit outside [0,9].
	CodeFormat Code = "format"
	// CodeChecksumDomain: the nine significant digits produce a theoretical
	// check digit of 10, which Modulus 11 cannot represent.
	CodeChecksumDomain Code = "checksum_domain"
	// CodeChecksumMismatch: the supplied control digit does not equal the
	// computed check digit.
	CodeChecksumMismatch Code = "checksum_mismatch"
	// CodeDateRange: the CHI date-of-birth prefix is out of bounds.
	CodeDateRange Code = "date_range"
	// CodeMagnitude: the numeric input requires more than ten decimal digits.
	CodeMagnitude Code = "magnitude"
)

// Error is a validation failure with a discriminated reason.
type Error struct {
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// New constructs a validation error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf constructs a validation error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// HasCode reports whether err is a validation error carrying code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf extracts the code from a validation error, or "" for any other error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
