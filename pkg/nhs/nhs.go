// Package nhs implements the NHS Number, the patient identifier for England,
// Wales and the Isle of Man.
//
// An NHS Number is ten digits long: nine significant digits plus a
// Modulus 11 check digit. It is often displayed in a 3-3-4 grouping, so
// 6541003238 appears as 654 100 3238. See
// https://www.datadictionary.nhs.uk/attributes/nhs_number.html
package nhs

import (
	"heidi/pkg/number"
)

// Number is a validated NHS Number. The zero value is not valid; construct
// through New, FromDigits, Parse, ParseUint or Lottery.
type Number struct {
	n number.Number
}

// New builds an NHS Number from the nine significant digits, computing the
// check digit. Prefer Parse or FromDigits when you hold a full number.
func New(digits [9]number.Digit) (Number, error) {
	n, err := number.New(digits)
	if err != nil {
		return Number{}, err
	}
	return Number{n: n}, nil
}

// FromDigits builds an NHS Number from a full ten-digit sequence, verifying
// the supplied check digit.
func FromDigits(digits [10]number.Digit) (Number, error) {
	n, err := number.FromDigits(digits)
	if err != nil {
		return Number{}, err
	}
	return Number{n: n}, nil
}

// Parse converts a ten-digit string into an NHS Number. Whitespace is
// tolerated, so the official "654 100 3238" form parses cleanly.
func Parse(s string) (Number, error) {
	n, err := number.Parse(s)
	if err != nil {
		return Number{}, err
	}
	return Number{n: n}, nil
}

// ParseUint converts an unsigned integer into an NHS Number.
func ParseUint(v uint64) (Number, error) {
	n, err := number.ParseUint(v)
	if err != nil {
		return Number{}, err
	}
	return Number{n: n}, nil
}

// Digits returns the nine significant digits.
func (n Number) Digits() [9]number.Digit {
	return n.n.Digits()
}

// CheckDigit returns the Modulus 11 check digit.
func (n Number) CheckDigit() number.Digit {
	return n.n.CheckDigit()
}

// String renders the compact ten-digit form.
func (n Number) String() string {
	return n.n.String()
}

// Official renders the 3-3-4 grouped form, e.g. "893 177 4583".
func (n Number) Official() string {
	c := n.n.String()
	return c[:3] + " " + c[3:6] + " " + c[6:]
}

// Display renders the number in the requested format.
func (n Number) Display(f number.Format) string {
	if f == number.FormatOfficial {
		return n.Official()
	}
	return n.String()
}

// MarshalText implements encoding.TextMarshaler using the compact form.
func (n Number) MarshalText() ([]byte, error) {
	return n.n.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (n *Number) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
