// Package chi implements the CHI Number (Community Health Index), the
// patient identifier for Scotland.
//
// A CHI Number is ten digits long. The first six digits are the date of
// birth as DDMMYY, digits seven to nine are random (the ninth encodes sex by
// parity), and the tenth is a Modulus 11 check digit. See
// https://www.ndc.scot.nhs.uk/Data-Dictionary/SMR-Datasets/Patient-Identification-and-Demographic-Information/Community-Health-Index-Number/
//
// The date prefix is checked before the checksum on every construction path,
// so a day of 32 reports a date error even when the check digit is also
// wrong. The check is deliberately naive: it bounds day to 1-31 and month to
// 1-12 with no month lengths or leap years.
package chi

import (
	dErrors "heidi/pkg/domain-errors"
	"heidi/pkg/number"
)

// Number is a validated CHI Number. The zero value is not valid; construct
// through New, FromDigits, Parse or ParseUint.
type Number struct {
	n number.Number
}

// New builds a CHI Number from the nine significant digits, computing the
// check digit. Prefer Parse or FromDigits when you hold a full number.
func New(digits [9]number.Digit) (Number, error) {
	if err := validateDate(digits); err != nil {
		return Number{}, err
	}
	n, err := number.New(digits)
	if err != nil {
		return Number{}, err
	}
	return Number{n: n}, nil
}

// FromDigits builds a CHI Number from a full ten-digit sequence, verifying
// the supplied check digit.
func FromDigits(digits [10]number.Digit) (Number, error) {
	var significant [9]number.Digit
	copy(significant[:], digits[:9])
	if err := validateDate(significant); err != nil {
		return Number{}, err
	}
	n, err := number.FromDigits(digits)
	if err != nil {
		return Number{}, err
	}
	return Number{n: n}, nil
}

// Parse converts a ten-digit string into a CHI Number. Whitespace is
// tolerated.
func Parse(s string) (Number, error) {
	digits, err := number.SplitString(s)
	if err != nil {
		return Number{}, err
	}
	return FromDigits(digits)
}

// ParseUint converts an unsigned integer into a CHI Number.
func ParseUint(v uint64) (Number, error) {
	digits, err := number.SplitUint(v)
	if err != nil {
		return Number{}, err
	}
	return FromDigits(digits)
}

// Digits returns the nine significant digits.
func (n Number) Digits() [9]number.Digit {
	return n.n.Digits()
}

// CheckDigit returns the Modulus 11 check digit.
func (n Number) CheckDigit() number.Digit {
	return n.n.CheckDigit()
}

// String renders the compact ten-digit form. CHI Numbers have no grouped
// display form.
func (n Number) String() string {
	return n.n.String()
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

// validateDate bounds the DDMM prefix. Naive by design: no month lengths,
// no leap years.
func validateDate(digits [9]number.Digit) error {
	day := int(digits[0])*10 + int(digits[1])
	month := int(digits[2])*10 + int(digits[3])

	if day == 0 || day > 31 || month == 0 || month > 12 {
		return dErrors.Newf(dErrors.CodeDateRange,
			"date of birth prefix %02d%02d is out of range", day, month)
	}
	return nil
}
