// Package number implements the digit-sequence core shared by every health
// identifier format: a ten-digit value made of nine significant digits plus
// a Modulus 11 check digit.
//
// A Number is a domain primitive in the parse-don't-validate style: the only
// way to obtain one is through a validating constructor, so holding a Number
// is proof that its check digit matches its digits. Values are immutable and
// comparable with ==.
//
// The formats built on top of this package (NHS, CHI) differ only in how the
// nine significant digits are interpreted, never in the checksum itself.
package number

import (
	"unicode"

	dErrors "heidi/pkg/domain-errors"
)

// Digit is a single decimal digit. Valid values are 0 through 9; the
// constructors reject anything else.
type Digit uint8

// Number is a validated identifier: nine significant digits, most
// significant first, plus the derived check digit.
type Number struct {
	digits     [9]Digit
	checkdigit Digit
}

// New builds a Number from the nine significant digits, computing the check
// digit. Prefer Parse or FromDigits when you hold a full ten-digit number.
//
// Errors: CodeFormat when a digit is outside [0,9]; CodeChecksumDomain when
// the digits have no representable Modulus 11 check digit.
func New(digits [9]Digit) (Number, error) {
	for _, d := range digits {
		if d > 9 {
			return Number{}, dErrors.Newf(dErrors.CodeFormat, "digit %d is not in range 0-9", d)
		}
	}
	check, err := checkDigit(digits)
	if err != nil {
		return Number{}, err
	}
	return Number{digits: digits, checkdigit: check}, nil
}

// FromDigits builds a Number from a full ten-digit sequence, verifying the
// supplied control digit against the computed one. This is how a known
// number is checked, as opposed to generated.
//
// Errors: everything New returns, plus CodeChecksumMismatch naming both the
// supplied and the computed digit.
func FromDigits(digits [10]Digit) (Number, error) {
	control := digits[9]
	if control > 9 {
		return Number{}, dErrors.Newf(dErrors.CodeFormat, "digit %d is not in range 0-9", control)
	}

	var significant [9]Digit
	copy(significant[:], digits[:9])

	n, err := New(significant)
	if err != nil {
		return Number{}, err
	}
	if n.checkdigit != control {
		return Number{}, dErrors.Newf(dErrors.CodeChecksumMismatch,
			"check digit %d does not match the computed check digit %d", control, n.checkdigit)
	}
	return n, nil
}

// Parse converts a ten-digit string into a Number. Whitespace is tolerated
// anywhere, so grouped display forms such as "893 177 4583" parse cleanly.
//
// Errors: CodeFormat for any non-digit, non-whitespace character; CodeLength
// when the digit count is not exactly ten; plus everything FromDigits
// returns.
func Parse(s string) (Number, error) {
	digits, err := SplitString(s)
	if err != nil {
		return Number{}, err
	}
	return FromDigits(digits)
}

// ParseUint converts an unsigned integer into a Number, left-padding to ten
// digits. The value 6541003238 parses identically to the string
// "6541003238".
//
// Errors: CodeMagnitude when the value needs more than ten decimal digits;
// plus everything FromDigits returns.
func ParseUint(v uint64) (Number, error) {
	digits, err := SplitUint(v)
	if err != nil {
		return Number{}, err
	}
	return FromDigits(digits)
}

// SplitString extracts exactly ten digits from a string, skipping
// whitespace. Formats that pre-validate the significant digits (CHI's date
// prefix) use this to inspect the raw digits before the checksum runs.
func SplitString(s string) ([10]Digit, error) {
	var digits [10]Digit
	count := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r < '0' || r > '9' {
			return digits, dErrors.Newf(dErrors.CodeFormat, "invalid character %q", r)
		}
		if count < len(digits) {
			digits[count] = Digit(r - '0')
		}
		count++
	}
	if count != len(digits) {
		return digits, dErrors.Newf(dErrors.CodeLength,
			"numbers must be ten digits long, got %d", count)
	}
	return digits, nil
}

// SplitUint decomposes an unsigned integer into ten digits, most significant
// first.
func SplitUint(v uint64) ([10]Digit, error) {
	var digits [10]Digit
	if v > 9_999_999_999 {
		return digits, dErrors.Newf(dErrors.CodeMagnitude, "%d has more than ten digits", v)
	}
	div := uint64(1_000_000_000)
	for i := range digits {
		digits[i] = Digit((v / div) % 10)
		div /= 10
	}
	return digits, nil
}

// Digits returns the nine significant digits, most significant first.
func (n Number) Digits() [9]Digit {
	return n.digits
}

// CheckDigit returns the derived Modulus 11 check digit.
func (n Number) CheckDigit() Digit {
	return n.checkdigit
}

// String renders the compact ten-digit form with no separators.
func (n Number) String() string {
	var buf [10]byte
	for i, d := range n.digits {
		buf[i] = '0' + byte(d)
	}
	buf[9] = '0' + byte(n.checkdigit)
	return string(buf[:])
}

// MarshalText implements encoding.TextMarshaler using the compact form.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
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

// checkDigit computes the Modulus 11 check digit: the nine digits are
// weighted 10 down to 2, summed, and reduced mod 11. A candidate of 11 maps
// to 0; a candidate of 10 is not representable, so those digit combinations
// are rejected and no real identifier carries them.
func checkDigit(digits [9]Digit) (Digit, error) {
	sum := 0
	for i, d := range digits {
		sum += int(d) * (10 - i)
	}
	candidate := 11 - sum%11
	switch {
	case candidate == 11:
		return 0, nil
	case candidate == 10:
		return 0, dErrors.New(dErrors.CodeChecksumDomain,
			"Modulus 11 numbers cannot have a check digit of 10")
	default:
		return Digit(candidate), nil
	}
}
