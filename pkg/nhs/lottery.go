package nhs

import (
	"crypto/rand"
	"fmt"
	"math/big"

	dErrors "heidi/pkg/domain-errors"
	"heidi/pkg/number"
)

// DigitSource yields decimal digits for the lottery. The only
// non-determinism in the package lives behind this interface so generation
// stays testable with a fixed sequence.
type DigitSource interface {
	Digit() (number.Digit, error)
}

// CryptoSource draws digits from crypto/rand. It is stateless, so every
// caller can hold its own value with no shared generator state.
type CryptoSource struct{}

var ten = big.NewInt(10)

// Digit returns a uniformly distributed digit in [0,9].
func (CryptoSource) Digit() (number.Digit, error) {
	n, err := rand.Int(rand.Reader, ten)
	if err != nil {
		return 0, err
	}
	return number.Digit(n.Int64()), nil
}

// maxDraws bounds the lottery retry loop. Each draw misses with probability
// 1/11, so exhausting the bound means the digit source is broken, not that
// we were unlucky.
const maxDraws = 64

// Lottery returns a random valid NHS Number. Draws whose nine digits have no
// representable Modulus 11 check digit are discarded and redrawn.
func Lottery(src DigitSource) (Number, error) {
	var lastErr error
	for attempt := 0; attempt < maxDraws; attempt++ {
		var digits [9]number.Digit
		for i := range digits {
			d, err := src.Digit()
			if err != nil {
				return Number{}, fmt.Errorf("draw digit: %w", err)
			}
			digits[i] = d
		}

		n, err := New(digits)
		if err == nil {
			return n, nil
		}
		if !dErrors.HasCode(err, dErrors.CodeChecksumDomain) {
			return Number{}, err
		}
		lastErr = err
	}
	return Number{}, fmt.Errorf("no valid number after %d draws: %w", maxDraws, lastErr)
}
