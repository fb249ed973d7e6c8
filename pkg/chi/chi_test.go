package chi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "heidi/pkg/domain-errors"
	"heidi/pkg/number"
)

func TestParse(t *testing.T) {
	t.Run("accepts a valid number", func(t *testing.T) {
		// Born 25 November.
		n, err := Parse("2511473232")
		require.NoError(t, err)
		assert.Equal(t, number.Digit(2), n.CheckDigit())
	})

	t.Run("tolerates whitespace", func(t *testing.T) {
		spaced, err := Parse("2511 47 3232")
		require.NoError(t, err)
		compact, err := Parse("2511473232")
		require.NoError(t, err)
		assert.Equal(t, compact, spaced)
	})

	t.Run("rejects a wrong check digit", func(t *testing.T) {
		_, err := Parse("2511473233")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeChecksumMismatch))
	})
}

func TestNew_DateBounds(t *testing.T) {
	cases := []struct {
		name   string
		digits [9]number.Digit
	}{
		{"day zero", [9]number.Digit{0, 0, 1, 1, 9, 9, 0, 0, 1}},
		{"day over 31", [9]number.Digit{3, 2, 0, 1, 9, 9, 0, 0, 1}},
		{"month zero", [9]number.Digit{0, 1, 0, 0, 9, 9, 0, 0, 1}},
		{"month over 12", [9]number.Digit{0, 1, 1, 3, 9, 9, 0, 0, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.digits)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeDateRange))
		})
	}
}

func TestNew_BoundaryDatesAccepted(t *testing.T) {
	// Naive bounds only: 31 February passes because month lengths are not
	// checked.
	_, err := New([9]number.Digit{3, 1, 0, 2, 9, 9, 0, 0, 1})
	require.NoError(t, err)

	_, err = New([9]number.Digit{0, 1, 0, 1, 9, 9, 0, 0, 1})
	require.NoError(t, err)
}

func TestParse_DateErrorBeforeChecksum(t *testing.T) {
	// Day 32 with a check digit that is also wrong: the date error wins.
	_, err := Parse("3201990010")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeDateRange))
}

func TestFromDigits(t *testing.T) {
	t.Run("accepts matching check digit", func(t *testing.T) {
		n, err := FromDigits([10]number.Digit{0, 1, 0, 1, 9, 9, 0, 0, 1, 4})
		require.NoError(t, err)
		assert.Equal(t, number.Digit(4), n.CheckDigit())
	})

	t.Run("runs the date check first", func(t *testing.T) {
		_, err := FromDigits([10]number.Digit{3, 2, 0, 1, 9, 9, 0, 0, 1, 0})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeDateRange))
	})
}

func TestParseUint(t *testing.T) {
	t.Run("matches string parsing", func(t *testing.T) {
		fromInt, err := ParseUint(2511473232)
		require.NoError(t, err)
		fromString, err := Parse("2511473232")
		require.NoError(t, err)
		assert.Equal(t, fromString, fromInt)
	})

	t.Run("left-pads to recover the date prefix", func(t *testing.T) {
		n, err := ParseUint(101990014)
		require.NoError(t, err)
		assert.Equal(t, "0101990014", n.String())
	})

	t.Run("rejects values over ten digits", func(t *testing.T) {
		_, err := ParseUint(25_114_732_320)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeMagnitude))
	})
}

func TestString_RoundTrip(t *testing.T) {
	n, err := Parse("2511473232")
	require.NoError(t, err)
	assert.Equal(t, "2511473232", n.String())

	again, err := Parse(n.String())
	require.NoError(t, err)
	assert.Equal(t, n, again)
}

func TestTextMarshaling(t *testing.T) {
	n, err := Parse("0101990014")
	require.NoError(t, err)

	text, err := n.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0101990014", string(text))

	var decoded Number
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, n, decoded)
}
