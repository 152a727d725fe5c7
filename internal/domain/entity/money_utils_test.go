package entity

import (
	"testing"

	errs "github.com/tonsuimining/platform/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestValidateAndConvertAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{"1234567.89", 123456789},
			{"0.00", 0},
			{"0", 0},
			{" 25.00 ", 2500},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ValidateAndConvertAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input     string
			errorType error
		}{
			{"", errs.ErrInvalidAmount},
			{"  ", errs.ErrInvalidAmount},
			{"-10.00", errs.ErrNegativeAmount},
			{"10.123", errs.ErrInvalidAmount},
			{"10.00.00", errs.ErrInvalidAmount},
			{"abc", errs.ErrInvalidAmount},
			{"$100.00", errs.ErrInvalidAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				_, err := ValidateAndConvertAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		_, err := ValidateAndConvertAmount("99999999999999999999.99")
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}

func TestValidatePositiveAmount(t *testing.T) {
	t.Run("Positive amount passes", func(t *testing.T) {
		cents, err := ValidatePositiveAmount("10.50")
		assert.NoError(t, err)
		assert.Equal(t, int64(1050), cents)
	})

	t.Run("Zero is rejected", func(t *testing.T) {
		_, err := ValidatePositiveAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Negative is rejected", func(t *testing.T) {
		_, err := ValidatePositiveAmount("-5.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestAmountInCentsToString(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{1015, "10.15"},
		{1000, "10.00"},
		{1, "0.01"},
		{10, "0.10"},
		{0, "0.00"},
		{-1050, "-10.50"},
		{123456789, "1234567.89"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, AmountInCentsToString(tc.cents))
		})
	}
}

func TestEnsureTwoDecimalPlaces(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"10", "10.00"},
		{"10.1", "10.10"},
		{"10.15", "10.15"},
		{"10.156", "10.15"},
		{"10.", "10.00"},
		{"", "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, EnsureTwoDecimalPlaces(tc.input))
		})
	}
}
