package card

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		name      string
		number    string
		wantValid bool
		wantBrand Brand
		wantErrs  []string
	}{
		{"valid visa", "4242424242424242", true, BrandVisa, nil},
		{"valid amex", "378282246310005", true, BrandAmex, nil},
		{"empty is incomplete", "", false, BrandNone, nil},
		{"short is incomplete not wrong", "4242", false, BrandVisa, nil},
		{"twelve digits still incomplete", "424242424242", false, BrandVisa, nil},
		{"luhn failure", "4242424242424241", false, BrandVisa, []string{"Invalid card number"}},
		{"amex below min length", "37828224631000", false, BrandAmex, []string{"Invalid card number"}},
		{"amex past its only length", "3782822463100052", false, BrandAmex, []string{"Invalid card number length"}},
		{"visa at 14 digits", "42424242424242", false, BrandVisa, []string{"Invalid card number length"}},
		{"unknown brand valid checksum", "9999999999999995", true, BrandUnknown, nil},
		{"with separators", "4242 4242 4242 4242", true, BrandVisa, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateNumber(tt.number)
			assert.Equal(t, tt.wantValid, res.Valid)
			assert.Equal(t, tt.wantBrand, res.Brand)
			assert.Equal(t, tt.wantErrs, res.Errors)
		})
	}
}

func TestValidateExpiry(t *testing.T) {
	// Pin the clock to June 2026 so the boundaries are deterministic.
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		month     string
		year      string
		wantValid bool
		wantErrs  []string
	}{
		{"current month is valid", "06", "26", true, nil},
		{"future month same year", "12", "26", true, nil},
		{"next year", "01", "27", true, nil},
		{"ten years out is valid", "06", "36", true, nil},
		{"past year", "06", "25", false, []string{"Card has expired"}},
		{"past month same year", "05", "26", false, []string{"Card has expired"}},
		{"eleven years out", "06", "37", false, []string{"Expiry date too far in future"}},
		{"month zero", "00", "26", false, []string{"Invalid expiration month"}},
		{"month thirteen", "13", "26", false, []string{"Invalid expiration month"}},
		{"single digit month is incomplete", "6", "26", false, nil},
		{"single digit year is incomplete", "06", "2", false, nil},
		{"empty is incomplete", "", "", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validateExpiryAt(tt.month, tt.year, now)
			assert.Equal(t, tt.wantValid, res.Valid)
			assert.Equal(t, tt.wantErrs, res.Errors)
		})
	}
}

func TestValidateExpiryAgainstWallClock(t *testing.T) {
	now := time.Now()
	month := fmt.Sprintf("%02d", int(now.Month()))
	year := fmt.Sprintf("%02d", now.Year()%100)
	assert.True(t, ValidateExpiry(month, year).Valid)
}

func TestValidateCVC(t *testing.T) {
	tests := []struct {
		name      string
		cvc       string
		brand     Brand
		wantValid bool
		wantErrs  []string
	}{
		{"three digits default", "123", BrandVisa, true, nil},
		{"three digits no brand", "123", BrandNone, true, nil},
		{"four digits amex", "1234", BrandAmex, true, nil},
		{"three digits amex is incomplete", "123", BrandAmex, false, nil},
		{"empty is incomplete", "", BrandVisa, false, nil},
		{"partial is incomplete", "1", BrandVisa, false, nil},
		{"too long", "1234", BrandVisa, false, []string{"CVC must be 3 digits"}},
		{"too long amex", "12345", BrandAmex, false, []string{"CVC must be 4 digits"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateCVC(tt.cvc, tt.brand)
			assert.Equal(t, tt.wantValid, res.Valid)
			assert.Equal(t, tt.wantErrs, res.Errors)
		})
	}
}

func TestValidatePostalCode(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		locale    string
		wantValid bool
		wantErrs  []string
	}{
		{"us five digits", "12345", "en-US", true, nil},
		{"us zip+4", "12345-6789", "en-US", true, nil},
		{"us four digits", "1234", "en-US", false, []string{"Invalid ZIP code"}},
		{"us letters", "ABCDE", "en-US", false, []string{"Invalid ZIP code"}},
		{"gb postcode", "SW1A 1AA", "en-GB", true, nil},
		{"gb compact", "M1 1AE", "en-GB", true, nil},
		{"gb rejected when long enough", "12345", "en-GB", false, []string{"Invalid postcode"}},
		{"other locale accepts alphanumeric", "75008", "fr-FR", true, nil},
		{"other locale too short", "ab", "fr-FR", false, []string{"Invalid postal code"}},
		{"other locale bad characters", "75008!", "fr-FR", false, []string{"Invalid postal code"}},
		{"empty is incomplete", "", "en-US", false, nil},
		{"whitespace only is incomplete", "   ", "en-US", false, nil},
		{"locale variants share rules", "12345", "en-US-POSIX", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidatePostalCode(tt.code, tt.locale)
			assert.Equal(t, tt.wantValid, res.Valid)
			assert.Equal(t, tt.wantErrs, res.Errors)
		})
	}
}
