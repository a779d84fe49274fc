package card

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// maxExpiryYears bounds how far in the future an expiry may sit.
const maxExpiryYears = 10

// Result is the outcome of validating the card number field. Valid false
// with an empty Errors slice means the field is incomplete rather than
// wrong; callers show no message for incomplete fields.
type Result struct {
	Valid  bool
	Brand  Brand
	Errors []string
}

// FieldResult is the outcome for the fields that carry no brand. The same
// incomplete-versus-invalid convention applies.
type FieldResult struct {
	Valid  bool
	Errors []string
}

// ValidateNumber checks a raw card-number string: brand-specific length
// when the brand is known, then the Luhn checksum once enough digits are
// present. Below 13 digits the field stays incomplete regardless.
func ValidateNumber(number string) Result {
	digits := DigitsOnly(number)
	if digits == "" {
		return Result{}
	}

	brand := DetectBrand(number)
	var errs []string
	if spec, ok := specFor(brand); ok {
		if !containsInt(spec.lengths, len(digits)) && len(digits) >= minInt(spec.lengths) {
			errs = append(errs, "Invalid card number length")
		}
	}
	if len(digits) >= minNumberDigits && !LuhnValid(digits) {
		errs = append(errs, "Invalid card number")
	}
	if len(digits) < minNumberDigits {
		// Still typing; length alone is not an error yet.
		return Result{Brand: brand}
	}

	return Result{
		Valid:  len(errs) == 0 && LuhnValid(digits),
		Brand:  brand,
		Errors: errs,
	}
}

// ValidateExpiry checks an MM / YY pair against the calendar. Both parts
// must be exactly two characters before the field is judged at all. The
// two-digit year is taken relative to the year 2000.
func ValidateExpiry(month, year string) FieldResult {
	return validateExpiryAt(month, year, time.Now())
}

func validateExpiryAt(month, year string, now time.Time) FieldResult {
	if len(month) != 2 || len(year) != 2 {
		return FieldResult{}
	}

	var errs []string
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		errs = append(errs, "Invalid expiration month")
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		// Non-numeric years never survive the expiry formatter; treat
		// the field as not yet complete.
		return FieldResult{}
	}

	fullYear := 2000 + y
	switch {
	case fullYear < now.Year():
		errs = append(errs, "Card has expired")
	case fullYear > now.Year()+maxExpiryYears:
		errs = append(errs, "Expiry date too far in future")
	}
	if len(errs) == 0 && y == now.Year()%100 && m < int(now.Month()) {
		errs = append(errs, "Card has expired")
	}

	return FieldResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateCVC checks a security code against the brand's required length.
// Too few digits is incomplete; too many is an error, even though the
// formatter normally truncates before it can happen.
func ValidateCVC(cvc string, brand Brand) FieldResult {
	digits := DigitsOnly(cvc)
	required := CVCLength(brand)
	if len(digits) < required {
		return FieldResult{}
	}
	if len(digits) > required {
		return FieldResult{Errors: []string{fmt.Sprintf("CVC must be %d digits", required)}}
	}
	return FieldResult{Valid: true}
}

// postalRule maps a locale prefix to its postal-code check. Adding a
// locale means adding a row, not a branch.
type postalRule struct {
	localePrefix string
	check        func(code string) []string
}

var (
	zipPattern           = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	ukPostcodePattern    = regexp.MustCompile(`(?i)^[A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2}$`)
	genericPostalPattern = regexp.MustCompile(`^[0-9a-zA-Z\s\-]{3,10}$`)
)

var postalRules = []postalRule{
	{"en-US", func(code string) []string {
		if !zipPattern.MatchString(code) {
			return []string{"Invalid ZIP code"}
		}
		return nil
	}},
	{"en-GB", func(code string) []string {
		// UK postcodes only get judged once long enough to look like one.
		if len(code) >= 5 && !ukPostcodePattern.MatchString(code) {
			return []string{"Invalid postcode"}
		}
		return nil
	}},
}

// ValidatePostalCode checks a postal code under the rules of the given
// locale. Locales without a dedicated rule fall back to a permissive
// 3-10 character alphanumeric check.
func ValidatePostalCode(code, locale string) FieldResult {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return FieldResult{}
	}

	for _, rule := range postalRules {
		if strings.HasPrefix(locale, rule.localePrefix) {
			errs := rule.check(trimmed)
			return FieldResult{Valid: len(errs) == 0, Errors: errs}
		}
	}

	if !genericPostalPattern.MatchString(trimmed) {
		return FieldResult{Errors: []string{"Invalid postal code"}}
	}
	return FieldResult{Valid: true}
}

func containsInt(values []int, v int) bool {
	for _, n := range values {
		if n == v {
			return true
		}
	}
	return false
}

func minInt(values []int) int {
	m := values[0]
	for _, n := range values[1:] {
		if n < m {
			m = n
		}
	}
	return m
}
