// Package card holds the card-input core: digit formatting, brand
// classification and per-field validation. Everything here is a pure
// function over strings; callers own all state.
package card

import "regexp"

// Brand identifies the network a card number belongs to.
type Brand string

const (
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandAmex       Brand = "amex"
	BrandDiscover   Brand = "discover"
	// BrandUnknown means enough digits were present but no prefix rule matched.
	BrandUnknown Brand = "unknown"
	// BrandNone means too few digits were present to classify at all.
	BrandNone Brand = ""
)

// brandSpec keeps everything brand-conditional in one table: the issuer
// prefix pattern, the number lengths the network issues and the CVC length.
type brandSpec struct {
	brand   Brand
	pattern *regexp.Regexp
	lengths []int
	cvcLen  int
}

var brandSpecs = []brandSpec{
	{BrandVisa, regexp.MustCompile(`^4`), []int{13, 16, 19}, 3},
	{BrandMastercard, regexp.MustCompile(`^5[1-5]|^2[2-7]`), []int{16}, 3},
	{BrandAmex, regexp.MustCompile(`^3[47]`), []int{15}, 4},
	{BrandDiscover, regexp.MustCompile(`^6(?:011|5)`), []int{16}, 3},
}

// DetectBrand classifies a number by its issuer prefix. Fewer than four
// digits return BrandNone; a digit string no rule matches returns
// BrandUnknown. The prefix rules are disjoint, so match order carries no
// meaning beyond picking the single applicable one.
func DetectBrand(number string) Brand {
	digits := DigitsOnly(number)
	if len(digits) < 4 {
		return BrandNone
	}
	for _, spec := range brandSpecs {
		if spec.pattern.MatchString(digits) {
			return spec.brand
		}
	}
	return BrandUnknown
}

func specFor(brand Brand) (brandSpec, bool) {
	for _, spec := range brandSpecs {
		if spec.brand == brand {
			return spec, true
		}
	}
	return brandSpec{}, false
}

// CVCLength returns the security-code length the brand requires: 4 for
// Amex, 3 for everything else including unknown brands.
func CVCLength(brand Brand) int {
	if spec, ok := specFor(brand); ok {
		return spec.cvcLen
	}
	return 3
}

// IsAmex is a convenience for the formatting helpers, which only care
// about the Amex/non-Amex split.
func IsAmex(brand Brand) bool {
	return brand == BrandAmex
}
