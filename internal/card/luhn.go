package card

// Issuers use 13 to 19 digit account numbers; anything outside that range
// fails the checksum outright.
const (
	minNumberDigits = 13
	maxNumberDigits = 19
)

// LuhnValid reports whether a digit string passes the mod-10 checksum.
// Every second digit from the right is doubled, digits above 9 drop by 9,
// and the total must divide by 10.
func LuhnValid(number string) bool {
	digits := DigitsOnly(number)
	if len(digits) < minNumberDigits || len(digits) > maxNumberDigits {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}
