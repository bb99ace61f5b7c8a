package card

import "regexp"

var allDigits = regexp.MustCompile(`^\d+$`)

// ValidCVC reports whether cvc is a plausible security code for the
// given issuer type: digits only, with a digit count the issuer accepts.
// Unknown types are rejected.
func ValidCVC(cvc string, t Type) bool {
	if !allDigits.MatchString(cvc) {
		return false
	}
	rule, ok := RuleFor(t)
	if !ok {
		return false
	}
	return lengthIn(len(cvc), rule.CVCLengths)
}
