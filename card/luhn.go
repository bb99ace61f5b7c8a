package card

// Luhn reports whether digits passes the mod-10 checksum. Starting from
// the rightmost digit, every second digit is doubled (subtracting 9 when
// the double exceeds 9) and the total must be divisible by 10. Which
// positions double follows from the string length, so odd and even
// lengths are handled uniformly. The empty string and any non-digit
// character fail.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
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
