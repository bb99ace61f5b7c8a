package card

import (
	"regexp"
	"strconv"
	"time"
)

// timeNow is swapped out in tests to pin the current month.
var timeNow = time.Now

var expiryYear = regexp.MustCompile(`^20\d{2}$`)

// ValidExpiry reports whether the year/month pair is a well-formed
// expiry date that has not already passed. month may be one or two
// digits and is left-padded; year must be a four-digit 20xx value. A
// card expiring in the current month is still valid. The wall clock is
// read on every call.
func ValidExpiry(year, month string) bool {
	if len(month) == 1 {
		month = "0" + month
	}
	if !expiryYear.MatchString(year) {
		return false
	}
	if len(month) != 2 || !allDigits.MatchString(month) {
		return false
	}
	m, _ := strconv.Atoi(month)
	if m < 1 || m > 12 {
		return false
	}
	y, _ := strconv.Atoi(year)

	now := timeNow()
	if y < now.Year() {
		return false
	}
	if y == now.Year() && m < int(now.Month()) {
		return false
	}
	return true
}
