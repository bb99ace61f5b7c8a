// Package card classifies payment card numbers by issuer network and
// validates their structure, along with the associated security code and
// expiry date. It is a pure validation library: nothing here stores,
// transmits, or charges a card.
package card

import (
	"regexp"

	"github.com/pkg/errors"
)

// Failure categories surfaced by Check, mutually exclusive and reported
// in this order of precedence.
var (
	ErrTypeNotAllowed  = errors.New("card type not allowed")
	ErrPatternMismatch = errors.New("number does not match card type pattern")
	ErrLengthMismatch  = errors.New("number length not valid for card type")
	ErrLuhnFailed      = errors.New("luhn checksum failed")
)

var nonDigit = regexp.MustCompile(`\D`)

// Normalize strips every non-digit character from raw. Input with no
// digits at all normalizes to the empty string.
func Normalize(raw string) string {
	return nonDigit.ReplaceAllString(raw, "")
}

// Classify returns the issuer type of the first rule whose prefix
// pattern matches number, or the empty Type when no rule matches.
// Classification is prefix-only; it says nothing about length or
// checksum validity.
func Classify(number string) Type {
	for _, r := range Rules {
		if r.Pattern.MatchString(number) {
			return r.Type
		}
	}
	return ""
}

// Validate normalizes raw and checks it against the issuer catalog.
// With no allowed types any known issuer is acceptable; with exactly one
// the number is held to that issuer without reclassification; with
// several the classified issuer must be among them. Any failure yields
// the zero Result.
func Validate(raw string, allowed ...Type) Result {
	number, t, err := check(raw, allowed)
	if err != nil {
		return Result{}
	}
	return Result{Valid: true, Number: number, Type: t}
}

// Check performs the same checks as Validate but reports the first
// violated condition as one of ErrTypeNotAllowed, ErrPatternMismatch,
// ErrLengthMismatch or ErrLuhnFailed. A nil return means the number is
// valid.
func Check(raw string, allowed ...Type) error {
	_, _, err := check(raw, allowed)
	return err
}

func check(raw string, allowed []Type) (string, Type, error) {
	number := Normalize(raw)

	var t Type
	if len(allowed) == 1 {
		t = allowed[0]
	} else {
		t = Classify(number)
		if t == "" {
			return "", "", errors.Wrap(ErrTypeNotAllowed, "no issuer matches number")
		}
		if len(allowed) > 1 && !typeIn(t, allowed) {
			return "", "", errors.Wrapf(ErrTypeNotAllowed, "%s excluded by caller", t)
		}
	}

	rule, ok := RuleFor(t)
	if !ok {
		return "", "", errors.Wrapf(ErrTypeNotAllowed, "unknown card type %q", t)
	}
	if !rule.Pattern.MatchString(number) {
		return "", "", errors.Wrapf(ErrPatternMismatch, "number prefix not valid for %s", t)
	}
	if !lengthIn(len(number), rule.Lengths) {
		return "", "", errors.Wrapf(ErrLengthMismatch, "%d digits not valid for %s", len(number), t)
	}
	if rule.Luhn && !Luhn(number) {
		return "", "", errors.Wrapf(ErrLuhnFailed, "checksum invalid for %s", t)
	}
	return number, t, nil
}

func typeIn(t Type, set []Type) bool {
	for _, a := range set {
		if a == t {
			return true
		}
	}
	return false
}

func lengthIn(n int, set []int) bool {
	for _, l := range set {
		if l == n {
			return true
		}
	}
	return false
}

// Mask replaces the middle digits of a number with asterisks, keeping
// the six-digit IIN and the last four. Numbers too short to mask are
// returned unchanged. Safe for logs.
func Mask(number string) string {
	if len(number) <= 10 {
		return number
	}
	masked := make([]byte, len(number))
	copy(masked, number[:6])
	for i := 6; i < len(number)-4; i++ {
		masked[i] = '*'
	}
	copy(masked[len(number)-4:], number[len(number)-4:])
	return string(masked)
}
