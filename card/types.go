package card

import "regexp"

// Type identifies a card issuer network. The zero value means unknown.
type Type string

const (
	Amex               Type = "amex"
	Dankort            Type = "dankort"
	DinersClub         Type = "dinersclub"
	Discover           Type = "discover"
	Elo                Type = "elo"
	Forbrugsforeningen Type = "forbrugsforeningen"
	JCB                Type = "jcb"
	Maestro            Type = "maestro"
	MasterCard         Type = "mastercard"
	UnionPay           Type = "unionpay"
	Visa               Type = "visa"
	VisaElectron       Type = "visaelectron"
)

// Rule describes one issuer network: the IIN prefix pattern that
// identifies it, the digit counts a valid number may have, the digit
// counts its security code may have, and whether numbers must pass the
// Luhn checksum.
type Rule struct {
	Type       Type
	Pattern    *regexp.Regexp
	Lengths    []int
	CVCLengths []int
	Luhn       bool
}

// Result is the outcome of Validate. On failure every field is zero,
// never partially populated.
type Result struct {
	Valid  bool   `json:"valid"`
	Number string `json:"number"`
	Type   Type   `json:"type"`
}
