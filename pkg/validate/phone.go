package validate

import (
	"regexp"
	"strings"
)

var (
	phoneRe    = regexp.MustCompile(`^(254|0)[17]\d{8}$`)
	idNumberRe = regexp.MustCompile(`^\d{6,10}$`)
	mpesaRe    = regexp.MustCompile(`(?i)[A-Z]{2,}[0-9A-Z]+`)
	digitsRe   = regexp.MustCompile(`\D`)
)

// IsPhone reports whether s is a valid Kenyan mobile number
// (07XXXXXXXX, 01XXXXXXXX or the 254-prefixed equivalents).
func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// IsIDNumber reports whether s is a plausible national ID number.
func IsIDNumber(s string) bool {
	return idNumberRe.MatchString(s)
}

// FormatE164 normalizes a Kenyan phone number to +254XXXXXXXXX.
func FormatE164(s string) string {
	digits := digitsRe.ReplaceAllString(s, "")
	switch {
	case strings.HasPrefix(digits, "0"):
		return "+254" + digits[1:]
	case strings.HasPrefix(digits, "254"):
		return "+" + digits
	default:
		return "+254" + digits
	}
}

// ExtractTransactionCode pulls the M-Pesa receipt code out of a pasted
// confirmation message. Returns an empty string when no code is found.
func ExtractTransactionCode(message string) string {
	return strings.ToUpper(mpesaRe.FindString(message))
}

// LooksLikeMpesaMessage is a sanity check on pasted deposit evidence.
func LooksLikeMpesaMessage(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "confirmed") || strings.Contains(lower, "mpesa")
}
