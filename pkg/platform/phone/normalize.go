// Package phone normalises respondent telephone numbers.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the region assumed for numbers written without a country code.
const DefaultRegion = "GB"

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, DefaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

// IsUKMobile reports whether input parses as a valid UK mobile number,
// the only kind that can receive an SMS fulfilment.
func IsUKMobile(input string) bool {
	number, err := phonenumbers.Parse(strings.TrimSpace(input), DefaultRegion)
	if err != nil || !phonenumbers.IsValidNumberForRegion(number, DefaultRegion) {
		return false
	}
	return phonenumbers.GetNumberType(number) == phonenumbers.MOBILE
}
