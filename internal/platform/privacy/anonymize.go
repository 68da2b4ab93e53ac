// Package privacy masks personal data before it reaches logs.
package privacy

import (
	"fmt"
	"net"
	"strings"
	"unicode"
)

// AnonymizeIP keeps the /24 (IPv4) or /48 (IPv6) network of an address.
// Empty input yields "unknown" and unparseable input yields "invalid".
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "invalid"
	}
	if v4 := parsed.To4(); v4 != nil {
		return fmt.Sprintf("%d.%d.%d.0", v4[0], v4[1], v4[2])
	}
	return parsed.Mask(net.CIDRMask(48, 128)).String()
}

// MaskTelNo replaces every digit but the last three with '*'.
// Separators and a leading '+' are kept so the shape of the number stays readable.
func MaskTelNo(telNo string) string {
	digits := 0
	for _, r := range telNo {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(telNo))
	seen := 0
	for _, r := range telNo {
		if !unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		seen++
		if seen > digits-3 {
			b.WriteRune(r)
		} else {
			b.WriteByte('*')
		}
	}
	return b.String()
}
