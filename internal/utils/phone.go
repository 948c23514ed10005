package utils

import "strings"

// NormalizePhone strips formatting like "(11) 98765-4321" down to digits and
// prefixes the default country code when missing, so Twilio gets E.164.
func NormalizePhone(phone string) string {
	if phone == "" {
		return phone
	}

	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	cleaned := digits.String()

	if strings.HasPrefix(phone, "+") {
		return "+" + cleaned
	}
	// Brazilian local numbers are 10 or 11 digits (area code + subscriber).
	if len(cleaned) == 10 || len(cleaned) == 11 {
		return "+55" + cleaned
	}
	return "+" + cleaned
}
