package booking

import (
	"strings"

	"github.com/vochicuongg/mrleetravel/internal/domain"
)

// Digit-length rules for known country codes, number part only (after
// the code). Codes outside this set fall back to the generic ITU check.
var intlDigitRules = map[string][]int{
	"84": {9},      // Vietnam
	"1":  {10},     // US/Canada
	"44": {10},     // UK
	"49": {10, 11}, // Germany
	"33": {9},      // France
	"61": {9},      // Australia
	"7":  {10},     // Russia/Kazakhstan
	"81": {10},     // Japan
	"82": {9, 10},  // South Korea
	"86": {11},     // China
}

const (
	localTrunkDigit  = '0'
	localPhoneDigits = 10
	ituMinDigits     = 8
	ituMaxDigits     = 15
)

// ValidatePhone checks a customer phone number. Local numbers need the
// leading trunk digit and an exact length; +-prefixed numbers follow
// country-code-specific rules where known, else the ITU E.164 range.
// Each sub-type yields its own message so the UI can explain the reject.
func ValidatePhone(raw string) error {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.ValidationError{Field: "phone", Msg: "số điện thoại không được để trống"}
	}

	intl := strings.HasPrefix(s, "+")
	digits := keepDigits(s)

	if intl {
		return validateInternational(digits)
	}
	if len(digits) != len(s)-countSeparators(s) {
		// anything that is neither digits nor separators
		return domain.ValidationError{Field: "phone", Msg: "số điện thoại chứa ký tự không hợp lệ"}
	}
	if len(digits) != localPhoneDigits || digits[0] != localTrunkDigit {
		return domain.ValidationError{Field: "phone", Msg: "số nội địa phải bắt đầu bằng 0 và đủ 10 chữ số"}
	}
	return nil
}

func validateInternational(digits string) error {
	for code, lengths := range intlDigitRules {
		if !strings.HasPrefix(digits, code) {
			continue
		}
		rest := len(digits) - len(code)
		for _, want := range lengths {
			if rest == want {
				return nil
			}
		}
		return domain.ValidationError{
			Field: "phone",
			Msg:   "số quốc tế +" + code + " không đúng độ dài",
		}
	}
	if len(digits) < ituMinDigits || len(digits) > ituMaxDigits {
		return domain.ValidationError{Field: "phone", Msg: "số quốc tế phải có 8-15 chữ số"}
	}
	return nil
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func countSeparators(s string) int {
	n := 0
	for _, r := range s {
		switch r {
		case ' ', '-', '.', '(', ')':
			n++
		}
	}
	return n
}
