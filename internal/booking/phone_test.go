package booking

import (
	"testing"

	"github.com/vochicuongg/mrleetravel/internal/domain"
)

func TestValidatePhoneLocal(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"0913690974", true},
		{"091 369 0974", true},
		{"091-369-0974", true},
		{"091369097", false},    // 9 digits
		{"09136909741", false},  // 11 digits
		{"9136909740", false},   // missing trunk 0
		{"0913a90974", false},   // stray letter
		{"", false},
		{"   ", false},
	}
	for _, tc := range cases {
		err := ValidatePhone(tc.in)
		if tc.ok && err != nil {
			t.Errorf("%q: unexpected reject: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%q: should have been rejected", tc.in)
		}
		if !tc.ok && err != nil && !domain.IsValidation(err) {
			t.Errorf("%q: error %T, want validation", tc.in, err)
		}
	}
}

func TestValidatePhoneInternational(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"+84913690974", true},   // VN: 9 after code
		{"+84 91 369 0974", true},
		{"+849136909", false},    // VN: 8 after code
		{"+12125550123", true},   // US: 10 after code
		{"+1212555012", false},
		{"+49151234567890", false}, // DE: 12 after code
		{"+491512345678", true},    // DE: 10 after code
		{"+8613812345678", true},  // CN: 11 after code
		{"+995322123456", true},   // unknown code, 12 digits: ITU ok
		{"+9953221", false},       // unknown code, 7 digits: too short
		{"+9953221234567890", false}, // 16 digits: too long
	}
	for _, tc := range cases {
		err := ValidatePhone(tc.in)
		if tc.ok && err != nil {
			t.Errorf("%q: unexpected reject: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%q: should have been rejected", tc.in)
		}
	}
}
