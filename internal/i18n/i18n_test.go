package i18n

import "testing"

func TestTranslate(t *testing.T) {
	if got := T(LangVI, "per_day"); got != "mỗi ngày" {
		t.Errorf("vi per_day = %q", got)
	}
	if got := T(LangEN, "per_day"); got != "per day" {
		t.Errorf("en per_day = %q", got)
	}
	// Unknown language falls back to English.
	if got := T("fr", "per_day"); got != "per day" {
		t.Errorf("fallback = %q", got)
	}
	// Unknown keys echo back.
	if got := T(LangEN, "no_such_key"); got != "no_such_key" {
		t.Errorf("echo = %q", got)
	}
}

func TestEveryKeyExistsInBothLanguages(t *testing.T) {
	for key := range translations[LangEN] {
		if _, ok := translations[LangVI][key]; !ok {
			t.Errorf("key %q missing in vi", key)
		}
	}
	for key := range translations[LangVI] {
		if _, ok := translations[LangEN][key]; !ok {
			t.Errorf("key %q missing in en", key)
		}
	}
}
