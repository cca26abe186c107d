package langcodes

import (
	"reflect"
	"testing"
)

func TestName(t *testing.T) {
	tests := []struct {
		code, edition, want string
	}{
		{"af", "es", "afrikáans"},
		{"de", "es", "alemán"},
		{"hy", "es", "armenio"},
		{"en", "zh", "英語"},
		{"ru", "ru", "русский"},
		{" en ", "ja", "英語"},
		{"de", "de", "Deutsch"},
		{"xx", "es", ""},
		{"en", "nope", ""},
	}
	for _, tt := range tests {
		if got := Name(tt.code, tt.edition); got != tt.want {
			t.Errorf("Name(%q, %q) = %q, want %q", tt.code, tt.edition, got, tt.want)
		}
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name, edition, want string
	}{
		{"英语", "zh", "en"},
		{"英語", "zh", "en"},
		{"希伯来语", "zh", "he"},
		{"阿布哈茲語", "zh", "ab"},
		{"西里尔字母", "zh", ""},
		{"Alemán", "es", "de"},
		{"Français", "fr", "fr"},
		{"Английский", "ru", "en"},
		{"neugriechisch", "de", "el"},
		{"", "es", ""},
	}
	for _, tt := range tests {
		if got := Code(tt.name, tt.edition); got != tt.want {
			t.Errorf("Code(%q, %q) = %q, want %q", tt.name, tt.edition, got, tt.want)
		}
	}
}

func TestEditions(t *testing.T) {
	want := []string{"de", "es", "fr", "ja", "ru", "zh"}
	if got := Editions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Editions() = %v, want %v", got, want)
	}
	if !Supported("zh") || Supported("xx") {
		t.Error("Supported() mismatch")
	}
}
