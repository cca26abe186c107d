package errors

import (
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid latin", "cat", false},
		{"valid cyrillic", "кошка", false},
		{"valid cjk", "太陽風", false},
		{"valid with space", "ice cream", false},
		{"valid subpage", "cat/translations", false},
		{"valid apostrophe", "o'clock", false},

		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", MaxTitleLength+1), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"template braces", "{{foo}}", true},
		{"link brackets", "[[foo]]", true},
		{"pipe", "foo|bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidTitle) {
				t.Errorf("ValidateTitle(%q) code = %v", tt.input, GetCode(err))
			}
		})
	}
}

func TestValidateEdition(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"zh", false},
		{"ru", false},
		{"yue", false},
		{"simple", false},
		{"zh-min-nan", false},

		{"", true},
		{"ZH", true},
		{"z", true},
		{"../zh", true},
		{"zh ", true},
	}

	for _, tt := range tests {
		err := ValidateEdition(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEdition(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateLanguageCodes(t *testing.T) {
	if err := ValidateLanguageCodes([]string{"en", "zh", "mul"}); err != nil {
		t.Errorf("valid codes rejected: %v", err)
	}
	if err := ValidateLanguageCodes(nil); err != nil {
		t.Errorf("empty filter rejected: %v", err)
	}
	for _, bad := range [][]string{{""}, {"en", "z h"}} {
		if err := ValidateLanguageCodes(bad); !Is(err, ErrCodeInvalidConfig) {
			t.Errorf("ValidateLanguageCodes(%q) = %v, want INVALID_CONFIG", bad, err)
		}
	}
}

func TestValidateStoreURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		schemes []string
		wantErr bool
	}{
		{"mongo", "mongodb://localhost:27017", []string{"mongodb", "mongodb+srv"}, false},
		{"mongo srv", "mongodb+srv://cluster.example.org", []string{"mongodb", "mongodb+srv"}, false},
		{"redis", "redis://localhost:6379/0", []string{"redis", "rediss"}, false},

		{"empty", "", []string{"redis"}, true},
		{"wrong scheme", "http://localhost", []string{"redis"}, true},
		{"no scheme", "localhost:6379", []string{"redis"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStoreURI(tt.uri, tt.schemes...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStoreURI(%q) error = %v, wantErr %v", tt.uri, err, tt.wantErr)
			}
		})
	}
}
