package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxTitleLength is the longest page title accepted, in bytes. MediaWiki
// limits titles to 255 bytes; subpage titles built from a title and a
// suffix may be longer.
const MaxTitleLength = 512

// ValidateTitle validates a page title received from a user or a request.
//
// The validation rules are intentionally conservative:
//   - No empty or whitespace-only titles
//   - No control characters
//   - No null bytes
//   - Maximum length of MaxTitleLength bytes
//
// Titles may contain slashes: translation subpages are named "word/translations".
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return New(ErrCodeInvalidTitle, "title cannot be empty")
	}

	if len(title) > MaxTitleLength {
		return New(ErrCodeInvalidTitle, "title too long (max %d bytes)", MaxTitleLength)
	}

	// Check for control characters and null bytes
	for _, r := range title {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidTitle, "title contains invalid control characters")
		}
	}

	if strings.ContainsAny(title, "[]{}|<>") {
		return New(ErrCodeInvalidTitle, "title contains characters not allowed in page names")
	}

	return nil
}

// editionRegex matches wiktionary edition codes ("zh", "ru", "simple").
var editionRegex = regexp.MustCompile(`^[a-z]{2,3}(-[a-z]+)*$|^simple$`)

// ValidateEdition checks the shape of an edition code. Whether the edition
// is supported is decided by the extractor registry.
func ValidateEdition(code string) error {
	if code == "" {
		return New(ErrCodeInvalidEdition, "edition cannot be empty")
	}
	if !editionRegex.MatchString(code) {
		return New(ErrCodeInvalidEdition, "invalid edition code: %q", code)
	}
	return nil
}

// ValidateLanguageCodes validates the language codes of a capture filter.
func ValidateLanguageCodes(codes []string) error {
	for _, c := range codes {
		if c == "" || strings.ContainsFunc(c, unicode.IsSpace) {
			return New(ErrCodeInvalidConfig, "invalid language code: %q", c)
		}
	}
	return nil
}

// ValidateStoreURI validates a backend connection string for safety.
// It ensures the URI has one of the given schemes.
func ValidateStoreURI(uri string, schemes ...string) error {
	if uri == "" {
		return New(ErrCodeInvalidConfig, "store URI cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	for _, s := range schemes {
		if strings.HasPrefix(uri, s+"://") {
			return nil
		}
	}
	return New(ErrCodeInvalidConfig, "store URI must use one of the schemes %s", strings.Join(schemes, ", "))
}
