package extract

import "slices"

// Config selects which parts of a page are extracted.
type Config struct {
	// Languages restricts extraction to these language codes. Empty means
	// every language.
	Languages []string `json:"languages,omitempty" toml:"languages"`

	Pronunciation bool `json:"pronunciation" toml:"pronunciation"`
	Translations  bool `json:"translations" toml:"translations"`
	Linkages      bool `json:"linkages" toml:"linkages"`
	Etymologies   bool `json:"etymologies" toml:"etymologies"`
	Examples      bool `json:"examples" toml:"examples"`
}

// DefaultConfig captures everything for every language.
func DefaultConfig() Config {
	return Config{
		Pronunciation: true,
		Translations:  true,
		Linkages:      true,
		Etymologies:   true,
		Examples:      true,
	}
}

// CapturesLanguage reports whether entries for code should be extracted.
func (c Config) CapturesLanguage(code string) bool {
	return len(c.Languages) == 0 || slices.Contains(c.Languages, code)
}

// captures reports whether a role is enabled. Disabled roles are treated
// as known sections without payload.
func (c Config) captures(k RoleKind) bool {
	switch k {
	case RolePronunciation:
		return c.Pronunciation
	case RoleTranslations:
		return c.Translations
	case RoleLinkage:
		return c.Linkages
	case RoleEtymology:
		return c.Etymologies
	}
	return true
}
