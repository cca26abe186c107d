package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// RoleKind is the closed set of meanings a section heading can have.
type RoleKind int

const (
	// RoleUnknown marks a heading without a table entry.
	RoleUnknown RoleKind = iota
	RolePOS
	RolePronunciation
	RoleEtymology
	RoleTranslations
	RoleLinkage
	RoleMorphology
	RoleSemantic
	RoleGloss
	RoleRomanization
	RoleRelated
	RolePhrases
	RoleInflection
	// RoleIgnore marks a known heading that carries nothing to extract.
	RoleIgnore
)

var roleNames = [...]string{
	RoleUnknown:       "unknown",
	RolePOS:           "pos",
	RolePronunciation: "pronunciation",
	RoleEtymology:     "etymology",
	RoleTranslations:  "translations",
	RoleLinkage:       "linkage",
	RoleMorphology:    "morphology",
	RoleSemantic:      "semantic",
	RoleGloss:         "gloss",
	RoleRomanization:  "romanization",
	RoleRelated:       "related",
	RolePhrases:       "phrases",
	RoleInflection:    "inflection",
	RoleIgnore:        "ignore",
}

func (k RoleKind) String() string {
	if int(k) < len(roleNames) {
		return roleNames[k]
	}
	return "unknown"
}

// Role is the classification of one heading.
type Role struct {
	Kind RoleKind
	// POS and Tags are set for RolePOS.
	POS  string
	Tags []string
	// Linkage is the linkage list name for RoleLinkage.
	Linkage string
}

// String renders the role for outlines and logs.
func (r Role) String() string {
	switch r.Kind {
	case RolePOS:
		return "pos:" + r.POS
	case RoleLinkage:
		return "linkage:" + r.Linkage
	}
	return r.Kind.String()
}

// POSData is a part of speech with the tags its heading implies.
type POSData struct {
	POS  string
	Tags []string
}

// RoleTable maps normalized titles to roles.
type RoleTable map[string]Role

// POSTable builds part-of-speech roles.
func POSTable(m map[string]POSData) RoleTable {
	t := make(RoleTable, len(m))
	for title, d := range m {
		t[title] = Role{Kind: RolePOS, POS: d.POS, Tags: d.Tags}
	}
	return t
}

// LinkageTable builds linkage roles from title -> linkage kind.
func LinkageTable(m map[string]string) RoleTable {
	t := make(RoleTable, len(m))
	for title, kind := range m {
		t[title] = Role{Kind: RoleLinkage, Linkage: kind}
	}
	return t
}

// Titles assigns one role kind to several titles.
func Titles(kind RoleKind, titles ...string) RoleTable {
	t := make(RoleTable, len(titles))
	for _, title := range titles {
		t[title] = Role{Kind: kind}
	}
	return t
}

// Classifier resolves heading titles to roles. It is built once from
// static tables and is read-only afterwards.
type Classifier struct {
	exact    map[string]Role
	prefixes []prefixRole
}

type prefixRole struct {
	prefix string
	role   Role
}

// NewClassifier merges tables; later tables win on conflicts.
func NewClassifier(tables ...RoleTable) *Classifier {
	c := &Classifier{exact: map[string]Role{}}
	for _, t := range tables {
		for title, role := range t {
			c.exact[Normalize(title)] = role
		}
	}
	return c
}

// WithPrefixes adds roles matched when a normalized title starts with the
// given prefix. Prefixes are tried in the order given, after exact matches.
func (c *Classifier) WithPrefixes(t RoleTable, order ...string) *Classifier {
	for _, p := range order {
		if role, ok := t[p]; ok {
			c.prefixes = append(c.prefixes, prefixRole{prefix: Normalize(p), role: role})
		}
	}
	return c
}

// Classify returns the role of a title. Titles with a trailing number
// ("Etymology 2") fall back to the title without it.
func (c *Classifier) Classify(title string) Role {
	title = Normalize(title)
	if title == "" {
		return Role{}
	}
	if r, ok := c.exact[title]; ok {
		return r
	}
	if trimmed := strings.TrimRightFunc(title, func(r rune) bool {
		return unicode.IsDigit(r) || unicode.IsSpace(r)
	}); trimmed != title && trimmed != "" {
		if r, ok := c.exact[trimmed]; ok {
			return r
		}
	}
	for _, p := range c.prefixes {
		if strings.HasPrefix(title, p.prefix) {
			return p.role
		}
	}
	return Role{}
}

// Normalize case-folds a title and trims whitespace and decoration.
func Normalize(title string) string {
	title = strings.TrimSpace(title)
	title = strings.Trim(title, "=:：　 ")
	return cases.Fold().String(strings.Join(strings.Fields(title), " "))
}
