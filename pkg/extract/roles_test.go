package extract

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(
		POSTable(map[string]POSData{
			"Noun":        {POS: "noun"},
			"Proper noun": {POS: "name"},
			"Suffix":      {POS: "suffix", Tags: []string{"morpheme"}},
		}),
		LinkageTable(map[string]string{"Synonyms": LinkSynonyms}),
		Titles(RoleEtymology, "Etymology"),
		Titles(RoleIgnore, "Suffix"),
	).WithPrefixes(LinkageTable(map[string]string{
		"derivad":  LinkDerived,
		"derivado": LinkRelated,
	}), "derivado", "derivad")

	tests := []struct {
		title string
		want  Role
	}{
		{"Noun", Role{Kind: RolePOS, POS: "noun"}},
		{"  proper   NOUN ", Role{Kind: RolePOS, POS: "name"}},
		{"=Synonyms=", Role{Kind: RoleLinkage, Linkage: LinkSynonyms}},
		{"Etymology 2", Role{Kind: RoleEtymology}},
		{"Etymology2", Role{Kind: RoleEtymology}},
		{"Suffix", Role{Kind: RoleIgnore}},
		{"Derivados", Role{Kind: RoleLinkage, Linkage: LinkRelated}},
		{"Derivadas", Role{Kind: RoleLinkage, Linkage: LinkDerived}},
		{"Unknown heading", Role{}},
		{"", Role{}},
		{"2", Role{}},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := c.Classify(tt.title); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.title, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{" Noun ", "noun"},
		{"=== Verb ===", "verb"},
		{"發音：", "發音"},
		{"Морфологические  свойства", "морфологические свойства"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{Role{Kind: RolePOS, POS: "noun"}, "pos:noun"},
		{Role{Kind: RoleLinkage, Linkage: LinkSynonyms}, "linkage:synonyms"},
		{Role{Kind: RoleTranslations}, "translations"},
		{Role{}, "unknown"},
		{Role{Kind: RoleKind(99)}, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
