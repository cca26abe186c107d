package cache

// Keyer generates cache keys. Implementations must be deterministic: equal
// inputs produce equal keys.
type Keyer interface {
	// ExtractKey returns the key of the extraction result of one page.
	ExtractKey(edition, title, bodyHash string, opts ExtractKeyOpts) string
}

// ExtractKeyOpts are the extraction options that change the result.
type ExtractKeyOpts struct {
	Languages     []string `json:"languages,omitempty"`
	Pronunciation bool     `json:"pronunciation"`
	Translations  bool     `json:"translations"`
	Linkages      bool     `json:"linkages"`
	Etymologies   bool     `json:"etymologies"`
	Examples      bool     `json:"examples"`

	// Version invalidates results produced by older extractor builds.
	Version string `json:"version,omitempty"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard Keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ExtractKey returns "extract:<edition>:<sha256>" where the hash covers the
// title, the body hash and the options.
func (DefaultKeyer) ExtractKey(edition, title, bodyHash string, opts ExtractKeyOpts) string {
	return hashKey("extract:"+edition, title, bodyHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = DefaultKeyer{}
