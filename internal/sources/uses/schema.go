package uses

// File represents the top-level structure of uses.yaml.
// Entries are a flat ordered list; grouping happens in the domain layer
// so declaration order survives the round trip.
type File struct {
	Items []EntryProps `yaml:"items"`
}

// EntryProps contains the authored properties of a single entry.
type EntryProps struct {
	Title       string `yaml:"title"`
	Category    string `yaml:"category"`
	Href        string `yaml:"href,omitempty"`
	Description string `yaml:"description,omitempty"`
}
