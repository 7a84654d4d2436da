package articles

// Frontmatter is the authored YAML header of an article file.
type Frontmatter struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Slug        string `yaml:"slug"`
	Draft       bool   `yaml:"draft"`
}

// dateFormats are the accepted frontmatter date layouts, most specific first.
var dateFormats = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}
