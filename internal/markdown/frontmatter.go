package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// CaseStudyMeta is the YAML frontmatter of a case study file.
type CaseStudyMeta struct {
	Title            string   `yaml:"title"`
	Slug             string   `yaml:"slug"`
	Subtitle         string   `yaml:"subtitle"`
	ShortDescription string   `yaml:"short_description"`
	Category         string   `yaml:"category"`
	Tags             []string `yaml:"tags"`
	Image            string   `yaml:"image"`
	Images           []string `yaml:"images"`
	Location         string   `yaml:"location"`
	Area             string   `yaml:"area"`
	Year             string   `yaml:"year"`
	Architects       string   `yaml:"architects"`
	PhotoCredits     string   `yaml:"photo_credits"`
	ConceptHeading   string   `yaml:"concept_heading"`
	ConceptCaption   string   `yaml:"concept_caption"`
	ConceptQuote     string   `yaml:"concept_quote"`
	Featured         bool     `yaml:"featured"`
	Draft            bool     `yaml:"draft"`

	Custom map[string]any `yaml:",inline"`
}

// ParseCaseStudy extracts the frontmatter and the Markdown body from source.
func ParseCaseStudy(source []byte) (CaseStudyMeta, []byte, error) {
	var meta CaseStudyMeta

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return CaseStudyMeta{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	meta.Title = strings.TrimSpace(meta.Title)
	meta.Slug = strings.TrimSpace(meta.Slug)
	return meta, body, nil
}
