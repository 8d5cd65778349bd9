// internal/app/features/faq/faq.go
package faq

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/dalemusser/wastewise/internal/app/system/htmlsanitize"
	"gopkg.in/yaml.v3"
)

//go:embed faq.yaml
var faqYAML []byte

type entryDoc struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Entry is one question with its display-ready answer.
type Entry struct {
	Question string
	Answer   template.HTML
}

func parseEntries(raw []byte) ([]Entry, error) {
	var docs []entryDoc
	if err := yaml.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("parse faq: %w", err)
	}
	out := make([]Entry, 0, len(docs))
	for i, d := range docs {
		q := strings.TrimSpace(d.Question)
		if q == "" {
			return nil, fmt.Errorf("parse faq: entry %d has no question", i)
		}
		out = append(out, Entry{
			Question: q,
			Answer:   htmlsanitize.PrepareForDisplay(strings.TrimSpace(d.Answer)),
		})
	}
	return out, nil
}
