// internal/app/features/education/content.go
package education

import (
	_ "embed"
	"fmt"
	"html/template"

	"github.com/dalemusser/wastewise/internal/app/system/htmlsanitize"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

type categoryDoc struct {
	Type        string   `yaml:"type"`
	Emoji       string   `yaml:"emoji"`
	Color       string   `yaml:"color"`
	Description string   `yaml:"description"`
	Items       []string `yaml:"items"`
}

type contentDoc struct {
	Intro      string        `yaml:"intro"`
	Categories []categoryDoc `yaml:"categories"`
	Practices  []string      `yaml:"practices"`
}

// wasteCard is one category card as the template renders it.
type wasteCard struct {
	Type        string
	Emoji       string
	CardClass   string
	Description string
	Items       []string
}

type content struct {
	Intro      template.HTML
	Categories []wasteCard
	Practices  []template.HTML
}

var cardClasses = map[string]string{
	"green": "bg-green-100 dark:bg-green-900/30 border-green-300 dark:border-green-700",
	"blue":  "bg-blue-100 dark:bg-blue-900/30 border-blue-300 dark:border-blue-700",
	"red":   "bg-red-100 dark:bg-red-900/30 border-red-300 dark:border-red-700",
}

const defaultCardClass = "bg-zinc-100 dark:bg-zinc-800 border-zinc-300 dark:border-zinc-700"

func cardClass(color string) string {
	if c, ok := cardClasses[color]; ok {
		return c
	}
	return defaultCardClass
}

// parseContent decodes the education copy and prepares it for display.
func parseContent(raw []byte) (content, error) {
	var doc contentDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return content{}, fmt.Errorf("parse education content: %w", err)
	}
	if len(doc.Categories) == 0 {
		return content{}, fmt.Errorf("parse education content: no waste categories")
	}

	c := content{
		Intro:      htmlsanitize.PrepareForDisplay(doc.Intro),
		Categories: make([]wasteCard, 0, len(doc.Categories)),
		Practices:  make([]template.HTML, 0, len(doc.Practices)),
	}
	for _, cat := range doc.Categories {
		c.Categories = append(c.Categories, wasteCard{
			Type:        cat.Type,
			Emoji:       cat.Emoji,
			CardClass:   cardClass(cat.Color),
			Description: cat.Description,
			Items:       cat.Items,
		})
	}
	for _, p := range doc.Practices {
		c.Practices = append(c.Practices, htmlsanitize.SanitizeToHTML(p))
	}
	return c, nil
}
