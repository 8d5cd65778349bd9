// internal/app/features/faq/templates.go
package faq

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "faq",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
