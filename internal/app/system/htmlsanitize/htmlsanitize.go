// Package htmlsanitize cleans authored HTML before it is marked safe for
// templates. Page copy (FAQ answers, education notes) goes through here.
package htmlsanitize

import (
	"html"
	"html/template"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("mark", "u", "s")
		p.AllowAttrs("class").Globally()
		policy = p
	})
	return policy
}

// Sanitize strips scripts, event handlers, unsafe URLs and unknown
// elements, keeping ordinary formatting.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return getPolicy().Sanitize(s)
}

// SanitizeToHTML sanitizes s and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

var tagPattern = regexp.MustCompile(`<[a-zA-Z/!]`)

// IsPlainText reports whether s contains no markup. A bare "<" or ">" used
// as a comparison does not count as markup.
func IsPlainText(s string) bool {
	return !tagPattern.MatchString(s)
}

// PlainTextToHTML escapes s and turns newlines into <br>.
func PlainTextToHTML(s string) template.HTML {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// PrepareForDisplay accepts either plain text or HTML and returns something
// safe to render.
func PrepareForDisplay(s string) template.HTML {
	if IsPlainText(s) {
		return PlainTextToHTML(s)
	}
	return SanitizeToHTML(s)
}
