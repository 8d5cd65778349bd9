package htmlsanitize_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/dalemusser/wastewise/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if result := htmlsanitize.Sanitize(""); result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	if result := htmlsanitize.Sanitize("Hello, World!"); result != "Hello, World!" {
		t.Errorf("expected plain text unchanged, got %q", result)
	}
}

func TestSanitize_SafeHTML(t *testing.T) {
	input := "<p><strong>Bold</strong> and <em>italic</em></p>"
	if result := htmlsanitize.Sanitize(input); result != input {
		t.Errorf("expected safe HTML preserved, got %q", result)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	input := "<p>Hello</p><script>alert('xss')</script>"
	if result := htmlsanitize.Sanitize(input); result != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", result)
	}
}

func TestSanitize_RemovesOnclick(t *testing.T) {
	input := `<button onclick="alert('xss')">Click</button>`
	if result := htmlsanitize.Sanitize(input); strings.Contains(result, "onclick") {
		t.Errorf("expected onclick attribute to be removed, got %q", result)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	input := `<a href="javascript:alert('xss')">Click</a>`
	if result := htmlsanitize.Sanitize(input); strings.Contains(result, "javascript:") {
		t.Errorf("expected javascript: href to be removed, got %q", result)
	}
}

func TestSanitize_AllowsSafeLinks(t *testing.T) {
	input := `<a href="https://example.com">Link</a>`
	result := htmlsanitize.Sanitize(input)
	// bluemonday adds rel="nofollow"
	if !strings.Contains(result, "https://example.com") {
		t.Errorf("expected safe link preserved, got %q", result)
	}
}

func TestSanitize_KeepsClassAttribute(t *testing.T) {
	input := `<span class="font-semibold">Wet</span>`
	if result := htmlsanitize.Sanitize(input); result != input {
		t.Errorf("expected class preserved, got %q", result)
	}
}

func TestSanitize_AllowsLists(t *testing.T) {
	input := "<ul><li>Item 1</li><li>Item 2</li></ul>"
	if result := htmlsanitize.Sanitize(input); result != input {
		t.Errorf("expected list preserved, got %q", result)
	}
}

func TestSanitize_RemovesIframe(t *testing.T) {
	input := `<p>Content</p><iframe src="https://evil.com"></iframe>`
	result := htmlsanitize.Sanitize(input)
	if strings.Contains(result, "iframe") {
		t.Error("expected iframe to be removed")
	}
	if !strings.Contains(result, "Content") {
		t.Error("expected safe content to be preserved")
	}
}

func TestSanitizeToHTML_ReturnsTemplateHTML(t *testing.T) {
	var result template.HTML = htmlsanitize.SanitizeToHTML("<p>Test</p>")
	if result != "<p>Test</p>" {
		t.Errorf("got %q", result)
	}
}

func TestIsPlainText(t *testing.T) {
	cases := map[string]bool{
		"":              true,
		"Hello, World!": true,
		"5 < 10":        true,
		"5 > 3":         true,
		"<p>Hello</p>":  false,
		"a </b> c":      false,
	}
	for in, want := range cases {
		if got := htmlsanitize.IsPlainText(in); got != want {
			t.Errorf("IsPlainText(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPlainTextToHTML(t *testing.T) {
	if got := htmlsanitize.PlainTextToHTML("Line 1\nLine 2"); got != "Line 1<br>Line 2" {
		t.Errorf("newlines: got %q", got)
	}
	if got := htmlsanitize.PlainTextToHTML("A & B"); got != "A &amp; B" {
		t.Errorf("ampersand: got %q", got)
	}
	if got := htmlsanitize.PlainTextToHTML("<script>"); strings.Contains(string(got), "<script>") {
		t.Errorf("expected markup escaped, got %q", got)
	}
}

func TestPrepareForDisplay(t *testing.T) {
	if got := htmlsanitize.PrepareForDisplay("Hello"); got != "Hello" {
		t.Errorf("plain text: got %q", got)
	}
	if got := htmlsanitize.PrepareForDisplay("<p>Hello</p><script>x</script>"); got != "<p>Hello</p>" {
		t.Errorf("html: got %q", got)
	}
}
