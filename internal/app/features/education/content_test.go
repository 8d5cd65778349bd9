package education

import (
	"strings"
	"testing"
)

func TestParseContent_Embedded(t *testing.T) {
	c, err := parseContent(contentYAML)
	if err != nil {
		t.Fatalf("parseContent: %v", err)
	}

	wantTypes := []string{"Wet Waste", "Dry Waste", "Hazardous Waste"}
	if len(c.Categories) != len(wantTypes) {
		t.Fatalf("got %d categories, want %d", len(c.Categories), len(wantTypes))
	}
	for i, cat := range c.Categories {
		if cat.Type != wantTypes[i] {
			t.Errorf("category %d = %q, want %q", i, cat.Type, wantTypes[i])
		}
		if len(cat.Items) != 5 {
			t.Errorf("%s has %d items, want 5", cat.Type, len(cat.Items))
		}
		if cat.CardClass == defaultCardClass {
			t.Errorf("%s fell back to the default card colour", cat.Type)
		}
	}
	if len(c.Practices) != 6 {
		t.Errorf("got %d practices, want 6", len(c.Practices))
	}
	if !strings.HasPrefix(string(c.Intro), "Proper waste segregation at source") {
		t.Errorf("intro = %q", c.Intro)
	}
}

func TestParseContent_SanitizesMarkup(t *testing.T) {
	raw := []byte(`
intro: '<p onclick="x()">Sort <b>before</b> disposal</p><script>alert(1)</script>'
categories:
  - type: Wet Waste
    color: teal
practices:
  - '<a href="javascript:alert(1)">bad</a> Keep bins apart'
`)
	c, err := parseContent(raw)
	if err != nil {
		t.Fatalf("parseContent: %v", err)
	}
	intro := string(c.Intro)
	if strings.Contains(intro, "script") || strings.Contains(intro, "onclick") {
		t.Errorf("intro not sanitized: %q", intro)
	}
	if !strings.Contains(intro, "<b>before</b>") {
		t.Errorf("intro lost safe markup: %q", intro)
	}
	if strings.Contains(string(c.Practices[0]), "javascript:") {
		t.Errorf("practice not sanitized: %q", c.Practices[0])
	}
	if c.Categories[0].CardClass != defaultCardClass {
		t.Errorf("unknown colour should use the default card class, got %q", c.Categories[0].CardClass)
	}
}

func TestParseContent_Errors(t *testing.T) {
	if _, err := parseContent([]byte("intro: [unclosed")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
	if _, err := parseContent([]byte("intro: hello\n")); err == nil {
		t.Error("expected an error when no categories are defined")
	}
}
