// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"

	"github.com/dalemusser/wastewise/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// NavItem is one entry of the site header navigation.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// navLinks is the header navigation, in display order.
var navLinks = []NavItem{
	{Label: "Home", Href: "/"},
	{Label: "Dashboard", Href: "/dashboard"},
	{Label: "Statistics", Href: "/statistics"},
	{Label: "Education", Href: "/education"},
	{Label: "FAQ", Href: "/faq"},
	{Label: "About", Href: "/about"},
}

// FooterText is shown at the bottom of every page.
const FooterText = "© 2026 WasteWise Municipal Waste Segregation System"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "Meta description", "/"),
//	}
type BaseVM struct {
	SiteName    string
	Title       string
	Description string
	Footer      string

	Nav         []NavItem
	BackURL     string
	CurrentPath string
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title, description, backDefault string) BaseVM {
	path := httpnav.CurrentPath(r)
	return BaseVM{
		SiteName:    models.SiteName,
		Title:       title,
		Description: description,
		Footer:      FooterText,
		Nav:         navFor(r.URL.Path),
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: path,
	}
}

// PageTitle returns "Title | WasteWise", or just the site name on the home page.
func (b BaseVM) PageTitle() string {
	if b.Title == "" {
		return b.SiteName
	}
	return b.Title + " | " + b.SiteName
}

// navFor marks the section containing path as active. "/" only matches
// itself; other entries match their whole subtree.
func navFor(path string) []NavItem {
	out := make([]NavItem, len(navLinks))
	copy(out, navLinks)
	for i := range out {
		href := out[i].Href
		if href == "/" {
			out[i].Active = path == "/"
			continue
		}
		out[i].Active = path == href || strings.HasPrefix(path, href+"/")
	}
	return out
}
