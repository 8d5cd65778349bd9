// internal/app/features/dashboard/subnav.go
package dashboard

import "github.com/dalemusser/wastewise/internal/app/system/viewdata"

// subNav is the Overview / My Household / Reports strip shown on the
// household-facing pages.
func subNav(path string) []viewdata.NavItem {
	items := []viewdata.NavItem{
		{Label: "Overview", Href: "/dashboard"},
		{Label: "My Household", Href: "/dashboard/household"},
		{Label: "Reports", Href: "/dashboard/reports"},
	}
	for i := range items {
		items[i].Active = items[i].Href == path
	}
	return items
}
