// internal/domain/models/site.go
package models

// SiteName is shown in the header of every page.
const SiteName = "WasteWise"
