// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds WasteWise-specific configuration.
//
// WAFFLE's CoreConfig covers the framework settings (ports, TLS, logging,
// request limits). Everything here is application level: where the page
// data comes from, whose dashboards are shown, and how often the
// statistics pages are regenerated.
//
// Validation tags are checked by ValidateConfig.
type AppConfig struct {
	// Data source: "static" serves the built-in sample data, "mongo" reads
	// the same data set from MongoDB.
	DataSource     string `validate:"oneof=static mongo"`
	MongoURI       string
	MongoDatabase  string `validate:"required_if=DataSource mongo"`
	SeedSampleData bool   // seed empty collections at startup (mongo only)

	// Preference cookie (remembers the last dashboard opened).
	SessionKey  string `validate:"min=32"`
	SessionName string `validate:"required"`

	// Whose dashboards are rendered. There is no sign-in, so each dashboard
	// shows one configured subject.
	HouseholdID  string `validate:"required"`
	CollectorID  string `validate:"required"`
	OfficerID    string `validate:"required"`
	ResidentWard string `validate:"required"`

	// Regeneration intervals for the statistics pages.
	StatisticsRevalidate  time.Duration `validate:"gt=0"`
	LeaderboardRevalidate time.Duration `validate:"gt=0"`
	EventsRevalidate      time.Duration `validate:"gt=0"`
	CacheSweepInterval    time.Duration `validate:"gt=0"`

	// Per-loader timeout.
	LoadTimeout time.Duration `validate:"gt=0"`
}
