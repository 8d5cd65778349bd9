// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for WasteWise.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: data_source, mongo_uri, etc.
//   - Environment variables: WASTEWISE_DATA_SOURCE, WASTEWISE_MONGO_URI, etc.
//   - Command-line flags: --data_source, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "data_source", Default: wastedata.SourceStatic, Desc: "Page data source: 'static' (built-in sample data) or 'mongo'"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (mongo data source only)"},
	{Name: "mongo_database", Default: "wastewise", Desc: "MongoDB database name"},
	{Name: "seed_sample_data", Default: true, Desc: "Seed empty MongoDB collections with the sample data at startup"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Preference cookie signing key (at least 32 characters)"},
	{Name: "session_name", Default: "wastewise-prefs", Desc: "Preference cookie name"},

	// Dashboard subjects
	{Name: "household_id", Default: wastedata.SampleHouseholdID, Desc: "Household shown on the household dashboard"},
	{Name: "collector_id", Default: wastedata.SampleCollectorID, Desc: "Collector shown on the collector dashboard"},
	{Name: "officer_id", Default: wastedata.SampleOfficerID, Desc: "Officer shown on the authority dashboard"},
	{Name: "resident_ward", Default: wastedata.SampleWard, Desc: "Ward whose community issues appear on the reports page"},

	// Regeneration
	{Name: "statistics_revalidate", Default: "5m", Desc: "Regeneration interval for /statistics"},
	{Name: "leaderboard_revalidate", Default: "10m", Desc: "Regeneration interval for /statistics/leaderboard"},
	{Name: "events_revalidate", Default: "1h", Desc: "Regeneration interval for /statistics/events"},
	{Name: "cache_sweep_interval", Default: "1m", Desc: "How often expired cached pages are evicted"},

	{Name: "load_timeout", Default: "5s", Desc: "Timeout for each page data loader"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// Precedence is flags > env (WAFFLE_* for core, WASTEWISE_* for app) >
// config files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "WASTEWISE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DataSource:     strings.ToLower(strings.TrimSpace(appValues.String("data_source"))),
		MongoURI:       appValues.String("mongo_uri"),
		MongoDatabase:  appValues.String("mongo_database"),
		SeedSampleData: appValues.Bool("seed_sample_data"),

		SessionKey:  appValues.String("session_key"),
		SessionName: appValues.String("session_name"),

		HouseholdID:  appValues.String("household_id"),
		CollectorID:  appValues.String("collector_id"),
		OfficerID:    appValues.String("officer_id"),
		ResidentWard: appValues.String("resident_ward"),

		StatisticsRevalidate:  appValues.Duration("statistics_revalidate", 5*time.Minute),
		LeaderboardRevalidate: appValues.Duration("leaderboard_revalidate", 10*time.Minute),
		EventsRevalidate:      appValues.Duration("events_revalidate", time.Hour),
		CacheSweepInterval:    appValues.Duration("cache_sweep_interval", time.Minute),

		LoadTimeout: appValues.Duration("load_timeout", 5*time.Second),
	}

	return coreCfg, appCfg, nil
}

var validate = validator.New()

// ValidateConfig rejects configurations that cannot start: an unknown data
// source, a malformed Mongo URI when Mongo is in use, a short session key,
// or a non-positive interval.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAppConfig(appCfg); err != nil {
		logger.Error("invalid app configuration", zap.Error(err))
		return err
	}
	return nil
}

func validateAppConfig(appCfg AppConfig) error {
	if err := validate.Struct(appCfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, describe(fe))
			}
			return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: %w", err)
	}

	if appCfg.DataSource == wastedata.SourceMongo {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			return fmt.Errorf("config: invalid MongoDB URI: %w", err)
		}
	}
	return nil
}

// describe turns a validator failure into the config key it came from.
func describe(fe validator.FieldError) string {
	key := configKey(fe.Field())
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be positive", key)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", key, fe.Param())
	case "required", "required_if":
		return fmt.Sprintf("%s is required", key)
	default:
		return fmt.Sprintf("%s failed %s", key, fe.Tag())
	}
}

var fieldKeys = map[string]string{
	"DataSource":            "data_source",
	"MongoDatabase":         "mongo_database",
	"SessionKey":            "session_key",
	"SessionName":           "session_name",
	"HouseholdID":           "household_id",
	"CollectorID":           "collector_id",
	"OfficerID":             "officer_id",
	"ResidentWard":          "resident_ward",
	"StatisticsRevalidate":  "statistics_revalidate",
	"LeaderboardRevalidate": "leaderboard_revalidate",
	"EventsRevalidate":      "events_revalidate",
	"CacheSweepInterval":    "cache_sweep_interval",
	"LoadTimeout":           "load_timeout",
}

func configKey(field string) string {
	if k, ok := fieldKeys[field]; ok {
		return k
	}
	return field
}
