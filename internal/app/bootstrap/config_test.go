package bootstrap

import (
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
)

func validConfig() AppConfig {
	return AppConfig{
		DataSource:            wastedata.SourceStatic,
		MongoURI:              "mongodb://localhost:27017",
		MongoDatabase:         "wastewise",
		SessionKey:            "0123456789abcdef0123456789abcdef",
		SessionName:           "wastewise-prefs",
		HouseholdID:           wastedata.SampleHouseholdID,
		CollectorID:           wastedata.SampleCollectorID,
		OfficerID:             wastedata.SampleOfficerID,
		ResidentWard:          wastedata.SampleWard,
		StatisticsRevalidate:  5 * time.Minute,
		LeaderboardRevalidate: 10 * time.Minute,
		EventsRevalidate:      time.Hour,
		CacheSweepInterval:    time.Minute,
		LoadTimeout:           5 * time.Second,
	}
}

func TestValidateAppConfig_AcceptsDefaults(t *testing.T) {
	if err := validateAppConfig(validConfig()); err != nil {
		t.Fatalf("validateAppConfig: %v", err)
	}

	cfg := validConfig()
	cfg.DataSource = wastedata.SourceMongo
	if err := validateAppConfig(cfg); err != nil {
		t.Fatalf("mongo source: %v", err)
	}
}

func TestValidateAppConfig_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AppConfig)
		want   string
	}{
		{"unknown source", func(c *AppConfig) { c.DataSource = "postgres" }, `data_source must be one of [static mongo], got "postgres"`},
		{"zero interval", func(c *AppConfig) { c.LeaderboardRevalidate = 0 }, "leaderboard_revalidate must be positive"},
		{"negative interval", func(c *AppConfig) { c.EventsRevalidate = -time.Second }, "events_revalidate must be positive"},
		{"short session key", func(c *AppConfig) { c.SessionKey = "short" }, "session_key must be at least 32 characters"},
		{"missing household", func(c *AppConfig) { c.HouseholdID = "" }, "household_id is required"},
		{"mongo without database", func(c *AppConfig) {
			c.DataSource = wastedata.SourceMongo
			c.MongoDatabase = ""
		}, "mongo_database is required"},
		{"mongo with bad uri", func(c *AppConfig) {
			c.DataSource = wastedata.SourceMongo
			c.MongoURI = "localhost:27017"
		}, "invalid MongoDB URI"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := validateAppConfig(cfg)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestValidateAppConfig_StaticIgnoresMongoURI(t *testing.T) {
	cfg := validConfig()
	cfg.MongoURI = "not a uri"
	if err := validateAppConfig(cfg); err != nil {
		t.Errorf("static source should not check the Mongo URI: %v", err)
	}
}

func TestValidateAppConfig_ReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.StatisticsRevalidate = 0
	cfg.LoadTimeout = 0
	err := validateAppConfig(cfg)
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, key := range []string{"statistics_revalidate", "load_timeout"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}
