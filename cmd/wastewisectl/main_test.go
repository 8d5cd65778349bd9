package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/dalemusser/wastewise/internal/domain/models"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--source", wastedata.SourceStatic}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExport_Household(t *testing.T) {
	out, err := run(t, "export", "household")
	if err != nil {
		t.Fatalf("export household: %v", err)
	}
	var h models.Household
	if err := json.Unmarshal([]byte(out), &h); err != nil {
		t.Fatalf("output is not a household: %v\n%s", err, out)
	}
	if h.ID != wastedata.SampleHouseholdID {
		t.Errorf("household id = %q, want %q", h.ID, wastedata.SampleHouseholdID)
	}
	if !strings.Contains(out, "\n  ") {
		t.Errorf("output should be indented:\n%s", out)
	}
}

func TestExport_EveryDatasetLoads(t *testing.T) {
	for _, name := range datasetNames {
		t.Run(name, func(t *testing.T) {
			if _, ok := datasets[name]; !ok {
				t.Fatalf("no loader for %s", name)
			}
			out, err := run(t, "export", name)
			if err != nil {
				t.Fatalf("export %s: %v", name, err)
			}
			if !json.Valid([]byte(out)) {
				t.Errorf("export %s: invalid JSON", name)
			}
		})
	}
}

func TestExport_LeaderboardStartsWithRankOne(t *testing.T) {
	out, err := run(t, "export", "leaderboard")
	if err != nil {
		t.Fatalf("export leaderboard: %v", err)
	}
	var lb models.Leaderboard
	if err := json.Unmarshal([]byte(out), &lb); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(lb.Households) == 0 || lb.Households[0].Rank != 1 || lb.Households[0].Badge != "🥇" {
		t.Errorf("first household leader = %+v", lb.Households)
	}
}

func TestExport_UnknownDataset(t *testing.T) {
	_, err := run(t, "export", "recycling")
	if err == nil || !strings.Contains(err.Error(), `unknown dataset "recycling"`) {
		t.Errorf("err = %v", err)
	}
}

func TestExport_UnknownHousehold(t *testing.T) {
	_, err := run(t, "export", "household", "--household", "HH-404")
	if err == nil || !strings.Contains(err.Error(), "export household") {
		t.Errorf("err = %v", err)
	}
}

func TestCheck_Static(t *testing.T) {
	out, err := run(t, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if strings.TrimSpace(out) != "static source ok" {
		t.Errorf("output = %q", out)
	}
}

func TestUnknownSource(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--source", "postgres", "check"})
	err := root.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), `unknown source "postgres"`) {
		t.Errorf("err = %v", err)
	}
}
