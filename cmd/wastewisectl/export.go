package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/dalemusser/wastewise/internal/domain/models"
	"github.com/spf13/cobra"
)

// subjects are the IDs named by the --household, --collector, --officer
// and --ward flags.
type subjects struct {
	household string
	collector string
	officer   string
	ward      string
}

type authorityExport struct {
	Officer         models.AuthorityOfficer  `json:"officer"`
	LiveStats       models.AuthorityStats    `json:"live_stats"`
	WardPerformance []models.WardPerformance `json:"ward_performance"`
	RecentIssues    []models.Issue           `json:"recent_issues"`
}

type reportsExport struct {
	UserReports     []models.Report         `json:"user_reports"`
	CommunityIssues []models.CommunityIssue `json:"community_issues"`
}

// datasets maps each exportable name to its loader.
type loader func(ctx context.Context, src wastedata.Source, s subjects) (any, error)

var datasets = map[string]loader{
	"household": func(ctx context.Context, src wastedata.Source, s subjects) (any, error) {
		return src.Household(ctx, s.household)
	},
	"notifications": func(ctx context.Context, src wastedata.Source, s subjects) (any, error) {
		return src.Notifications(ctx, s.household)
	},
	"collector": func(ctx context.Context, src wastedata.Source, s subjects) (any, error) {
		return src.Collector(ctx, s.collector)
	},
	"validations": func(ctx context.Context, src wastedata.Source, s subjects) (any, error) {
		return src.PendingValidations(ctx, s.collector)
	},
	"authority": func(ctx context.Context, src wastedata.Source, s subjects) (any, error) {
		var out authorityExport
		var err error
		if out.Officer, err = src.Officer(ctx, s.officer); err != nil {
			return nil, err
		}
		if out.LiveStats, err = src.LiveStats(ctx, s.officer); err != nil {
			return nil, err
		}
		if out.WardPerformance, err = src.WardPerformance(ctx); err != nil {
			return nil, err
		}
		if out.RecentIssues, err = src.RecentIssues(ctx); err != nil {
			return nil, err
		}
		return out, nil
	},
	"reports": func(ctx context.Context, src wastedata.Source, s subjects) (any, error) {
		var out reportsExport
		var err error
		if out.UserReports, err = src.UserReports(ctx, s.household); err != nil {
			return nil, err
		}
		if out.CommunityIssues, err = src.CommunityIssues(ctx, s.ward); err != nil {
			return nil, err
		}
		return out, nil
	},
	"statistics": func(ctx context.Context, src wastedata.Source, _ subjects) (any, error) {
		return src.WardStatistics(ctx)
	},
	"leaderboard": func(ctx context.Context, src wastedata.Source, _ subjects) (any, error) {
		return src.Leaderboard(ctx)
	},
	"events": func(ctx context.Context, src wastedata.Source, _ subjects) (any, error) {
		return src.Events(ctx)
	},
}

var datasetNames = []string{
	"household", "notifications", "collector", "validations", "authority",
	"reports", "statistics", "leaderboard", "events",
}

func newExportCmd(opts *cliOptions) *cobra.Command {
	var s subjects
	cmd := &cobra.Command{
		Use:       "export <dataset>",
		Short:     "Print one dataset as indented JSON",
		Long:      "Prints one dataset from the configured source. Datasets: " + strings.Join(datasetNames, ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: datasetNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			load, ok := datasets[args[0]]
			if !ok {
				return fmt.Errorf("unknown dataset %q (want one of %s)", args[0], strings.Join(datasetNames, ", "))
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			src, release, err := opts.openSource(ctx)
			if err != nil {
				return err
			}
			defer release()

			v, err := load(ctx, src, s)
			if err != nil {
				return fmt.Errorf("export %s: %w", args[0], err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	}
	f := cmd.Flags()
	f.StringVar(&s.household, "household", wastedata.SampleHouseholdID, "Household ID")
	f.StringVar(&s.collector, "collector", wastedata.SampleCollectorID, "Collector ID")
	f.StringVar(&s.officer, "officer", wastedata.SampleOfficerID, "Officer ID")
	f.StringVar(&s.ward, "ward", wastedata.SampleWard, "Resident ward")
	return cmd
}
