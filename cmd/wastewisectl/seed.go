package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/dalemusser/wastewise/internal/app/system/indexes"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeedCmd(opts *cliOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create indexes and load the sample data into MongoDB",
		Long: `Creates the WasteWise indexes and writes the built-in sample data into
every empty collection. Collections that already hold documents are left
alone unless --force is given, in which case they are emptied first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			client, db, err := opts.connect(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := client.Disconnect(context.Background()); err != nil {
					opts.log.Warn("disconnect mongo", zap.Error(err))
				}
			}()

			if err := indexes.EnsureAll(ctx, db); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}
			res, err := wastedata.Seed(ctx, db, time.Now(), force)
			if err != nil {
				return err
			}
			opts.log.Info("seed complete", zap.String("database", opts.database), zap.Bool("force", force))
			printSeedResult(cmd, res)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Empty populated collections and re-seed them")
	return cmd
}

func printSeedResult(cmd *cobra.Command, res wastedata.SeedResult) {
	out := cmd.OutOrStdout()
	names := make([]string, 0, len(res.Inserted))
	for name := range res.Inserted {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "seeded   %-22s %d\n", name, res.Inserted[name])
	}
	for _, name := range res.Skipped {
		fmt.Fprintf(out, "skipped  %-22s (not empty)\n", name)
	}
}
