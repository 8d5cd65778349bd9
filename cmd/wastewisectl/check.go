package main

import (
	"context"
	"fmt"

	"github.com/dalemusser/wastewise/internal/app/system/timeouts"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Ping the configured data source",
		Long:  "Exits with status 1 when the configured data source cannot be reached.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			src, release, err := opts.openSource(ctx)
			if err != nil {
				return err
			}
			defer release()

			pingCtx, cancelPing := context.WithTimeout(ctx, timeouts.Ping())
			defer cancelPing()
			if err := src.Ping(pingCtx); err != nil {
				opts.log.Error("data source unreachable", zap.String("source", src.Name()), zap.Error(err))
				return fmt.Errorf("%s source unhealthy: %w", src.Name(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s source ok\n", src.Name())
			return nil
		},
	}
}
