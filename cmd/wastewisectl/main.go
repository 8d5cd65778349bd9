// Command wastewisectl is the operator CLI for WasteWise: it seeds a MongoDB
// database with the sample data, prints datasets as JSON, and checks that
// the configured data source is reachable.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type cliOptions struct {
	source   string
	mongoURI string
	database string
	timeout  time.Duration
	verbose  bool

	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "wastewisectl",
		Short:         "Operate a WasteWise deployment",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.verbose {
				return nil
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			opts.log = logger
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.source, "source", envOr("WASTEWISE_DATA_SOURCE", wastedata.SourceStatic), "Data source: static or mongo")
	flags.StringVar(&opts.mongoURI, "mongo-uri", envOr("WASTEWISE_MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
	flags.StringVar(&opts.database, "database", envOr("WASTEWISE_MONGO_DATABASE", "wastewise"), "MongoDB database name")
	flags.DurationVar(&opts.timeout, "timeout", time.Minute, "Operation timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newSeedCmd(opts), newExportCmd(opts), newCheckCmd(opts))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// connect opens the configured database. The caller disconnects the client.
func (o *cliOptions) connect(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(o.mongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	return client, client.Database(o.database), nil
}

// openSource returns the data source named by --source and a function that
// releases it.
func (o *cliOptions) openSource(ctx context.Context) (wastedata.Source, func(), error) {
	switch o.source {
	case wastedata.SourceStatic:
		return wastedata.NewStatic(time.Now), func() {}, nil
	case wastedata.SourceMongo:
		client, db, err := o.connect(ctx)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				o.log.Warn("disconnect mongo", zap.Error(err))
			}
		}
		return wastedata.NewMongo(db, time.Now), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown source %q (want static or mongo)", o.source)
	}
}
