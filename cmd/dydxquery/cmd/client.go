package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xiaolou86/dydx-v4-clients/config"
	"github.com/xiaolou86/dydx-v4-clients/metrics"
	"github.com/xiaolou86/dydx-v4-clients/querier"
	"github.com/xiaolou86/dydx-v4-clients/transport"
)

// queryFunc runs one query and returns the value to print.
type queryFunc func(ctx context.Context, q *querier.Querier, args []string) (any, error)

type client struct {
	querier *querier.Querier
	logger  *zap.Logger
	close   func() error
}

// newClient builds the transport selected by the config file, decorated
// with metrics and logging, and a querier on top of it.
func newClient(cfgFile string) (*client, *config.Config, error) {
	// get the config from the given file or the default file
	cfg, err := config.New(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	rootLogger, err := cfg.CreateLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	querierMetrics := metrics.NewQuerierMetrics()

	var (
		base    querier.Transport
		closeFn = func() error { return nil }
	)
	switch cfg.Node.Transport {
	case config.TransportComet:
		comet, err := transport.DialComet(cfg.Node.RPCAddr, cfg.Node.Timeout)
		if err != nil {
			return nil, nil, err
		}
		base = comet
	case config.TransportGRPC:
		opts := []transport.GRPCOption{
			transport.WithClientLogger(rootLogger),
			transport.WithClientMetrics(querierMetrics.GRPCClientMetrics),
		}
		if cfg.Node.GRPCInsecure {
			opts = append(opts, transport.WithInsecure())
		}
		grpcTransport, err := transport.DialGRPC(cfg.Node.GRPCAddr, opts...)
		if err != nil {
			return nil, nil, err
		}
		base = grpcTransport
		closeFn = grpcTransport.Close
	}

	if cfg.Metrics.Enabled {
		metrics.Start(cfg.Metrics.Address(), querierMetrics.Registry, rootLogger)
	}

	t := transport.NewLoggingTransport(transport.NewMeteredTransport(base, querierMetrics), rootLogger)
	return &client{
		querier: querier.New(t),
		logger:  rootLogger,
		close:   closeFn,
	}, &cfg, nil
}

func newQueryCmd(cfgFile *string, use, short string, args cobra.PositionalArgs, run queryFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, err := newClient(*cfgFile)
			if err != nil {
				return err
			}
			defer func() {
				_ = c.logger.Sync()
				_ = c.close()
			}()

			ctx := cmd.Context()
			if cfg.Node.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.Node.Timeout)
				defer cancel()
			}

			res, err := run(ctx, c.querier, args)
			if err != nil {
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
			return printJSON(cmd, res)
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	jsonBz, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonBz))
	return nil
}
