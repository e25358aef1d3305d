package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/calckit/internal/calc"
	"github.com/aalvaropc/calckit/internal/infra/httpapi"
	"github.com/aalvaropc/calckit/internal/infra/logger"
	"github.com/aalvaropc/calckit/internal/infra/metrics"
)

func serveCmd() *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and calculators as a JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := httpapi.LoadConfig(optionalConfig().Server)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			lvl, _ := cfg.Level()
			cleanup, err := logger.Setup(logger.Config{
				Root:  logRoot(false),
				Level: lvl,
				Echo:  os.Stderr,
			})
			if err != nil {
				return err
			}
			closeLog = cleanup

			m := metrics.New()
			srv := httpapi.New(httpapi.Deps{
				Calculator:   newCalculate(m),
				Availability: calc.NewDefaultEngine(),
				Metrics:      m,
				Logger:       logger.L(),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx, cfg)
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "Listen address (overrides calckit.yaml and CALCKIT_ADDR)")
	return c
}

