package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/calckit/internal/calc"
	"github.com/aalvaropc/calckit/internal/catalog"
	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/infra/fsworkspace"
	"github.com/aalvaropc/calckit/internal/infra/logger"
	"github.com/aalvaropc/calckit/internal/infra/metrics"
	"github.com/aalvaropc/calckit/internal/infra/workspacefinder"
	"github.com/aalvaropc/calckit/internal/ui/tui"
	"github.com/aalvaropc/calckit/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "calckit",
		Short:        "calckit: calculators in the terminal, on the command line and over HTTP",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			// One-shot commands only log inside a workspace; the TUI always does.
			interactive := c == c.Root() || c.Name() == "open"
			setupLogging(debug, interactive)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if closeLog != nil {
				_ = closeLog()
				closeLog = nil
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI("", debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .calckit/logs/calckit.log")

	cmd.AddCommand(
		openCmd(&debug),
		listCmd(),
		showCmd(),
		calcCmd(),
		evalCmd(),
		keysCmd(),
		runCmd(),
		validateCmd(),
		sheetsCmd(),
		initCmd(),
		serveCmd(),
		versionCmd(),
	)
	return cmd
}

var closeLog func() error

// setupLogging writes the log under the enclosing workspace. Outside a
// workspace it logs under the current directory when fallback is set and
// discards otherwise.
func setupLogging(debug, fallback bool) {
	root := logRoot(fallback)
	if root == "" {
		return
	}
	cleanup, _ := logger.Setup(logger.Config{
		Root:  root,
		Debug: debug,
	})
	closeLog = cleanup
}

func logRoot(fallback bool) string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	if root, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr == nil && root != "" {
		return root
	}
	if fallback {
		return wd
	}
	return ""
}

func newCalculate(m *metrics.Metrics) *usecase.Calculate {
	opts := []usecase.CalculateOption{usecase.WithLogger(logger.L())}
	if m != nil {
		opts = append(opts, usecase.WithMetrics(m))
	}
	return usecase.NewCalculate(catalog.Registry{}, calc.NewDefaultEngine(), opts...)
}

func runTUI(start domain.CalculatorID, debug bool) error {
	cfg := optionalConfig()

	deps := tui.Deps{
		WorkspaceLocator:     workspacefinder.NewFinder(),
		WorkspaceInitializer: fsworkspace.NewInitializer(),
		Calculate:            newCalculate(nil),
		Start:                start,
		Precision:            cfg.Defaults.Precision,
		Logger:               logger.L(),
		Debug:                debug,
	}

	return tui.Run(deps)
}

func openCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "open <id>",
		Short: "Open a calculator directly in the TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTUI(domain.CalculatorID(args[0]), *debug)
		},
	}
}
