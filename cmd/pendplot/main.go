package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/pendplot/internal/config"
	"github.com/san-kum/pendplot/internal/logging"
	"github.com/san-kum/pendplot/internal/render"
	"github.com/san-kum/pendplot/internal/viewer"
)

var (
	configFile string
	profile    string
	feFile     string
	meFile     string
	rk4File    string
	reference  string
	format     string
	outDir     string
	gridCheck  string
	tolerance  float64
	verbose    bool
	// export
	exportFormat string
	exportOutput string
)

var (
	cfg        *config.Config
	logReady   bool
	restoreLog = func() {}
)

func main() {
	os.Exit(execute())
}

func execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	defer restoreLog()
	if err == nil || errors.Is(err, viewer.ErrAborted) {
		return 0
	}
	if logReady {
		zap.L().Error("pendplot failed", zap.Error(err))
	} else {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return 1
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "pendplot",
		Short:             "plot and compare pendulum integrator trajectories",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runPlot,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&profile, "profile", "", "render profile (screen, paper, compact)")
	pf.StringVar(&feFile, "fe", config.DefaultFEPath, "forward Euler trajectory csv, empty to skip")
	pf.StringVar(&meFile, "me", config.DefaultMEPath, "modified Euler trajectory csv, empty to skip")
	pf.StringVar(&rk4File, "rk4", config.DefaultRK4Path, "RK4 trajectory csv, empty to skip")
	pf.StringVar(&reference, "reference", "rk4", "reference method for local error")
	pf.StringVar(&format, "format", config.DefaultFormat, "output backend: term, png, svg, pdf")
	pf.StringVar(&outDir, "out", config.DefaultOutDir, "directory for figure files")
	pf.StringVar(&gridCheck, "grid-check", config.GridWarn, "time grid check: warn, strict, off")
	pf.Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "time grid tolerance")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "show every state overview followed by the local error figure",
		RunE:  runPlot,
	}

	overviewCmd := &cobra.Command{
		Use:   "overview",
		Short: "show the state overview of every input",
		RunE:  runOverview,
	}

	errorsCmd := &cobra.Command{
		Use:   "errors",
		Short: "show the local error against the reference",
		RunE:  runErrors,
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "print error statistics and oscillation periods",
		RunE:  runSummary,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write local error series as csv or json",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&exportFormat, "as", "csv", "export format: csv, json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "list render profiles",
		RunE:  listProfiles,
	}

	rootCmd.AddCommand(plotCmd, overviewCmd, errorsCmd, summaryCmd, exportCmd, profilesCmd)
	return rootCmd
}

// setup loads the config, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	restore, err := logging.Setup(c.Verbose)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	restoreLog = restore
	logReady = true
	cfg = c
	zap.L().Debug("config ready",
		zap.String("format", c.Output.Format),
		zap.String("reference", c.Reference),
		zap.String("grid", c.Grid.Check))
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		c = loaded
	}
	if profile != "" {
		if err := c.ApplyProfile(profile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("fe") {
		c.Inputs.FE = feFile
	}
	if flags.Changed("me") {
		c.Inputs.ME = meFile
	}
	if flags.Changed("rk4") {
		c.Inputs.RK4 = rk4File
	}
	if flags.Changed("reference") {
		c.Reference = reference
	}
	if flags.Changed("format") {
		c.Output.Format = format
	}
	if flags.Changed("out") {
		c.Output.Dir = outDir
	}
	if flags.Changed("grid-check") {
		c.Grid.Check = gridCheck
	}
	if flags.Changed("tolerance") {
		c.Grid.Tolerance = tolerance
	}
	if flags.Changed("verbose") {
		c.Verbose = verbose
	}

	if err := config.Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// newRenderer picks the backend for the configured format. Terminal figures
// are held in a viewer only when stdout is interactive.
func newRenderer(c *config.Config) render.Renderer {
	if !c.IsTerminal() {
		return render.NewFile(c.Output.Dir, c.Output.Format, c.Output.Width, c.Output.Height)
	}
	var p render.Presenter = render.WriterPresenter{W: os.Stdout}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		p = viewer.New()
	}
	return render.NewTerminal(c.Terminal.Width, c.Terminal.Height, p)
}
