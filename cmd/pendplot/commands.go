package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/pendplot/internal/compare"
	"github.com/san-kum/pendplot/internal/config"
	"github.com/san-kum/pendplot/internal/metrics"
	"github.com/san-kum/pendplot/internal/session"
	"github.com/san-kum/pendplot/internal/store"
	"github.com/san-kum/pendplot/internal/trajectory"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

func runPlot(cmd *cobra.Command, args []string) error {
	return session.New(cfg, newRenderer(cfg)).Run(cmd.Context())
}

func runOverview(cmd *cobra.Command, args []string) error {
	s := session.New(cfg, newRenderer(cfg))
	results, err := s.Load()
	if err != nil {
		return err
	}
	return s.Overview(cmd.Context(), results)
}

func runErrors(cmd *cobra.Command, args []string) error {
	s := session.New(cfg, newRenderer(cfg))
	series, err := loadErrors(s)
	if err != nil {
		return err
	}
	return s.RenderLocalError(cmd.Context(), series)
}

func loadErrors(s *session.Session) ([]*compare.Series, error) {
	results, err := s.Load()
	if err != nil {
		return nil, err
	}
	return s.LocalErrors(results)
}

func runSummary(cmd *cobra.Command, args []string) error {
	s := session.New(cfg, nil)
	results, err := s.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("inputs"))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tSAMPLES\tT_END\tPERIOD\tENERGY_0\tDRIFT_MAX")
	pend := metrics.Pendulum{Mass: cfg.Pendulum.Mass, Length: cfg.Pendulum.Length, Gravity: cfg.Pendulum.Gravity}
	for _, res := range results {
		period := "-"
		if p, ok := compare.DominantPeriod(res.Table); ok {
			period = fmt.Sprintf("%.4f", p)
		}
		drift := metrics.EnergyDrift(pend, res.Table)
		tEnd := res.Table.T[res.Table.Len()-1]
		fmt.Fprintf(w, "%s\t%d\t%.4f\t%s\t%.4e\t%.3e\n",
			res.Method, res.Table.Len(), tEnd, period, drift.Initial, drift.MaxAbsolute)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	series, err := s.LocalErrors(results)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("local error against "+cfg.ReferenceMethod().String()))
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tQUANTITY\tMAX\tAT_T\tMEAN\tFINAL")
	for _, sr := range series {
		sum := compare.Summarize(sr)
		writeStats(w, sr.Method, "theta", sum.Theta)
		writeStats(w, sr.Method, "theta_dot", sum.ThetaDot)
	}
	return w.Flush()
}

func writeStats(w *tabwriter.Writer, m trajectory.Method, quantity string, st compare.Stats) {
	fmt.Fprintf(w, "%s\t%s\t%.3e\t%.4f\t%.3e\t%.3e\n", m, quantity, st.Max, st.MaxAt, st.Mean, st.Final)
}

func runExport(cmd *cobra.Command, args []string) error {
	series, err := loadErrors(session.New(cfg, nil))
	if err != nil {
		return err
	}
	ref := cfg.ReferenceMethod()
	if exportOutput == "" {
		return store.Write(cmd.OutOrStdout(), exportFormat, ref, series)
	}
	if err := store.ExportFile(exportOutput, exportFormat, ref, series); err != nil {
		return err
	}
	zap.L().Info("exported", zap.String("path", exportOutput), zap.Int("series", len(series)))
	return nil
}

func listProfiles(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tFORMAT\tSIZE\tTERMINAL")
	for _, name := range config.ListProfiles() {
		p := config.GetProfile(name)
		format := p.Format
		if format == "" {
			format = "-"
		}
		term := "-"
		if p.TermWidth > 0 {
			term = fmt.Sprintf("%dx%d", p.TermWidth, p.TermHeight)
		}
		fmt.Fprintf(w, "%s\t%s\t%gx%g\t%s\n", name, format, p.Width, p.Height, term)
	}
	return w.Flush()
}
