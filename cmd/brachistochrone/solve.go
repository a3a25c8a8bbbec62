package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/brachistochrone/config"
	"github.com/katalvlaran/brachistochrone/descent"
	"github.com/katalvlaran/brachistochrone/export"
	"github.com/katalvlaran/brachistochrone/job"
	"github.com/spf13/cobra"
)

type solveFlags struct {
	configPath  string
	extent      float64
	resolution  int
	startX      float64
	startY      float64
	endX        float64
	endY        float64
	horizon     int
	workers     int
	gravity     float64
	format      string
	output      string
	metricsFile string
	reference   bool
	at          []float64
}

func newSolveCmd(g *globalFlags) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a scenario and write the descent path",
		Long: `Solve builds the value table for a scenario and writes the path from
start to end. Positions are in metres; the square of side --extent is split
into --resolution grid units. Flags override values read from --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := g.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return runSolve(cmd, f, log)
		},
	}

	def := config.Default()
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML scenario file")
	fl.Float64Var(&f.extent, "extent", def.Extent, "side of the square in metres")
	fl.IntVarP(&f.resolution, "resolution", "n", def.Resolution, "grid units per side (10..1000)")
	fl.Float64Var(&f.startX, "start-x", def.Start.X, "start x in metres")
	fl.Float64Var(&f.startY, "start-y", def.Start.Y, "start y in metres")
	fl.Float64Var(&f.endX, "end-x", def.End.X, "end x in metres")
	fl.Float64Var(&f.endY, "end-y", def.End.Y, "end y in metres")
	fl.IntVar(&f.horizon, "horizon", -1, "stage count; negative derives it from the resolution")
	fl.IntVarP(&f.workers, "workers", "w", 1, "goroutines per stage")
	fl.Float64Var(&f.gravity, "gravity", descent.StandardGravity, "gravitational acceleration in m/s²")
	fl.StringVarP(&f.format, "format", "f", "table", "output format: table, csv or geojson")
	fl.StringVarP(&f.output, "output", "o", "", "write the path to a file instead of stdout")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write prometheus metrics to this textfile")
	fl.BoolVar(&f.reference, "reference", false, "also compute the horizon-free lower bound")
	fl.Float64SliceVar(&f.at, "at", nil, "report the path sample nearest to x,y metres")

	return cmd
}

// scenario merges --config with the flags the user set explicitly.
func (f *solveFlags) scenario(cmd *cobra.Command) (config.Scenario, error) {
	s := config.Default()
	if f.configPath != "" {
		var err error
		if s, err = config.Load(f.configPath); err != nil {
			return config.Scenario{}, err
		}
	}

	fl := cmd.Flags()
	set := func(name string, apply func()) {
		if fl.Changed(name) {
			apply()
		}
	}
	set("extent", func() { s.Extent = f.extent })
	set("resolution", func() { s.Resolution = f.resolution })
	set("start-x", func() { s.Start.X = f.startX })
	set("start-y", func() { s.Start.Y = f.startY })
	set("end-x", func() { s.End.X = f.endX })
	set("end-y", func() { s.End.Y = f.endY })
	set("horizon", func() {
		if f.horizon >= 0 {
			h := f.horizon
			s.Horizon = &h
		} else {
			s.Horizon = nil
		}
	})
	set("workers", func() { s.Workers = f.workers })
	set("gravity", func() { s.Gravity = f.gravity })

	return s, s.Validate()
}

func runSolve(cmd *cobra.Command, f *solveFlags, log *slog.Logger) error {
	if len(f.at) != 0 && len(f.at) != 2 {
		return fmt.Errorf("--at wants two values, got %d", len(f.at))
	}
	sc, err := f.scenario(cmd)
	if err != nil {
		return err
	}
	for _, w := range sc.Warnings() {
		log.Warn("scenario", "warning", w)
	}
	params, err := sc.Params()
	if err != nil {
		return err
	}
	opts := append(sc.Options(), descent.WithLogger(log))

	j, err := job.Start(params, opts...)
	if err != nil {
		return err
	}
	log.Info("solve started", "job", j.ID(), "n", params.N, "scale", params.Scale)

	s, err := j.Wait(cmd.Context())
	if err != nil {
		j.Abandon()
		return err
	}
	st := s.Stats()
	log.Info("solve finished",
		"job", j.ID(),
		"horizon", s.Horizon(),
		"transitions", st.Transitions,
		"relaxations", st.Relaxations,
		"reachable", st.Reachable,
		"elapsed", st.Elapsed)

	route, err := export.FromSolver(s, params.Start)
	if err != nil {
		return err
	}
	if route.Empty() {
		log.Warn("goal unreachable from start", "start", params.Start, "end", params.End, "horizon", s.Horizon())
	} else {
		log.Info("path", "steps", len(route.Steps), "duration", route.Duration(), "length", route.Length())
	}

	if f.reference {
		ref, err := descent.Unbounded(params, opts...)
		if err != nil {
			return err
		}
		log.Info("reference", "lower_bound", ref.Value(params.Start))
	}

	if len(f.at) == 2 && !route.Empty() {
		if near, ok := export.NewIndex(route).Nearest(f.at[0], f.at[1]); ok {
			log.Info("nearest sample", "stage", near.Stage, "pos", near.Pos, "time_to_go", near.TimeToGo)
		}
	}

	if err := writeRoute(cmd, f, route, j.ID().String()); err != nil {
		return err
	}

	if f.metricsFile != "" {
		m := newSolveMetrics()
		m.observe(st, len(route.Steps))
		if err := m.writeTo(f.metricsFile); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	return nil
}

func writeRoute(cmd *cobra.Command, f *solveFlags, route export.Route, id string) (err error) {
	out := cmd.OutOrStdout()
	if f.output != "" {
		file, ferr := os.Create(f.output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		out = file
	}

	switch f.format {
	case "table":
		return writeTable(out, route)
	case "csv":
		return export.WriteCSV(out, route)
	case "geojson":
		data, err := export.GeoJSON(route, map[string]interface{}{"job": id})
		if errors.Is(err, export.ErrEmptyRoute) {
			return nil
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))

		return err
	default:
		return fmt.Errorf("--format: unknown format %q", f.format)
	}
}

func writeTable(w io.Writer, route export.Route) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "stage\tx\ty\tx_m\ty_m\ttime_to_go\t")
	for _, st := range route.Steps {
		p := route.Physical(st.Pos)
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.3f\t%.3f\t%.6f\t\n", st.Stage, st.Pos.X, st.Pos.Y, p[0], p[1], st.TimeToGo)
	}

	return tw.Flush()
}
