package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/astrosim/internal/analysis"
	"github.com/san-kum/astrosim/internal/config"
	"github.com/san-kum/astrosim/internal/doppler"
	"github.com/san-kum/astrosim/internal/export"
	"github.com/san-kum/astrosim/internal/integrators"
	"github.com/san-kum/astrosim/internal/metrics"
	"github.com/san-kum/astrosim/internal/orbit"
	"github.com/san-kum/astrosim/internal/physics"
	"github.com/san-kum/astrosim/internal/rotation"
	"github.com/san-kum/astrosim/internal/storage"
	"github.com/san-kum/astrosim/internal/viz"
	"github.com/spf13/cobra"
)

func generate(cfg *config.Config) ([]orbit.Frame, orbit.Options, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, opts, err
	}
	frames, err := orbit.GenerateWith(cfg.Params(), cfg.Steps, opts)
	return frames, opts, err
}

func runOrbit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("generating %s orbit (a=%g AU, e=%g, T=%g yr, %d steps, %s)...\n",
		cfg.Body, cfg.A, cfg.E, cfg.Period, cfg.Steps, cfg.Timing)
	start := time.Now()
	frames, opts, err := generate(cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	p := cfg.Params()
	cmp, err := runAreas(frames, fraction)
	if err != nil {
		return err
	}
	meta := storage.RunMetadata{
		Body:    cfg.Body,
		A:       p.A,
		E:       p.E,
		Period:  p.T,
		Timing:  opts.Timing.String(),
		Metrics: metrics.Evaluate(frames, metrics.Default(p)...),
		Areas:   cmp,
	}

	st, cat, err := openStore(ctx, cfg.DataDir)
	if err != nil {
		return err
	}
	defer cat.Close()

	runID, err := st.Save(ctx, meta, frames)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(frames))
	if cmp != nil {
		printAreas(*cmp, orbit.AreaErrorBound(p, cfg.Steps, opts.Timing))
	} else {
		fmt.Printf("\nswept area: %d steps too few for a %g window\n", len(frames), fraction)
	}
	fmt.Println("\nmetrics:")
	for _, name := range sortedKeys(meta.Metrics) {
		fmt.Printf("  %s: %.6g\n", name, meta.Metrics[name])
	}
	return nil
}

// runAreas compares the first and last window of a run. A valid fraction
// whose window rounds to zero frames yields nil so short runs still save.
func runAreas(frames []orbit.Frame, fraction float64) (*orbit.AreaComparison, error) {
	if fraction > 0 && fraction <= 0.5 && math.Round(fraction*float64(len(frames))) < 1 {
		return nil, nil
	}
	cmp, err := orbit.CompareAreas(frames, fraction)
	if err != nil {
		return nil, err
	}
	return &cmp, nil
}

func compareAreas(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	frames, opts, err := generate(cfg)
	if err != nil {
		return err
	}
	cmp, err := orbit.CompareAreas(frames, fraction)
	if err != nil {
		return err
	}
	total, err := orbit.SectorArea(frames, 0, len(frames))
	if err != nil {
		return err
	}

	p := cfg.Params()
	fmt.Printf("%s: a=%g AU, e=%g, %d steps, %s timing\n", cfg.Body, p.A, p.E, cfg.Steps, opts.Timing)
	printAreas(cmp, orbit.AreaErrorBound(p, cfg.Steps, opts.Timing))
	fmt.Printf("  full period:  %.6f AU²\n", total)
	return nil
}

func printAreas(cmp orbit.AreaComparison, bound float64) {
	fmt.Printf("\nswept area over %d steps:\n", cmp.Steps)
	fmt.Printf("  first: %.6f AU²\n", cmp.First)
	fmt.Printf("  last:  %.6f AU²\n", cmp.Last)
	fmt.Printf("  relative difference: %.3e (sampling bound %.3e)\n", cmp.RelDiff, bound)
}

func listRuns(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dir, err := resolveDataDir(cmd)
	if err != nil {
		return err
	}
	st, cat, err := openStore(ctx, dir)
	if err != nil {
		return err
	}
	defer cat.Close()

	var runs []storage.RunMetadata
	if cat != nil {
		runs, err = cat.List(ctx, bodyFilter)
	} else {
		runs, err = st.List()
		runs = filterBody(runs, bodyFilter)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBODY\tTIME\tA\tE\tPERIOD\tSTEPS\tTIMING")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%g\t%d\t%s\n",
			run.ID,
			run.Body,
			run.Timestamp.Local().Format("2006-01-02 15:04:05"),
			run.A,
			run.E,
			run.Period,
			run.Steps,
			run.Timing,
		)
	}
	return w.Flush()
}

func filterBody(runs []storage.RunMetadata, name string) []storage.RunMetadata {
	if name == "" {
		return runs
	}
	out := runs[:0]
	for _, r := range runs {
		if r.Body == name {
			out = append(out, r)
		}
	}
	return out
}

func showRun(cmd *cobra.Command, args []string) error {
	meta, _, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, st, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(meta.ID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("body: %s\n", meta.Body)
	fmt.Printf("samples: %d\n\n", len(frames))

	radius := make([]float64, len(frames))
	speed := make([]float64, len(frames))
	for i, f := range frames {
		radius[i] = f.R
		speed[i] = f.Speed()
	}
	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{radius, "r (AU) over one period"},
		{speed, "speed (AU/yr) over one period"},
	} {
		fmt.Println(asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		))
		fmt.Println()
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	frames, _, err := generate(cfg)
	if err != nil {
		return err
	}
	return viz.Run(viz.NewOrbitModel(cfg.Body, cfg.Params(), frames, cfg.FPS, cfg.Theme))
}

// output returns the writer for --output, defaulting to stdout.
func output(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	meta, st, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(meta.ID)
	if err != nil {
		return err
	}
	w, closeFn, err := output(outFile)
	if err != nil {
		return err
	}
	if err := storage.WriteFramesCSV(csv.NewWriter(w), frames); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, st, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(meta.ID)
	if err != nil {
		return err
	}
	w, closeFn, err := output(outFile)
	if err != nil {
		return err
	}
	if err := export.WriteJSON(w, meta, frames); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	meta, st, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(meta.ID)
	if err != nil {
		return err
	}
	svg := export.OrbitSVG(frames, export.DefaultSVGOptions())
	if svg == "" {
		return fmt.Errorf("run %s has too few frames to draw", meta.ID)
	}

	path := outFile
	if path == "" {
		path = meta.ID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, st, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(meta.ID)
	if err != nil {
		return err
	}
	if len(frames) < 4 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("speed harmonics: %s\n", meta.ID)
	fmt.Printf("body: %s (e=%g)\n\n", meta.Body, meta.E)

	amps := analysis.SpeedSpectrum(frames)
	plotData := amps[1:min(len(amps), 33)]
	fmt.Println(asciigraph.Plot(plotData,
		asciigraph.Height(12),
		asciigraph.Width(64),
		asciigraph.Caption("speed harmonic amplitudes (k = 1..)"),
	))
	fmt.Println()

	k := analysis.DominantHarmonic(amps)
	if k == 0 {
		fmt.Println("speed is constant: circular orbit")
		return nil
	}
	fmt.Printf("mean speed: %.4f AU/yr\n", amps[0])
	fmt.Printf("dominant harmonic: %d (period %.4f yr)\n", k, meta.Period/float64(k))
	fmt.Printf("harmonic distortion: %.4f\n", analysis.HarmonicRatio(amps))
	return nil
}

func integrateOrbit(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	integ, err := integrators.ByName(integrator)
	if err != nil {
		return err
	}

	p := cfg.Params()
	fmt.Printf("integrating %s with %s (dt=%g yr, Kepler period %.4f yr)...\n",
		cfg.Body, integrator, dt, p.KeplerPeriod())
	start := time.Now()
	res, err := physics.Trajectory(cmd.Context(), p, integ, dt)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	dev, err := physics.MaxDeviation(res, p)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d\n", res.StepsTaken)
	fmt.Printf("energy drift: %.3e\n", res.EnergyDrift)
	fmt.Printf("max deviation from Kepler solution: %.3e AU\n", dev)
	if math.Abs(p.T-p.KeplerPeriod()) > 1e-3*p.KeplerPeriod() {
		fmt.Printf("note: period %g yr differs from Kepler's third law; integration uses %.4f yr\n",
			p.T, p.KeplerPeriod())
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tA (AU)\tE\tPERIOD (yr)\tSTEPS\tTIMING")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		t := p.Timing
		if t == "" {
			t = orbit.TimingUniform.String()
		}
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%d\t%s\n", name, p.A, p.E, p.Period, p.Steps, t)
	}
	return w.Flush()
}

func dopplerShift(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid velocity %q: %w", args[0], err)
	}
	obs, err := doppler.Observe(restWavelength, v)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "velocity\t%g km/s (%s)\n", obs.Velocity, obs.Direction)
	fmt.Fprintf(w, "rest\t%.2f nm\t%s\n", obs.Rest, obs.RestBand)
	fmt.Fprintf(w, "observed\t%.2f nm\t%s\n", obs.Observed, obs.ObservedBand)
	fmt.Fprintf(w, "relativistic\t%.2f nm\t%s\n", obs.Relativistic, doppler.BandOf(obs.Relativistic))
	return w.Flush()
}

func rotationCurve(cmd *cobra.Command, args []string) error {
	var m rotation.Model
	switch rotModel {
	case "keplerian":
		m = rotation.Keplerian{Mass: rotMass}
	case "halo":
		m = rotation.Halo{V0: rotV0, Rc: rotRc}
	case "combined":
		m = rotation.Combined{rotation.Keplerian{Mass: rotMass}, rotation.Halo{V0: rotV0, Rc: rotRc}}
	default:
		return fmt.Errorf("unknown rotation model: %s (available: keplerian, halo, combined)", rotModel)
	}

	points, err := rotation.Curve(m, rotRMin, rotRMax, rotN)
	if err != nil {
		return err
	}
	v := make([]float64, len(points))
	for i, pt := range points {
		v[i] = pt.V
	}
	fmt.Println(asciigraph.Plot(v,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s rotation curve, v (km/s) for r = %g..%g kpc", m.Name(), rotRMin, rotRMax)),
	))
	return nil
}

func benchGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	p := cfg.Params()
	sizes := []int{1_000, 10_000, 100_000, 1_000_000}
	workerCounts := []int{1, max(cfg.Workers, 4)}

	fmt.Printf("benchmarking %s generation (e=%g, %s timing)\n\n", cfg.Body, p.E, opts.Timing)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPS\tWORKERS\tTIME\tFRAMES/SEC")
	for _, n := range sizes {
		for _, k := range workerCounts {
			o := opts
			o.Workers = k
			start := time.Now()
			if _, err := orbit.GenerateWith(p, n, o); err != nil {
				return err
			}
			elapsed := time.Since(start)
			fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", n, k, elapsed, float64(n)/elapsed.Seconds())
		}
	}
	return w.Flush()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
