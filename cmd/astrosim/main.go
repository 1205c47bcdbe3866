package main

import (
	"fmt"
	"log"
	"os"

	"github.com/san-kum/astrosim/internal/config"
	"github.com/san-kum/astrosim/internal/doppler"
	"github.com/san-kum/astrosim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string

	body    string
	semiA   float64
	ecc     float64
	period  float64
	steps   int
	timing  string
	workers int

	fraction   float64
	frameRate  int
	theme      string
	outFile    string
	integrator string
	dt         float64
	bodyFilter string

	restWavelength float64

	rotModel string
	rotMass  float64
	rotV0    float64
	rotRc    float64
	rotRMin  float64
	rotRMax  float64
	rotN     int
)

// addOrbitFlags registers the orbit selection flags shared by every command
// that generates frames.
func addOrbitFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "start from a named preset")
	f.StringVar(&body, "body", "custom", "body name stored with the run")
	f.Float64Var(&semiA, "a", config.DefaultA, "semi-major axis (AU)")
	f.Float64Var(&ecc, "e", config.DefaultE, "eccentricity")
	f.Float64Var(&period, "period", config.DefaultPeriod, "orbital period (years)")
	f.IntVar(&steps, "steps", config.DefaultSteps, "samples per period")
	f.StringVar(&timing, "timing", "uniform", "angle timing: uniform or kepler")
	f.IntVar(&workers, "workers", 1, "parallel workers for frame generation")
}

func main() {
	log.SetPrefix("[astrosim] ")
	log.SetFlags(0)

	rootCmd := &cobra.Command{
		Use:          "astrosim",
		Short:        "kepler orbit kinematics and sector areas",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default "+config.DefaultDataDir+")")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "generate one period and store the run",
		Args:  cobra.NoArgs,
		RunE:  runOrbit,
	}
	addOrbitFlags(runCmd)
	runCmd.Flags().Float64Var(&fraction, "fraction", 0.2, "share of the period compared for equal areas")

	areasCmd := &cobra.Command{
		Use:   "areas",
		Short: "compare swept areas at the start and end of the period",
		Args:  cobra.NoArgs,
		RunE:  compareAreas,
	}
	addOrbitFlags(areasCmd)
	areasCmd.Flags().Float64Var(&fraction, "fraction", 0.2, "share of the period compared")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
	listCmd.Flags().StringVar(&bodyFilter, "body", "", "only runs of this body")

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot radius and speed over the period",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the orbit in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addOrbitFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("color theme %v", viz.ThemeNames()))

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw the run as an SVG image",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default <run_id>.svg)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "harmonic analysis of the speed curve",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	integrateCmd := &cobra.Command{
		Use:   "integrate",
		Short: "integrate the two-body problem and compare with Kepler's solution",
		Args:  cobra.NoArgs,
		RunE:  integrateOrbit,
	}
	addOrbitFlags(integrateCmd)
	integrateCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	integrateCmd.Flags().Float64Var(&dt, "dt", 1e-4, "timestep (years)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list orbit presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	dopplerCmd := &cobra.Command{
		Use:   "doppler [velocity_kms]",
		Short: "doppler-shift a spectral line",
		Args:  cobra.ExactArgs(1),
		RunE:  dopplerShift,
	}
	dopplerCmd.Flags().Float64Var(&restWavelength, "rest", doppler.RestWavelength, "rest wavelength (nm)")

	rotationCmd := &cobra.Command{
		Use:   "rotation",
		Short: "plot a galactic rotation curve",
		Args:  cobra.NoArgs,
		RunE:  rotationCurve,
	}
	rotationCmd.Flags().StringVar(&rotModel, "model", "combined", "keplerian, halo or combined")
	rotationCmd.Flags().Float64Var(&rotMass, "mass", 1e11, "central mass (solar masses)")
	rotationCmd.Flags().Float64Var(&rotV0, "v0", 220, "halo asymptotic speed (km/s)")
	rotationCmd.Flags().Float64Var(&rotRc, "rc", 5, "halo core radius (kpc)")
	rotationCmd.Flags().Float64Var(&rotRMin, "rmin", 0.5, "inner radius (kpc)")
	rotationCmd.Flags().Float64Var(&rotRMax, "rmax", 30, "outer radius (kpc)")
	rotationCmd.Flags().IntVar(&rotN, "n", 120, "samples")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame generation",
		Args:  cobra.NoArgs,
		RunE:  benchGenerate,
	}
	addOrbitFlags(benchCmd)

	rootCmd.AddCommand(runCmd, areasCmd, listCmd, showCmd, plotCmd, liveCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, analyzeCmd, integrateCmd,
		presetsCmd, dopplerCmd, rotationCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
