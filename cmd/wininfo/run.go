package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-window/dsp/spectrum"
	"github.com/cwbudde/algo-window/dsp/window"
)

type options struct {
	size     int
	params   []float64
	all      bool
	list     bool
	periodic bool
	bins     int
	unit     spectrum.Unit
	dump     string
	phase    bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wininfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts     options
		params   string
		unitName string
	)
	fs.IntVar(&opts.size, "size", 1024, "window length in samples")
	fs.StringVar(&params, "params", "", "comma-separated window parameters (default: catalog defaults)")
	fs.BoolVar(&opts.all, "all", false, "show all window kinds")
	fs.BoolVar(&opts.list, "list", false, "list window kinds, optionally filtered by a name substring")
	fs.BoolVar(&opts.periodic, "periodic", false, "use periodic (FFT) form instead of symmetric")
	fs.IntVar(&opts.bins, "bins", spectrum.DefaultMinBins, "minimum number of DFT bins for -dump response")
	fs.StringVar(&unitName, "unit", "nyquist", "frequency axis for -dump response: nyquist, sample or bin")
	fs.StringVar(&opts.dump, "dump", "", "print samples or response instead of the analysis table")
	fs.BoolVar(&opts.phase, "phase", false, "add a phase column (radians) to -dump response")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(stderr, "Prints spectral properties of DSP window functions.\n")
		fmt.Fprintf(stderr, "Without arguments or with -all, prints info for all windows.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  wininfo hann blackman\n")
		fmt.Fprintf(stderr, "  wininfo -size 4096 -params 2.5 kaiser\n")
		fmt.Fprintf(stderr, "  wininfo -dump samples -size 8 hamming\n")
		fmt.Fprintf(stderr, "  wininfo -list blackman\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.list {
		if err := printList(stdout, strings.Join(fs.Args(), " ")); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	var err error
	if opts.params, err = parseParams(params); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	if opts.unit, err = spectrum.ParseUnit(unitName); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	switch opts.dump {
	case "", "samples", "response":
	default:
		fmt.Fprintf(stderr, "error: -dump must be samples or response, got %q\n", opts.dump)
		return 2
	}

	names := fs.Args()
	if len(names) == 0 || opts.all {
		names = nil
		for _, info := range window.Catalog() {
			if info.Defaults != nil || info.Arity == 0 {
				names = append(names, info.Name)
			}
		}
	}

	specs := resolveSpecs(stderr, names, opts)
	if len(specs) == 0 {
		fmt.Fprintf(stderr, "error: no matching window kinds\n")
		return 1
	}

	switch opts.dump {
	case "samples":
		err = dumpSamples(stdout, specs)
	case "response":
		err = dumpResponse(stdout, specs, opts)
	default:
		err = printAnalysis(stdout, stderr, specs)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func printList(w io.Writer, filter string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Name\tFamily\tParams\tDefaults\tPeriodic\n"); err != nil {
		return fmt.Errorf("failed to write list header: %w", err)
	}
	for _, info := range window.Filter(filter) {
		defaults := "-"
		if info.Defaults != nil {
			defaults = formatParams(info.Defaults)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%t\n", info.Name, info.Family, info.Arity, defaults, info.Periodic); err != nil {
			return fmt.Errorf("failed to write list row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func parseParams(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid -params value %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func formatParams(p []float64) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// resolveSpecs builds one Spec per name. Unknown names and invalid
// configurations are reported as warnings and skipped. Explicit -params only
// apply to kinds whose arity matches.
func resolveSpecs(stderr io.Writer, names []string, opts options) []window.Spec {
	var result []window.Spec
	for _, name := range names {
		kind, err := window.ParseKind(name)
		if err != nil {
			fmt.Fprintf(stderr, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}
		info, _ := kind.Info()

		params := info.Defaults
		switch {
		case opts.params == nil:
		case len(opts.params) == info.Arity:
			params = opts.params
		case info.Arity > 0:
			fmt.Fprintf(stderr, "warning: %s takes %d parameter(s), ignoring -params\n", info.Name, info.Arity)
		}

		spec, err := window.NewSpec(kind, opts.size, opts.periodic && info.Periodic, params...)
		if err != nil {
			fmt.Fprintf(stderr, "warning: skipping %s: %v\n", info.Name, err)
			continue
		}
		if opts.periodic && !info.Periodic {
			fmt.Fprintf(stderr, "warning: %s has no periodic form, using symmetric\n", info.Name)
		}
		result = append(result, spec)
	}
	return result
}

func printAnalysis(stdout, stderr io.Writer, specs []window.Spec) error {
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t-------------\t----------\t-------------\t-------------\t--------------\t-----------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	cache := window.NewCache()
	for _, spec := range specs {
		coeffs, err := cache.Samples(spec)
		if err != nil {
			fmt.Fprintf(stderr, "warning: skipping %s: %v\n", spec, err)
			continue
		}

		a, err := window.Analyze(coeffs)
		if err != nil {
			fmt.Fprintf(stderr, "warning: cannot analyze %s: %v\n", spec, err)
			continue
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			label(spec),
			spec.Size(),
			a.CoherentGain,
			a.ENBW,
			a.Bandwidth3dB,
			a.HighestSidelobedB,
			a.FirstMinimumBins,
			a.ScallopLossdB,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func label(spec window.Spec) string {
	p := spec.Params()
	if len(p) == 0 {
		return spec.Kind().String()
	}
	return fmt.Sprintf("%s (%s)", spec.Kind(), formatParams(p))
}

func dumpSamples(w io.Writer, specs []window.Spec) error {
	for _, spec := range specs {
		s, err := window.Generate(spec)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "# %s\n", spec); err != nil {
			return fmt.Errorf("failed to write samples header: %w", err)
		}
		for i, v := range s {
			if _, err := fmt.Fprintf(w, "%d\t%.17g\n", i, v); err != nil {
				return fmt.Errorf("failed to write sample: %w", err)
			}
		}
	}
	return nil
}

func dumpResponse(w io.Writer, specs []window.Spec, opts options) error {
	for _, spec := range specs {
		win, err := window.New(spec)
		if err != nil {
			return err
		}
		r, err := win.Response(opts.bins)
		if err != nil {
			return err
		}
		axis, err := r.Axis(opts.unit)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "# %s, %d bins, axis %s\n", spec, r.Len(), opts.unit); err != nil {
			return fmt.Errorf("failed to write response header: %w", err)
		}

		var phase []float64
		if opts.phase {
			phase = r.Phase()
		}
		for i, db := range spectrum.Shift(r.MagnitudeDB()) {
			var err error
			if phase != nil {
				_, err = fmt.Fprintf(w, "%.6g\t%.6g\t%.6g\n", axis[i], db, phase[i])
			} else {
				_, err = fmt.Fprintf(w, "%.6g\t%.6g\n", axis[i], db)
			}
			if err != nil {
				return fmt.Errorf("failed to write response bin: %w", err)
			}
		}
	}
	return nil
}
