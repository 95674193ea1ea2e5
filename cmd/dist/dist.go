// dist reads newline-separated numbers from stdin and describes their
// distribution.
//
// It prints summary statistics and sample quantiles, fits each of the
// requested distribution families to the sample, and prints quantiles
// of a kernel density estimate of the sample.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-moredist/stats"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var (
	fits       = pflag.StringSliceP("fit", "f", []string{"normal", "lognormal", "exponential", "weibull", "laplace"}, "distribution `families` to fit to the sample")
	bandwidth  = pflag.Float64P("bandwidth", "b", 0, "KDE bandwidth; 0 chooses one by Scott's rule")
	boundMin   = pflag.Float64("min", math.Inf(-1), "lower boundary of the KDE's support")
	boundMax   = pflag.Float64("max", math.Inf(1), "upper boundary of the KDE's support")
	quantiles  = pflag.Float64SliceP("quantiles", "q", []float64{0.01, 0.05, 0.25, 0.5, 0.75, 0.95, 0.99}, "`probabilities` at which to report quantiles")
	confidence = pflag.Float64P("confidence", "c", 0.95, "confidence level of sample quantile intervals")
	showFamily = pflag.Bool("list", false, "list the families --fit accepts and exit")
)

// fitters maps family names to functions that fit them to a sample.
var fitters = map[string]func(xs []float64) (stats.Dist, error){
	"normal":      func(xs []float64) (stats.Dist, error) { return stats.FitNormal(xs) },
	"lognormal":   func(xs []float64) (stats.Dist, error) { return stats.FitLogNormal(xs) },
	"exponential": func(xs []float64) (stats.Dist, error) { return stats.FitExponential(xs) },
	"weibull":     func(xs []float64) (stats.Dist, error) { return stats.FitWeibullMLE(xs) },
	"rayleigh":    func(xs []float64) (stats.Dist, error) { return stats.FitRayleigh(xs) },
	"poisson":     func(xs []float64) (stats.Dist, error) { return stats.FitPoisson(xs) },
	"geometric":   func(xs []float64) (stats.Dist, error) { return stats.FitGeometric(xs) },
	"laplace":     func(xs []float64) (stats.Dist, error) { return stats.FitLaplaceMLE(xs, 1) },
}

func main() {
	pflag.Parse()
	if *showFamily {
		for _, name := range familyNames() {
			fmt.Println(name)
		}
		return
	}

	ps := *quantiles
	if err := checkProbs(ps); err != nil {
		fatal(err)
	}
	s, err := readInput(os.Stdin)
	if err != nil {
		fatal(err)
	}
	if len(s.Xs) == 0 {
		fatal("no input")
	}
	s.Sort()

	fmt.Printf("N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), s.Mean())
	gmean := s.GeoMean()
	if !math.IsNaN(gmean) {
		fmt.Printf("  gmean %.6g", gmean)
	}
	fmt.Printf("  std dev %.6g  variance %.6g\n", s.StdDev(), s.Variance())
	fmt.Println()

	// Sample quantiles with distribution-free confidence
	// intervals.
	for _, p := range ps {
		ci := stats.QuantileCI(len(s.Xs), p, *confidence)
		lo, hi := ci.FromSample(*s)
		fmt.Printf("%8s %.6g  [%.6g, %.6g] @%.3g\n", label(p), s.Quantile(p), lo, hi, ci.Confidence)
	}
	fmt.Println()

	// Parametric fits with their log likelihoods.
	for _, name := range *fits {
		fit, ok := fitters[strings.ToLower(name)]
		if !ok {
			fatal(fmt.Sprintf("unknown family %q; try --list", name))
		}
		d, err := fit(s.Xs)
		if err != nil {
			fmt.Printf("%-12s %v\n", name, err)
			continue
		}
		fmt.Printf("%-12s %+v  log likelihood %.6g\n", name, d, stats.LogLikelihood(d, s.Xs))
	}
	fmt.Println()

	// Kernel density estimate. It has no closed-form quantile,
	// mode or mean, so these are all computed numerically.
	kernel := stats.GaussianKernel
	if *bandwidth == 0 && !(s.StdDev() > 0) {
		// Scott's rule gives a zero bandwidth.
		kernel = stats.DeltaKernel
	}
	kde := stats.KDE{
		Kernel:      kernel,
		Bandwidth:   *bandwidth,
		BoundaryMin: *boundMin,
		BoundaryMax: *boundMax,
	}.From(*s)
	var n stats.Numerical
	for _, p := range ps {
		fmt.Printf("%8s %.6g\n", label(p), n.Quantile(kde, p))
	}
	mode, mean := n.Mode(kde), n.Mean(kde)
	if sup := kde.Support(); sup.Min == sup.Max {
		// A single point has no interval to integrate over.
		mode, mean = sup.Min, sup.Min
	}
	fmt.Printf("%8s %.6g\n", "mode", mode)
	fmt.Printf("%8s %.6g\n", "mean", mean)
	lo, hi := kde.Bounds()
	fmt.Printf("%8s [%.6g, %.6g]\n", "99%", lo, hi)
}

func label(p float64) string {
	switch p {
	case 0:
		return "min"
	case 0.5:
		return "median"
	case 1:
		return "max"
	}
	return strconv.FormatFloat(100*p, 'g', 4, 64) + "%ile"
}

func familyNames() []string {
	var names []string
	for name := range fitters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkProbs(ps []float64) error {
	for _, p := range ps {
		if !(0 <= p && p <= 1) {
			return errors.Errorf("quantile %v not in [0, 1]", p)
		}
	}
	return nil
}

func readInput(r io.Reader) (*stats.Sample, error) {
	var sample stats.Sample
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, errors.Wrap(err, "reading input")
		}
		sample.Xs = append(sample.Xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &sample, nil
}

func fatal(err interface{}) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
