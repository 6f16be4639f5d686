package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/png-recolor/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		outputPath  string
		sourceStr   string
		targetStr   string
		tolerance   float64
		metricStr   string
		showVersion bool
	)

	flag.StringVar(&outputPath, "output", "", "path to output PNG file (default: <input>_converted.png)")
	flag.StringVar(&outputPath, "o", "", "shorthand for -output")
	flag.StringVar(&sourceStr, "source", imaging.DefaultSourceColor.String(), "source color to replace near")
	flag.StringVar(&sourceStr, "s", imaging.DefaultSourceColor.String(), "shorthand for -source")
	flag.StringVar(&targetStr, "target", imaging.DefaultTargetColor.String(), "target color to apply")
	flag.Float64Var(&tolerance, "tolerance", imaging.DefaultTolerance, "similarity threshold between 0 and 1")
	flag.Float64Var(&tolerance, "t", imaging.DefaultTolerance, "shorthand for -tolerance")
	flag.StringVar(&metricStr, "metric", string(imaging.DefaultMetric), "similarity metric: euclidean or channel")
	flag.StringVar(&metricStr, "m", string(imaging.DefaultMetric), "shorthand for -metric")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("png-recolor %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Results go to stdout; diagnostics go to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	inputs := flag.Args()
	if len(inputs) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if outputPath != "" && len(inputs) > 1 {
		log.Fatal("-o/-output requires a single input file")
	}

	source, err := imaging.ParseColor(sourceStr)
	if err != nil {
		log.Fatalf("invalid source color: %v", err)
	}
	target, err := imaging.ParseColor(targetStr)
	if err != nil {
		log.Fatalf("invalid target color: %v", err)
	}
	metric, err := imaging.ParseMetric(metricStr)
	if err != nil {
		log.Fatalf("invalid metric: %v", err)
	}

	opts := imaging.RecolorOptions{
		Source:    source,
		Target:    target,
		Tolerance: tolerance,
		Metric:    metric,
	}

	for _, input := range inputs {
		result, err := imaging.RecolorFile(input, outputPath, opts)
		if err != nil {
			log.Fatalf("%s: %v", input, err)
		}
		fmt.Printf("Saved converted image to: %s\n", result.OutputPath)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "png-recolor - convert pixels near a source color to a target color in a PNG")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: png-recolor [options] <input.png> [more.png ...]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprint(os.Stderr, `
Color formats: #RRGGBB or "R,G,B" (components 0-255).
Tolerance: 0.0 (only exact source) .. 1.0 (all opaque pixels).

Examples:
  png-recolor input.png -source 0,0,0 -target 6,145,15
  png-recolor input.png -source "#000000" -target "#06910F" -t 0.30
  png-recolor input.png -s 0,0,0 -target 6,145,15 -t 0.2 -m channel
  png-recolor input.png -s "12,12,12" -target "#00FF00" -o out.png
`)
}
