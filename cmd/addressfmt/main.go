// Addressfmt reformats one address column of a CSV file so that every
// line of the address fits within a pixel width budget when rendered in
// a chosen font. Settings come from flags, the settings file, or
// interactive prompts, in that order.
package main

import (
	"fmt"
	"os"

	"github.com/ogier/pflag"
	"github.com/pkg/profile"

	"github.com/okdarnoc/addressfmt/internal/address"
	"github.com/okdarnoc/addressfmt/internal/config"
	"github.com/okdarnoc/addressfmt/internal/csvio"
	"github.com/okdarnoc/addressfmt/internal/typeset"
)

var (
	optInput        = pflag.StringP("input", "i", "", "Path to the input CSV file")
	optOutput       = pflag.StringP("output", "o", "", "Path to the output CSV file. Defaults to the input name with a _modified suffix")
	optColumn       = pflag.StringP("column", "c", "", "Address column, as a 0-based index or a header name (unique prefixes accepted)")
	optFont         = pflag.StringP("font", "f", "", "Font name or path to a font file used for width measurement")
	optSize         = pflag.IntP("size", "s", 0, "Font size in points")
	optWidth        = pflag.Float64P("width", "w", 0, "Maximum line width in centimeters")
	optDPI          = pflag.Float64("dpi", 0, "Dots per inch for the centimeter to pixel conversion (96 for screen, 300 for print)")
	optDelimiter    = pflag.String("delimiter", "", "Delimiter between address components")
	optReport       = pflag.String("report", "", "Write a one-row CSV summary of the run to this file")
	optYes          = pflag.BoolP("yes", "y", false, "Skip the confirmation prompt")
	optSampleConfig = pflag.Bool("sample-config", false, "Print a sample settings file and exit")
	optProfile      = pflag.BoolP("profile", "p", false, "Profile the code CPU usage. The profile file location is printed to stdout.")
	optDebugStdout  = pflag.BoolP("dbg", "b", false, "Print debug logs to stdout")
)

const (
	LogCatgApp  = "app"
	LogCatgFont = "font"
	LogCatgCSV  = "csv"
)

func init() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file]\n", os.Args[0])
		fmt.Printf("Split the addresses in one column of a CSV file into lines that fit a width budget.\n")
		fmt.Printf("Settings not given as options are read from %s or asked for interactively.\n\n", config.SettingsConfigFile())
		fmt.Printf("Options:\n")

		pflag.PrintDefaults()
	}
}

func main() {
	pflag.Parse()

	if *optSampleConfig {
		fmt.Print(config.GenerateSampleSettings())
		return
	}

	if *optProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings := defaultSettings()
	if err := config.LoadSettingsFromConfigFile(&settings); err != nil {
		return err
	}
	log(LogCatgApp, "Loaded settings, font=%s size=%d dpi=%g\n",
		settings.Font.Name, settings.Font.Size, settings.Font.DPI)

	p := newPrompter()
	opts, err := resolveOptions(settings, p)
	if err != nil {
		return err
	}

	printSummary(opts)
	if !*optYes {
		ok, err := p.confirm("Proceed with formatting?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	fontPath, err := typeset.FindFontFile(opts.FontName)
	if err != nil {
		return err
	}
	log(LogCatgFont, "Using font file %s\n", fontPath)

	face, err := typeset.LoadFace(fontPath, opts.FontSize, opts.DPI)
	if err != nil {
		return err
	}
	defer face.Close()

	measurer := typeset.NewMeasurer(face)
	splitter := address.NewSplitter(measurer.Width, typeset.PixelsToFixed(opts.MaxWidthPx))
	splitter.SetDelimiter(opts.Delimiter)

	res, err := csvio.ProcessFile(opts.Input, opts.Output, opts.CellDelimiter, opts.Column, splitter.TransformRecord)
	if err != nil {
		return err
	}
	log(LogCatgCSV, "Processed %d rows, modified %d\n", res.RowsProcessed, res.RowsModified)

	fmt.Println()
	fmt.Println("Complete!")
	fmt.Printf("  Processed: %d rows\n", res.RowsProcessed)
	fmt.Printf("  Modified:  %d addresses\n", res.RowsModified)
	fmt.Printf("  Saved to:  %s\n", opts.Output)

	if *optReport != "" {
		if err := writeReport(opts, res); err != nil {
			return err
		}
		fmt.Printf("  Report:    %s\n", *optReport)
	}
	return nil
}

func defaultSettings() config.Settings {
	return config.Settings{
		Font: config.FontSettings{
			Name: typeset.DefaultFontName,
			Size: typeset.DefaultFontSize,
			DPI:  typeset.DefaultDPI,
		},
		Split: config.SplitSettings{
			Delimiter: address.DefaultDelimiter,
		},
	}
}

func printSummary(opts Options) {
	fmt.Println()
	fmt.Println("Settings:")
	fmt.Printf("  Input file:  %s\n", opts.Input)
	fmt.Printf("  Output file: %s\n", opts.Output)
	colName := ""
	if opts.Column < len(opts.Header) {
		colName = fmt.Sprintf(" (%s)", opts.Header[opts.Column])
	}
	fmt.Printf("  Column:      %d%s\n", opts.Column, colName)
	fmt.Printf("  Font:        %s at %dpt\n", opts.FontName, opts.FontSize)
	fmt.Printf("  Max width:   %g cm = %.1f px @ %g DPI\n", opts.WidthCm, opts.MaxWidthPx, opts.DPI)
	fmt.Println()
}

func writeReport(opts Options, res csvio.Result) error {
	f, err := os.Create(*optReport)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	return csvio.WriteReport(f, csvio.Report{
		Input:         opts.Input,
		Output:        opts.Output,
		Column:        opts.Column,
		Font:          opts.FontName,
		FontSize:      opts.FontSize,
		MaxWidthPx:    opts.MaxWidthPx,
		RowsProcessed: res.RowsProcessed,
		RowsModified:  res.RowsModified,
	})
}

func log(category, message string, args ...interface{}) {
	if *optDebugStdout {
		fmt.Printf("<%s> ", category)
		fmt.Printf(message, args...)
	}
}
